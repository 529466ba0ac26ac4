package raytracer

import "github.com/chewxy/math32"

// Intersection is the outcome of a ray intersection query: either no hit, or
// a hit at a single point. A miss is an ordinary result, not an error.
type Intersection struct {
	point Vector
	hit   bool
}

// NoHit returns the no-intersection result.
func NoHit() Intersection { return Intersection{} }

// HitAt returns an intersection at point p.
func HitAt(p Vector) Intersection { return Intersection{point: p, hit: true} }

// Point returns the intersection point. The boolean is false when there is
// no hit, in which case the point is meaningless.
func (i Intersection) Point() (Vector, bool) { return i.point, i.hit }

// AlmostEqual reports whether two intersections agree: two misses are equal,
// a miss never equals a hit, and two hits compare their points within the
// default tolerance.
func (i Intersection) AlmostEqual(other Intersection) bool {
	if i.hit != other.hit {
		return false
	}
	if !i.hit {
		return true
	}
	return i.point.AlmostEqual(other.point)
}

// Sphere is defined by its center and radius. The radius is expected to be
// positive.
type Sphere struct {
	Center Vector
	Radius float32
}

// Intersect returns the nearest intersection of r with the sphere, or NoHit
// if there is none. The ray direction must be unit length for the distances
// involved to work out.
//
// The construction follows
// http://kylehalladay.com/blog/tutorial/math/2013/12/24/Ray-Sphere-Intersection.html
func (s Sphere) Intersect(r Ray) Intersection {
	toCenter := s.Center.Sub(r.Pos)
	// Rays starting inside the sphere (or exactly on its surface) are not
	// supported.
	if toCenter.Len() <= s.Radius {
		return NoHit()
	}
	// tCenter is how far along the ray we have to travel for the line
	// orthogonal to the ray to pass through the sphere's center. Call that
	// point on the ray C.
	tCenter := toCenter.Dot(r.Dir)
	// The sphere lies in the opposite direction.
	if tCenter < 0 {
		return NoHit()
	}
	// [r.Pos C] is one leg of a right triangle whose hypotenuse is
	// [r.Pos s.Center]. The remaining leg d is the distance between C and the
	// center, by the Pythagorean theorem.
	d := math32.Sqrt(toCenter.Len()*toCenter.Len() - tCenter*tCenter)
	// The ray line passes the center farther away than the radius: a clean
	// miss.
	if d > s.Radius {
		return NoHit()
	}
	// Pythagoras again: the radius is the hypotenuse over legs d and tDelta,
	// so the surface is crossed tDelta before and tDelta after C. Tangent
	// rays get tDelta = 0 and a single point, no special case needed.
	tDelta := math32.Sqrt(s.Radius*s.Radius - d*d)
	// Only the closer of the two crossings is of interest.
	return HitAt(r.Forwarded(tCenter - tDelta).Pos)
}
