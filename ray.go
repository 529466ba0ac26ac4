package raytracer

// Ray is a half-line starting at Pos and extending along Dir. Intersection
// code interprets distances along the ray as multiples of Dir, so Dir should
// be unit length; rays produced by Camera.ScreenRay always are.
type Ray struct {
	Pos Vector
	Dir Vector
}

// Forwarded returns the ray moved distance units along its own direction.
// The direction is unchanged.
func (r Ray) Forwarded(distance float32) Ray {
	return Ray{
		Pos: r.Pos.Add(r.Dir.Mul(distance)),
		Dir: r.Dir,
	}
}

// AlmostEqual reports whether both origin and direction of the two rays are
// componentwise equal within the default tolerance.
func (r Ray) AlmostEqual(other Ray) bool {
	return r.Pos.AlmostEqual(other.Pos) && r.Dir.AlmostEqual(other.Dir)
}
