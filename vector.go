package raytracer

import "github.com/chewxy/math32"

// defaultEpsilon is the tolerance used by the parameterless almost-equal
// checks.
const defaultEpsilon = 1e-7

// Vector is a 3-component float32 vector. It is a plain value type: every
// operation returns a new vector and leaves its operands untouched.
type Vector struct {
	X, Y, Z float32
}

// Zero returns the zero vector.
func Zero() Vector { return Vector{} }

// UnitX returns the unit vector along the x axis.
func UnitX() Vector { return Vector{X: 1} }

// UnitY returns the unit vector along the y axis.
func UnitY() Vector { return Vector{Y: 1} }

// UnitZ returns the unit vector along the z axis.
func UnitZ() Vector { return Vector{Z: 1} }

func (a Vector) Add(b Vector) Vector  { return Vector{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z} }
func (a Vector) Sub(b Vector) Vector  { return a.Add(b.Mul(-1)) }
func (a Vector) Mul(t float32) Vector { return Vector{X: a.X * t, Y: a.Y * t, Z: a.Z * t} }
func (a Vector) Div(t float32) Vector { return Vector{X: a.X / t, Y: a.Y / t, Z: a.Z / t} }
func (a Vector) Neg() Vector          { return a.Mul(-1) }

// Dot returns the dot product of a and b.
func (a Vector) Dot(b Vector) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns the right-handed cross product of a and b.
func (a Vector) Cross(b Vector) Vector {
	return Vector{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length of a.
func (a Vector) Len() float32 { return math32.Sqrt(a.Dot(a)) }

// Normalized returns the unit vector pointing in the same direction as a.
// It panics if a is the zero vector.
func (a Vector) Normalized() Vector {
	l := a.Len()
	if l == 0 {
		panic("raytracer: normalizing a zero-length vector")
	}
	return a.Div(l)
}

// AlmostEqual reports whether a and b are componentwise equal within the
// default tolerance.
func (a Vector) AlmostEqual(b Vector) bool {
	return a.AlmostEqualWithEpsilon(b, defaultEpsilon)
}

// AlmostEqualWithEpsilon reports whether every component of a is within
// epsilon of the corresponding component of b. Each component is checked
// independently; this is not a Euclidean-distance comparison.
func (a Vector) AlmostEqualWithEpsilon(b Vector, epsilon float32) bool {
	return math32.Abs(a.X-b.X) < epsilon &&
		math32.Abs(a.Y-b.Y) < epsilon &&
		math32.Abs(a.Z-b.Z) < epsilon
}
