package raytracer

import "github.com/chewxy/math32"

// AlmostEqual reports whether a and b differ by less than the default
// tolerance.
func AlmostEqual(a, b float32) bool { return AlmostEqualWithEpsilon(a, b, defaultEpsilon) }

// AlmostEqualWithEpsilon reports whether |a-b| < epsilon.
func AlmostEqualWithEpsilon(a, b, epsilon float32) bool { return math32.Abs(a-b) < epsilon }

// PosUnitToUnit remaps a value from the [0, 1] range to the [-1, 1] range.
func PosUnitToUnit(value float32) float32 { return value*2 - 1 }
