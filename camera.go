package raytracer

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Radians is an angle in radians. The named type keeps degree values from
// being passed where radians are expected.
type Radians float32

// Camera is a pinhole camera. Forward and Up must be unit length and
// orthogonal to each other; the fields are not validated, but LookAt builds
// a pair that satisfies both requirements.
type Camera struct {
	Position    Vector
	Forward     Vector
	Up          Vector
	AspectRatio float32 // width / height
	FOVX        Radians // horizontal field of view, 0 < FOVX < pi
}

// LookAt returns a camera at position with its forward axis pointing at
// target, using up as the rough up direction. The returned camera's Up is
// re-orthogonalized against the view direction, so up only has to be roughly
// vertical. It panics if target coincides with position or if up is parallel
// to the view direction.
func LookAt(position, target, up Vector, aspectRatio float32, fovx Radians) Camera {
	forward := target.Sub(position).Normalized()
	right := forward.Cross(up).Normalized()
	return Camera{
		Position:    position,
		Forward:     forward,
		Up:          right.Cross(forward),
		AspectRatio: aspectRatio,
		FOVX:        fovx,
	}
}

// ScreenRay returns the ray from the camera through the screen point (x, y),
// with both coordinates in [0, 1]: (0, 0) is the top left corner of the
// screen, (1, 1) the bottom right, and (0.5, 0.5) lies exactly on the
// forward axis. Coordinates outside [0, 1] are a caller bug and panic.
//
// The virtual screen is a plane one unit in front of the camera along
// Forward. The returned ray's direction is unit length.
func (c Camera) ScreenRay(x, y float32) Ray {
	// Negated comparisons so NaN coordinates fail the guard too.
	if !(x >= 0 && x <= 1) {
		panic(fmt.Sprintf("raytracer: screen x coordinate %v outside [0, 1]", x))
	}
	if !(y >= 0 && y <= 1) {
		panic(fmt.Sprintf("raytracer: screen y coordinate %v outside [0, 1]", y))
	}
	right := c.Forward.Cross(c.Up)
	// Screen y grows downward while Up points up in world space, hence the
	// negation.
	xUnit := PosUnitToUnit(x)
	yUnit := -PosUnitToUnit(y)
	// Half the field of view and the unit distance to the screen plane form
	// a right triangle, so the tangent gives half the screen width.
	screenWidth := 2 * math32.Tan(float32(c.FOVX)/2)
	screenHeight := screenWidth / c.AspectRatio
	pointAtScreen := c.Position.
		Add(c.Forward).
		Add(right.Mul(xUnit * screenWidth / 2)).
		Add(c.Up.Mul(yUnit * screenHeight / 2))
	return Ray{
		Pos: c.Position,
		Dir: pointAtScreen.Sub(c.Position).Normalized(),
	}
}
