// Package render paints species bodies onto a draw.Surface.
package render

import "github.com/appengine-ltd/fishsprite/internal/draw"

// Transform is the coordinate frame a body is drawn in. The zero value is the
// identity: draw at the surface's current origin, as the catch popup does.
type Transform struct {
	placed      bool
	X, Y        float64
	Angle       float64
	FacingRight bool
}

// Identity draws at the surface's current origin without touching its
// transform.
func Identity() Transform { return Transform{} }

// Placement moves to (x, y) and orients the body. A fish facing left is
// mirrored on the x axis and rotated by -angle so it tilts the same way on
// screen.
func Placement(x, y, angle float64, facingRight bool) Transform {
	return Transform{placed: true, X: x, Y: y, Angle: angle, FacingRight: facingRight}
}

func (t Transform) IsIdentity() bool { return !t.placed }

// apply sets up the frame and returns the func that undoes it.
func (t Transform) apply(s draw.Surface) func() {
	if t.IsIdentity() {
		return func() {}
	}
	s.Save()
	s.Translate(t.X, t.Y)
	if t.FacingRight {
		s.Rotate(t.Angle)
	} else {
		s.Scale(-1, 1)
		s.Rotate(-t.Angle)
	}
	return s.Restore
}
