// Package draw defines the 2D drawing surface the species renderers paint on,
// plus a recording implementation used for traces and tests.
package draw

import "image/color"

// Surface is the host-owned canvas. Coordinates are in the surface's current
// transform; rotations are in radians. Ellipse width and height are full
// diameters, not radii.
type Surface interface {
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(sx, sy float64)

	SetFillStyle(c color.Color, alpha float64)
	FillEllipse(cx, cy, w, h float64)
	FillRect(x, y, w, h float64)
	FillTriangle(x1, y1, x2, y2, x3, y3 float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	FillPath()
}

// WithAlpha returns c with its alpha channel multiplied by alpha (0..1).
func WithAlpha(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	n.A = uint8(float64(n.A)*alpha + 0.5)
	return n
}
