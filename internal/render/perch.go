package render

import (
	"math"

	"github.com/appengine-ltd/fishsprite/internal/draw"
	"github.com/appengine-ltd/fishsprite/internal/species"
)

const (
	perchBarCount = 7
	perchBarTaper = 0.12
)

// YellowPerch paints a deep, laterally compressed body with dark vertical
// bars, a spiny front dorsal and a soft rear dorsal. Shapes are drawn back to
// front; the order matters.
//
// A zero or negative bodySize is not rejected and yields empty or inverted
// geometry.
func YellowPerch(s draw.Surface, bodySize float64, p species.Palette) {
	length := bodySize * 2.0
	height := bodySize * 0.85

	s.SetFillStyle(p.Base, 1.0)
	s.FillEllipse(0, 0, length, height)

	s.SetFillStyle(p.Belly, 0.9)
	s.FillEllipse(0, height*0.25, length*0.8, height*0.45)

	s.SetFillStyle(p.Bars, 0.75)
	barWidth := length * 0.09
	barSpacing := length / (perchBarCount + 1)
	for i := 0; i < perchBarCount; i++ {
		x := -length*0.4 + float64(i)*barSpacing
		h := PerchBarHeight(height, i)
		s.FillRect(x-barWidth/2, -h/2, barWidth, h)
	}

	tail := bodySize * 0.7
	tailX := -length * 0.45
	s.SetFillStyle(p.Fins, 0.9)
	s.BeginPath()
	s.MoveTo(tailX, 0)
	s.LineTo(tailX-tail*0.65, -tail*0.55)
	s.LineTo(tailX-tail*0.65, tail*0.55)
	s.ClosePath()
	s.FillPath()

	// Spiny dorsal.
	spinyX := -length * 0.15
	s.SetFillStyle(p.Fins, 0.85)
	s.FillTriangle(
		spinyX, -height*0.5,
		spinyX-bodySize*0.35, -height*1.2,
		spinyX+bodySize*0.15, -height*1.1,
	)

	// Soft dorsal.
	softX := length * 0.05
	s.SetFillStyle(p.Fins, 0.9)
	s.FillTriangle(
		softX, -height*0.5,
		softX-bodySize*0.15, -height*1.0,
		softX+bodySize*0.25, -height*0.9,
	)

	// Pectoral.
	finX := -bodySize * 0.15
	s.SetFillStyle(p.Fins, 0.9)
	s.FillTriangle(
		finX, 0,
		finX-bodySize*0.3, -height*0.25,
		finX-bodySize*0.3, height*0.25,
	)
}

// PerchBarHeight is the height of bar i for a body of the given height. Bars
// taper linearly away from the middle bar and never go negative.
func PerchBarHeight(bodyHeight float64, i int) float64 {
	mid := float64(perchBarCount-1) / 2
	mul := math.Max(0, 1.0-math.Abs(float64(i)-mid)*perchBarTaper)
	return bodyHeight * 0.75 * mul
}
