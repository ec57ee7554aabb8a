// Package ggdraw paints species bodies onto a fogleman/gg raster context.
package ggdraw

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/appengine-ltd/fishsprite/internal/draw"
)

type Surface struct {
	dc    *gg.Context
	depth int
}

var _ draw.Surface = (*Surface)(nil)

// New creates a transparent w×h canvas.
func New(w, h int) *Surface {
	dc := gg.NewContext(w, h)
	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()
	return &Surface{dc: dc}
}

// Fill paints the whole canvas, ignoring the current transform.
func (s *Surface) Fill(c color.Color) {
	s.dc.Push()
	s.dc.Identity()
	s.dc.SetColor(c)
	s.dc.Clear()
	s.dc.Pop()
}

func (s *Surface) Save() {
	s.depth++
	s.dc.Push()
}

func (s *Surface) Restore() {
	if s.depth == 0 {
		return
	}
	s.depth--
	s.dc.Pop()
}

// Depth is the number of unmatched Save calls.
func (s *Surface) Depth() int { return s.depth }

func (s *Surface) Translate(x, y float64) { s.dc.Translate(x, y) }
func (s *Surface) Rotate(angle float64)   { s.dc.Rotate(angle) }
func (s *Surface) Scale(sx, sy float64)   { s.dc.Scale(sx, sy) }

func (s *Surface) SetFillStyle(c color.Color, alpha float64) {
	s.dc.SetColor(draw.WithAlpha(c, alpha))
}

func (s *Surface) FillEllipse(cx, cy, w, h float64) {
	s.dc.ClearPath()
	s.dc.DrawEllipse(cx, cy, w/2, h/2)
	s.dc.Fill()
}

func (s *Surface) FillRect(x, y, w, h float64) {
	s.dc.ClearPath()
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

func (s *Surface) FillTriangle(x1, y1, x2, y2, x3, y3 float64) {
	s.dc.ClearPath()
	s.dc.MoveTo(x1, y1)
	s.dc.LineTo(x2, y2)
	s.dc.LineTo(x3, y3)
	s.dc.ClosePath()
	s.dc.Fill()
}

func (s *Surface) BeginPath()          { s.dc.ClearPath() }
func (s *Surface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.dc.LineTo(x, y) }
func (s *Surface) ClosePath()          { s.dc.ClosePath() }
func (s *Surface) FillPath()           { s.dc.Fill() }

func (s *Surface) Image() image.Image { return s.dc.Image() }

func (s *Surface) WritePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}
