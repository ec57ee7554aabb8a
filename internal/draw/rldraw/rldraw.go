//go:build cgo

package rldraw

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/fishsprite/internal/draw"
)

type Surface struct {
	mirror mirrorStack
	fill   rl.Color
	path   []point
}

var _ draw.Surface = (*Surface)(nil)

func New() *Surface {
	return &Surface{fill: rl.Black}
}

func (s *Surface) Save() {
	s.mirror.push()
	rl.PushMatrix()
}

func (s *Surface) Restore() {
	if !s.mirror.pop() {
		return
	}
	rl.PopMatrix()
}

func (s *Surface) Translate(x, y float64) {
	rl.Translatef(float32(x), float32(y), 0)
}

func (s *Surface) Rotate(angle float64) {
	rl.Rotatef(float32(angle*180/math.Pi), 0, 0, 1)
}

func (s *Surface) Scale(sx, sy float64) {
	s.mirror.scale(sx, sy)
	rl.Scalef(float32(sx), float32(sy), 1)
}

func (s *Surface) SetFillStyle(c color.Color, alpha float64) {
	n := draw.WithAlpha(c, alpha)
	s.fill = rl.NewColor(n.R, n.G, n.B, n.A)
}

// FillEllipse fans a polygon from float coordinates; rl.DrawEllipse would
// snap the centre to whole units of the local frame.
func (s *Surface) FillEllipse(cx, cy, w, h float64) {
	for _, tri := range fan(ellipse(cx, cy, w/2, h/2, ellipseSegments)) {
		s.triangle(tri[0], tri[1], tri[2])
	}
}

func (s *Surface) FillRect(x, y, w, h float64) {
	rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), s.fill)
}

func (s *Surface) FillTriangle(x1, y1, x2, y2, x3, y3 float64) {
	s.triangle(point{x1, y1}, point{x2, y2}, point{x3, y3})
}

func (s *Surface) BeginPath() { s.path = s.path[:0] }

func (s *Surface) MoveTo(x, y float64) {
	s.path = append(s.path[:0], point{x, y})
}

func (s *Surface) LineTo(x, y float64) { s.path = append(s.path, point{x, y}) }

// ClosePath is implicit: FillPath always fills the closed polygon.
func (s *Surface) ClosePath() {}

func (s *Surface) FillPath() {
	for _, tri := range fan(s.path) {
		s.triangle(tri[0], tri[1], tri[2])
	}
	s.path = s.path[:0]
}

func (s *Surface) triangle(a, b, c point) {
	a, b, c = wind(a, b, c, s.mirror.cur)
	rl.DrawTriangle(vec(a), vec(b), vec(c), s.fill)
}

func vec(p point) rl.Vector2 {
	return rl.NewVector2(float32(p.x), float32(p.y))
}
