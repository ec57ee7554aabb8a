// Package svgdraw writes species bodies as SVG using ajstarks/svgo. Each
// transform opens a <g transform> group; Restore closes the groups opened
// since the matching Save.
package svgdraw

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/appengine-ltd/fishsprite/internal/draw"
)

type Surface struct {
	canvas *svg.SVG
	// groups[i] counts the <g> elements opened at save depth i.
	groups []int
	fill   string
	path   strings.Builder
	closed bool
}

var _ draw.Surface = (*Surface)(nil)

// New starts a w×h document on out. Call Close to finish it.
func New(out io.Writer, w, h int) *Surface {
	canvas := svg.New(out)
	canvas.Start(w, h)
	return &Surface{canvas: canvas, groups: []int{0}, fill: "fill:#000000"}
}

// Background fills the whole document before any transform is applied.
func (s *Surface) Background(c color.Color) {
	s.canvas.Rect(0, 0, 1<<20, 1<<20, fillStyle(c, 1))
}

// Close ends every open group and the document. It is safe to call twice.
func (s *Surface) Close() {
	if s.closed {
		return
	}
	for len(s.groups) > 0 {
		s.closeTop()
	}
	s.canvas.End()
	s.closed = true
}

func (s *Surface) Save() {
	s.groups = append(s.groups, 0)
}

func (s *Surface) Restore() {
	if len(s.groups) <= 1 {
		return
	}
	s.closeTop()
}

// Depth is the number of unmatched Save calls.
func (s *Surface) Depth() int { return len(s.groups) - 1 }

func (s *Surface) Translate(x, y float64) {
	s.open("translate(" + num(x) + "," + num(y) + ")")
}

func (s *Surface) Rotate(angle float64) {
	s.open("rotate(" + num(angle*180/math.Pi) + ")")
}

func (s *Surface) Scale(sx, sy float64) {
	s.open("scale(" + num(sx) + "," + num(sy) + ")")
}

func (s *Surface) SetFillStyle(c color.Color, alpha float64) {
	s.fill = fillStyle(c, alpha)
}

func (s *Surface) FillEllipse(cx, cy, w, h float64) {
	rx, ry := w/2, h/2
	d := fmt.Sprintf("M%s,%s A%s,%s 0 1,0 %s,%s A%s,%s 0 1,0 %s,%s Z",
		num(cx-rx), num(cy),
		num(rx), num(ry), num(cx+rx), num(cy),
		num(rx), num(ry), num(cx-rx), num(cy))
	s.canvas.Path(d, s.fill)
}

func (s *Surface) FillRect(x, y, w, h float64) {
	d := fmt.Sprintf("M%s,%s H%s V%s H%s Z", num(x), num(y), num(x+w), num(y+h), num(x))
	s.canvas.Path(d, s.fill)
}

func (s *Surface) FillTriangle(x1, y1, x2, y2, x3, y3 float64) {
	d := fmt.Sprintf("M%s,%s L%s,%s L%s,%s Z", num(x1), num(y1), num(x2), num(y2), num(x3), num(y3))
	s.canvas.Path(d, s.fill)
}

func (s *Surface) BeginPath() { s.path.Reset() }

func (s *Surface) MoveTo(x, y float64) {
	s.path.WriteString("M" + num(x) + "," + num(y) + " ")
}

func (s *Surface) LineTo(x, y float64) {
	s.path.WriteString("L" + num(x) + "," + num(y) + " ")
}

func (s *Surface) ClosePath() { s.path.WriteString("Z") }

func (s *Surface) FillPath() {
	d := strings.TrimSpace(s.path.String())
	if d == "" {
		return
	}
	s.canvas.Path(d, s.fill)
	s.path.Reset()
}

func (s *Surface) open(transform string) {
	s.canvas.Gtransform(transform)
	s.groups[len(s.groups)-1]++
}

func (s *Surface) closeTop() {
	top := len(s.groups) - 1
	for i := 0; i < s.groups[top]; i++ {
		s.canvas.Gend()
	}
	s.groups = s.groups[:top]
}

func fillStyle(c color.Color, alpha float64) string {
	n := draw.WithAlpha(c, alpha)
	return fmt.Sprintf("fill:#%02x%02x%02x;fill-opacity:%s", n.R, n.G, n.B, num(float64(n.A)/255))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
