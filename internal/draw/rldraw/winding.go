// Package rldraw draws species bodies inside a raylib frame using the rlgl
// matrix stack. It must be used between rl.BeginDrawing and rl.EndDrawing.
package rldraw

import "math"

const ellipseSegments = 36

type point struct{ x, y float64 }

// mirrorStack tracks whether the current transform reflects the plane, which
// flips the winding raylib needs for filled triangles.
type mirrorStack struct {
	cur   bool
	saved []bool
}

func (m *mirrorStack) push() { m.saved = append(m.saved, m.cur) }

func (m *mirrorStack) pop() bool {
	if len(m.saved) == 0 {
		return false
	}
	m.cur = m.saved[len(m.saved)-1]
	m.saved = m.saved[:len(m.saved)-1]
	return true
}

func (m *mirrorStack) scale(sx, sy float64) {
	if sx*sy < 0 {
		m.cur = !m.cur
	}
}

// wind orders b and c so the triangle is counter-clockwise on screen, which is
// what raylib's DrawTriangle expects with y pointing down.
func wind(a, b, c point, mirrored bool) (point, point, point) {
	cross := (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
	if mirrored {
		cross = -cross
	}
	if cross > 0 {
		return a, c, b
	}
	return a, b, c
}

// fan splits a convex polygon into triangles sharing its first vertex.
func fan(pts []point) [][3]point {
	if len(pts) < 3 {
		return nil
	}
	out := make([][3]point, 0, len(pts)-2)
	for i := 1; i+1 < len(pts); i++ {
		out = append(out, [3]point{pts[0], pts[i], pts[i+1]})
	}
	return out
}

// ellipse returns n points on the ellipse centred at (cx, cy).
func ellipse(cx, cy, rx, ry float64, n int) []point {
	pts := make([]point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = point{cx + rx*math.Cos(a), cy + ry*math.Sin(a)}
	}
	return pts
}
