package draw

import (
	"encoding/json"
	"image/color"
	"io"
)

type Op string

const (
	OpSave         Op = "save"
	OpRestore      Op = "restore"
	OpTranslate    Op = "translate"
	OpRotate       Op = "rotate"
	OpScale        Op = "scale"
	OpFillStyle    Op = "fill_style"
	OpFillEllipse  Op = "fill_ellipse"
	OpFillRect     Op = "fill_rect"
	OpFillTriangle Op = "fill_triangle"
	OpBeginPath    Op = "begin_path"
	OpMoveTo       Op = "move_to"
	OpLineTo       Op = "line_to"
	OpClosePath    Op = "close_path"
	OpFillPath     Op = "fill_path"
)

// Command is one recorded surface call. Fill holds the fill style active when
// a fill op was issued.
type Command struct {
	Op   Op          `json:"op"`
	Args []float64   `json:"args,omitempty"`
	Fill *color.NRGBA `json:"fill,omitempty"`
}

// Recorder is a Surface that keeps every call in order. It never draws.
type Recorder struct {
	Commands []Command

	Saves    int
	Restores int
	// MaxDepth is the deepest save nesting reached.
	MaxDepth int

	depth int
	fill  *color.NRGBA
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Save() {
	r.Saves++
	r.depth++
	if r.depth > r.MaxDepth {
		r.MaxDepth = r.depth
	}
	r.add(OpSave)
}

func (r *Recorder) Restore() {
	r.Restores++
	if r.depth > 0 {
		r.depth--
	}
	r.add(OpRestore)
}

// Depth is the current save nesting.
func (r *Recorder) Depth() int { return r.depth }

func (r *Recorder) Translate(x, y float64) { r.add(OpTranslate, x, y) }
func (r *Recorder) Rotate(angle float64)   { r.add(OpRotate, angle) }
func (r *Recorder) Scale(sx, sy float64)   { r.add(OpScale, sx, sy) }

func (r *Recorder) SetFillStyle(c color.Color, alpha float64) {
	n := WithAlpha(c, alpha)
	r.fill = &n
	r.add(OpFillStyle, alpha)
}

func (r *Recorder) FillEllipse(cx, cy, w, h float64) {
	r.addFill(OpFillEllipse, cx, cy, w, h)
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.addFill(OpFillRect, x, y, w, h)
}

func (r *Recorder) FillTriangle(x1, y1, x2, y2, x3, y3 float64) {
	r.addFill(OpFillTriangle, x1, y1, x2, y2, x3, y3)
}

func (r *Recorder) BeginPath()          { r.add(OpBeginPath) }
func (r *Recorder) MoveTo(x, y float64) { r.add(OpMoveTo, x, y) }
func (r *Recorder) LineTo(x, y float64) { r.add(OpLineTo, x, y) }
func (r *Recorder) ClosePath()          { r.add(OpClosePath) }
func (r *Recorder) FillPath()           { r.addFill(OpFillPath) }

// Count returns how many commands with the given op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Fills returns only the commands that put paint on the surface.
func (r *Recorder) Fills() []Command {
	out := make([]Command, 0, len(r.Commands))
	for _, c := range r.Commands {
		switch c.Op {
		case OpFillEllipse, OpFillRect, OpFillTriangle, OpFillPath:
			out = append(out, c)
		}
	}
	return out
}

// WriteJSON writes the recorded trace as an indented JSON array.
func (r *Recorder) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Commands)
}

func (r *Recorder) add(op Op, args ...float64) {
	r.Commands = append(r.Commands, Command{Op: op, Args: args})
}

func (r *Recorder) addFill(op Op, args ...float64) {
	var fill *color.NRGBA
	if r.fill != nil {
		c := *r.fill
		fill = &c
	}
	r.Commands = append(r.Commands, Command{Op: op, Args: args, Fill: fill})
}
