// Package export writes a single rendered fish to PNG or SVG.
package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/appengine-ltd/fishsprite/internal/draw"
	"github.com/appengine-ltd/fishsprite/internal/draw/ggdraw"
	"github.com/appengine-ltd/fishsprite/internal/draw/svgdraw"
	"github.com/appengine-ltd/fishsprite/internal/fish"
)

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPNG, "":
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return "", fmt.Errorf("unknown format %q (want png or svg)", s)
}

// FormatForPath guesses the format from a file extension, falling back to def.
func FormatForPath(path string, def Format) Format {
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".svg"):
		return FormatSVG
	case strings.HasSuffix(strings.ToLower(path), ".png"):
		return FormatPNG
	}
	return def
}

type Options struct {
	Format   Format
	Width    int
	Height   int
	BodySize float64
	// Background is skipped when nil or fully transparent.
	Background color.Color
	// Popup draws with the identity frame at the canvas centre instead of
	// the fish's own pose.
	Popup bool
}

// Fish renders f centred on a Width×Height canvas and encodes it to w.
func Fish(w io.Writer, f *fish.Fish, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("canvas must be positive, got %dx%d", opts.Width, opts.Height)
	}
	bodySize := opts.BodySize
	if bodySize <= 0 {
		bodySize = f.BodySize()
	}

	switch opts.Format {
	case FormatSVG:
		s := svgdraw.New(w, opts.Width, opts.Height)
		if visible(opts.Background) {
			s.Background(opts.Background)
		}
		err := paint(s, f, bodySize, opts)
		s.Close()
		return err
	case FormatPNG, "":
		s := ggdraw.New(opts.Width, opts.Height)
		if visible(opts.Background) {
			s.Fill(opts.Background)
		}
		if err := paint(s, f, bodySize, opts); err != nil {
			return err
		}
		return s.WritePNG(w)
	}
	return fmt.Errorf("unknown format %q", opts.Format)
}

// Trace records the draw calls Fish would issue.
func Trace(f *fish.Fish, opts Options) (*draw.Recorder, error) {
	bodySize := opts.BodySize
	if bodySize <= 0 {
		bodySize = f.BodySize()
	}
	rec := draw.NewRecorder()
	if err := paint(rec, f, bodySize, opts); err != nil {
		return nil, err
	}
	return rec, nil
}

func paint(s draw.Surface, f *fish.Fish, bodySize float64, opts Options) error {
	cx, cy := float64(opts.Width)/2, float64(opts.Height)/2
	if opts.Popup {
		s.Save()
		defer s.Restore()
		s.Translate(cx, cy)
		return f.RenderAt(s, bodySize)
	}
	placed := *f
	placed.X, placed.Y = cx, cy
	return placed.Render(s, bodySize)
}

func visible(c color.Color) bool {
	if c == nil {
		return false
	}
	_, _, _, a := c.RGBA()
	return a > 0
}
