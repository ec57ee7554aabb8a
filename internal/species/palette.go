package species

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of colours used to paint one species. A field with zero
// alpha counts as missing.
type Palette struct {
	Base  color.RGBA
	Belly color.RGBA
	Bars  color.RGBA
	Fins  color.RGBA
}

// PaletteSpec is the declarative form of a Palette, with "#rrggbb" strings.
type PaletteSpec struct {
	Base  string `yaml:"base"`
	Belly string `yaml:"belly"`
	Bars  string `yaml:"bars"`
	Fins  string `yaml:"fins"`
}

func (p Palette) Validate() error {
	var missing []string
	for _, f := range []struct {
		name string
		c    color.RGBA
	}{
		{"base", p.Base},
		{"belly", p.Belly},
		{"bars", p.Bars},
		{"fins", p.Fins},
	} {
		if f.c.A == 0 {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("palette missing colours: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Spec returns p as hex strings.
func (p Palette) Spec() PaletteSpec {
	return PaletteSpec{
		Base:  hex(p.Base),
		Belly: hex(p.Belly),
		Bars:  hex(p.Bars),
		Fins:  hex(p.Fins),
	}
}

// Parse converts every field to an opaque colour. Empty or malformed fields
// are reported together.
func (s PaletteSpec) Parse() (Palette, error) {
	var (
		p    Palette
		errs []string
	)
	for _, f := range []struct {
		name string
		raw  string
		dst  *color.RGBA
	}{
		{"base", s.Base, &p.Base},
		{"belly", s.Belly, &p.Belly},
		{"bars", s.Bars, &p.Bars},
		{"fins", s.Fins, &p.Fins},
	} {
		raw := strings.TrimSpace(f.raw)
		if raw == "" {
			errs = append(errs, f.name+": missing")
			continue
		}
		c, err := ParseColor(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", f.name, err))
			continue
		}
		*f.dst = c
	}
	if len(errs) > 0 {
		return Palette{}, fmt.Errorf("invalid palette: %s", strings.Join(errs, "; "))
	}
	return p, nil
}

// ParseColor accepts "#rgb" or "#rrggbb", with or without the leading '#'.
func ParseColor(raw string) (color.RGBA, error) {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q", raw)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustColor is ParseColor for literals known to be valid.
func MustColor(raw string) color.RGBA {
	c, err := ParseColor(raw)
	if err != nil {
		panic(err)
	}
	return c
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
