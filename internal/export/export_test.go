package export

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/appengine-ltd/fishsprite/internal/draw"
	"github.com/appengine-ltd/fishsprite/internal/fish"
	"github.com/appengine-ltd/fishsprite/internal/species"
)

func testFish(t *testing.T) *fish.Fish {
	t.Helper()
	d := species.YellowPerch()
	f, err := fish.New(&d, 1, species.SizeMedium, 0, 0)
	if err != nil {
		t.Fatalf("new fish: %v", err)
	}
	return f
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("SVG"); err != nil || f != FormatSVG {
		t.Fatalf("expected svg, got %q err=%v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatPNG {
		t.Fatalf("expected png default, got %q err=%v", f, err)
	}
	if _, err := ParseFormat("bmp"); err == nil {
		t.Fatalf("expected error for bmp")
	}
	if FormatForPath("out/perch.SVG", FormatPNG) != FormatSVG {
		t.Fatalf("expected svg from extension")
	}
	if FormatForPath("-", FormatSVG) != FormatSVG {
		t.Fatalf("expected default for stdout")
	}
}

func TestFishPNGPaintsCentre(t *testing.T) {
	var buf bytes.Buffer
	err := Fish(&buf, testFish(t), Options{Format: FormatPNG, Width: 120, Height: 80})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	_, _, _, a := img.At(60, 40).RGBA()
	if a == 0 {
		t.Fatalf("expected painted centre pixel")
	}
	_, _, _, a = img.At(0, 0).RGBA()
	if a != 0 {
		t.Fatalf("expected transparent corner without background")
	}
}

func TestFishPNGBackground(t *testing.T) {
	var buf bytes.Buffer
	bg := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	if err := Fish(&buf, testFish(t), Options{Format: FormatPNG, Width: 60, Height: 40, Background: bg}); err != nil {
		t.Fatalf("export: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 || a>>8 != 255 {
		t.Fatalf("unexpected corner %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestFishSVG(t *testing.T) {
	var buf bytes.Buffer
	f := testFish(t)
	f.FacingRight = false
	if err := Fish(&buf, f, Options{Format: FormatSVG, Width: 200, Height: 100}); err != nil {
		t.Fatalf("export: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "<path") != 13 {
		t.Fatalf("expected 13 shapes, got %d:\n%s", strings.Count(out, "<path"), out)
	}
	if strings.Count(out, "<g ") != strings.Count(out, "</g>") {
		t.Fatalf("unbalanced groups")
	}
	if !strings.Contains(out, "translate(100,50)") || !strings.Contains(out, "scale(-1,1)") {
		t.Fatalf("expected placement transform for left-facing fish:\n%s", out)
	}
}

func TestFishRejectsEmptyCanvas(t *testing.T) {
	if err := Fish(&bytes.Buffer{}, testFish(t), Options{Width: 0, Height: 10}); err == nil {
		t.Fatalf("expected error for empty canvas")
	}
}

func TestTraceBalancesAndCentres(t *testing.T) {
	f := testFish(t)
	for _, popup := range []bool{false, true} {
		rec, err := Trace(f, Options{Width: 100, Height: 60, Popup: popup})
		if err != nil {
			t.Fatalf("trace: %v", err)
		}
		if rec.Saves != rec.Restores || rec.Depth() != 0 {
			t.Fatalf("popup=%v: unbalanced trace", popup)
		}
		tr := rec.Commands[1]
		if tr.Op != draw.OpTranslate || tr.Args[0] != 50 || tr.Args[1] != 30 {
			t.Fatalf("popup=%v: expected translate to centre, got %+v", popup, tr)
		}
		if popup && rec.Count(draw.OpRotate) != 0 {
			t.Fatalf("popup frame must not rotate")
		}
	}
	if f.X != 0 || f.Y != 0 {
		t.Fatalf("export must not move the caller's fish")
	}
}
