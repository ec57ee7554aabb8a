package fish

import (
	"strings"
	"testing"

	"github.com/appengine-ltd/fishsprite/internal/biology"
	"github.com/appengine-ltd/fishsprite/internal/draw"
	"github.com/appengine-ltd/fishsprite/internal/species"
)

func perch() *species.Descriptor {
	d := species.YellowPerch()
	return &d
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(nil, 1, species.SizeMedium, 0, 0); err == nil {
		t.Fatalf("expected error without species")
	}
	if _, err := New(perch(), 0, species.SizeMedium, 0, 0); err == nil {
		t.Fatalf("expected error for zero weight")
	}
}

func TestDerivedAttributes(t *testing.T) {
	f, err := New(perch(), 1, species.SizeMedium, 10, 20)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if f.Length() != 10 {
		t.Fatalf("expected length 10, got %d", f.Length())
	}
	src := biology.NewRand(3)
	for i := 0; i < 100; i++ {
		if age := f.BiologicalAge(src); age < 3 || age > 5 {
			t.Fatalf("age %d outside [3,5]", age)
		}
	}
	if f.BodySize() != 20 || f.Sprite() != "yellow_perch_large" {
		t.Fatalf("unexpected size data %v %s", f.BodySize(), f.Sprite())
	}
	if f.Weight != 1 {
		t.Fatalf("weight must not change, got %v", f.Weight)
	}
}

func TestSpawnSamplesWithinCategory(t *testing.T) {
	src := biology.NewRand(11)
	d := perch()
	r, _ := d.Size(species.SizeLarge)
	for i := 0; i < 200; i++ {
		f, err := Spawn(d, species.SizeLarge, src, 0, 0)
		if err != nil {
			t.Fatalf("spawn: %v", err)
		}
		if f.Weight < r.MinWeight || f.Weight > r.MaxWeight {
			t.Fatalf("weight %v outside large range", f.Weight)
		}
	}
}

func TestRenderUsesOwnPose(t *testing.T) {
	f, _ := New(perch(), 1, species.SizeMedium, 40, 30)
	f.FacingRight = false
	f.Angle = 0.2

	rec := draw.NewRecorder()
	if err := f.Render(rec, f.BodySize()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if rec.Saves != rec.Restores || rec.Saves != 1 {
		t.Fatalf("unbalanced transform: %d saves %d restores", rec.Saves, rec.Restores)
	}
	tr := rec.Commands[1]
	if tr.Op != draw.OpTranslate || tr.Args[0] != 40 || tr.Args[1] != 30 {
		t.Fatalf("expected translate to fish position, got %+v", tr)
	}
}

func TestRenderAtDrawsAtOrigin(t *testing.T) {
	f, _ := New(perch(), 1, species.SizeMedium, 40, 30)
	rec := draw.NewRecorder()
	rec.Translate(200, 100)
	if err := f.RenderAt(rec, 32); err != nil {
		t.Fatalf("render at: %v", err)
	}
	if rec.Count(draw.OpTranslate) != 1 || rec.Saves != 0 {
		t.Fatalf("popup render must not move the surface")
	}
	first := rec.Fills()[0]
	if first.Args[0] != 0 || first.Args[1] != 0 || first.Args[2] != 64 {
		t.Fatalf("unexpected body ellipse %+v", first.Args)
	}
}

type fixedSource float64

func (f fixedSource) Between(lo, hi float64) float64 { return lo + float64(f)*(hi-lo) }

func TestSummary(t *testing.T) {
	f, _ := New(perch(), 2.5, species.SizeTrophy, 0, 0)
	s := f.Summary(fixedSource(0))
	if s.LengthIn != 13 || s.AgeYears != 8 || s.Size != "TROPHY" || s.Name != "Yellow Perch" {
		t.Fatalf("unexpected summary %+v", s)
	}
	if !strings.Contains(s.String(), "2.50 lb, 13 in, about 8 years old") {
		t.Fatalf("unexpected text %q", s.String())
	}

	f, _ = New(perch(), 0.3, species.SizeSmall, 0, 0)
	if got := f.Summary(fixedSource(0)).String(); !strings.HasSuffix(got, "about 1 year old") {
		t.Fatalf("expected singular year, got %q", got)
	}
}
