// Package fish is the per-instance view of a caught or swimming fish: a
// species descriptor plus the weight, size and pose the host gave it.
package fish

import (
	"fmt"

	"github.com/appengine-ltd/fishsprite/internal/biology"
	"github.com/appengine-ltd/fishsprite/internal/draw"
	"github.com/appengine-ltd/fishsprite/internal/render"
	"github.com/appengine-ltd/fishsprite/internal/species"
)

type Fish struct {
	Species *species.Descriptor
	// Weight in pounds. Set once at construction.
	Weight      float64
	Size        species.SizeCategory
	X, Y        float64
	Angle       float64
	FacingRight bool
}

// New builds a fish of known weight. Weight must be positive.
func New(d *species.Descriptor, weight float64, size species.SizeCategory, x, y float64) (*Fish, error) {
	if d == nil {
		return nil, fmt.Errorf("fish needs a species")
	}
	if weight <= 0 {
		return nil, fmt.Errorf("fish weight must be positive, got %v", weight)
	}
	return &Fish{Species: d, Weight: weight, Size: size, X: x, Y: y, FacingRight: true}, nil
}

// Spawn builds a fish whose weight is sampled from the species' range for
// size.
func Spawn(d *species.Descriptor, size species.SizeCategory, src biology.RandomSource, x, y float64) (*Fish, error) {
	if d == nil {
		return nil, fmt.Errorf("fish needs a species")
	}
	r, ok := d.Size(size)
	if !ok {
		return nil, fmt.Errorf("species %s has no size ranges", d.ID)
	}
	return New(d, biology.RandomWeight(src, r.MinWeight, r.MaxWeight), size, x, y)
}

// Length in inches.
func (f *Fish) Length() int {
	return f.Species.LengthFor(f.Weight)
}

// BiologicalAge samples an age in years. Each call draws again.
func (f *Fish) BiologicalAge(src biology.RandomSource) int {
	return f.Species.AgeFor(f.Weight, src)
}

// BodySize is the default body-size scalar for the fish's size category.
func (f *Fish) BodySize() float64 {
	r, _ := f.Species.Size(f.Size)
	return r.BodySize
}

// Sprite is the host sprite key for the fish's size category.
func (f *Fish) Sprite() string {
	r, _ := f.Species.Size(f.Size)
	return r.Sprite
}

// Transform is the fish's on-field frame.
func (f *Fish) Transform() render.Transform {
	return render.Placement(f.X, f.Y, f.Angle, f.FacingRight)
}

// Render draws the fish at its own position and orientation.
func (f *Fish) Render(s draw.Surface, bodySize float64) error {
	return render.Species(s, f.Species, bodySize, f.Transform())
}

// RenderAt draws the fish at the surface's current origin, facing right, for
// contexts like the catch popup.
func (f *Fish) RenderAt(s draw.Surface, bodySize float64) error {
	return render.Species(s, f.Species, bodySize, render.Identity())
}
