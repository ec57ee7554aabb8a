package species

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/fishsprite/internal/biology"
)

// Descriptor is the static, read-only description of a species.
type Descriptor struct {
	ID         string
	Name       string
	Scientific string
	Notes      string
	Palette    Palette
	Sizes      map[SizeCategory]SizeRange
	Length     biology.PowerLaw
	AgeBands   []biology.AgeBand
}

func (d *Descriptor) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("species id is required")
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("species %s: name is required", d.ID)
	}
	if err := d.Palette.Validate(); err != nil {
		return fmt.Errorf("species %s: %w", d.ID, err)
	}
	if d.Length.Coeff <= 0 {
		return fmt.Errorf("species %s: length coefficient must be positive", d.ID)
	}
	if len(d.AgeBands) == 0 {
		return fmt.Errorf("species %s: at least one age band is required", d.ID)
	}
	for i, b := range d.AgeBands {
		if b.MaxAge < b.MinAge {
			return fmt.Errorf("species %s: age band %d has max age below min age", d.ID, i)
		}
	}
	if len(d.Sizes) == 0 {
		return fmt.Errorf("species %s: at least one size category is required", d.ID)
	}
	for cat, r := range d.Sizes {
		if r.MinWeight <= 0 || r.MaxWeight < r.MinWeight {
			return fmt.Errorf("species %s: invalid %s weight range [%v,%v]", d.ID, cat, r.MinWeight, r.MaxWeight)
		}
		if r.BodySize <= 0 {
			return fmt.Errorf("species %s: %s body size must be positive", d.ID, cat)
		}
	}
	return nil
}

// LengthFor returns the rounded length in inches at weight.
func (d *Descriptor) LengthFor(weight float64) int {
	return d.Length.Length(weight)
}

// AgeFor samples a biological age in years at weight.
func (d *Descriptor) AgeFor(weight float64, src biology.RandomSource) int {
	return biology.Age(d.AgeBands, weight, src)
}

// Size returns the range for cat, falling back to the nearest smaller
// category the species defines.
func (d *Descriptor) Size(cat SizeCategory) (SizeRange, bool) {
	for c := cat; c >= SizeSmall; c-- {
		if r, ok := d.Sizes[c]; ok {
			return r, true
		}
	}
	for _, c := range SizeCategories() {
		if r, ok := d.Sizes[c]; ok {
			return r, true
		}
	}
	return SizeRange{}, false
}

// Classify returns the largest category whose range holds weight. A weight
// that falls between or past the ranges takes the largest category it has
// outgrown.
func (d *Descriptor) Classify(weight float64) SizeCategory {
	best := SizeSmall
	for _, c := range SizeCategories() {
		r, ok := d.Sizes[c]
		if !ok {
			continue
		}
		if r.Contains(weight) || weight > r.MaxWeight {
			best = c
		}
	}
	return best
}
