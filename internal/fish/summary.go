package fish

import (
	"fmt"

	"github.com/appengine-ltd/fishsprite/internal/biology"
)

// Summary is what the catch announcement shows next to the rendered fish.
type Summary struct {
	SpeciesID  string  `json:"species_id"`
	Name       string  `json:"name"`
	Scientific string  `json:"scientific,omitempty"`
	Size       string  `json:"size"`
	WeightLb   float64 `json:"weight_lb"`
	LengthIn   int     `json:"length_in"`
	AgeYears   int     `json:"age_years"`
	Sprite     string  `json:"sprite"`
}

// Summary samples an age and collects the display attributes.
func (f *Fish) Summary(src biology.RandomSource) Summary {
	return Summary{
		SpeciesID:  f.Species.ID,
		Name:       f.Species.Name,
		Scientific: f.Species.Scientific,
		Size:       f.Size.String(),
		WeightLb:   f.Weight,
		LengthIn:   f.Length(),
		AgeYears:   f.BiologicalAge(src),
		Sprite:     f.Sprite(),
	}
}

func (s Summary) String() string {
	years := "years"
	if s.AgeYears == 1 {
		years = "year"
	}
	return fmt.Sprintf("%s: %.2f lb, %d in, about %d %s old", s.Name, s.WeightLb, s.LengthIn, s.AgeYears, years)
}
