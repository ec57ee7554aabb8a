// Package biology derives display attributes of a caught fish from its weight.
//
// Weights are in pounds and lengths in inches. All functions assume a
// non-negative weight; a negative weight is a caller bug and is not clamped.
package biology

import "math"

// PowerLaw models length = Coeff * weight^Exp.
type PowerLaw struct {
	Coeff float64 `yaml:"coeff"`
	Exp   float64 `yaml:"exp"`
}

// AgeBand maps weights up to MaxWeight (inclusive) to an age range in years.
// A band with MaxWeight <= 0 matches every weight and should come last.
type AgeBand struct {
	MaxWeight float64 `yaml:"max_weight"`
	MinAge    float64 `yaml:"min_age"`
	MaxAge    float64 `yaml:"max_age"`
}

// YellowPerchLength is the length-weight relation of Perca flavescens: a
// small, deep-bodied fish.
var YellowPerchLength = PowerLaw{Coeff: 9.5, Exp: 0.35}

// YellowPerchAgeBands reflects the species' fast growth and short lifespan.
var YellowPerchAgeBands = []AgeBand{
	{MaxWeight: 0.7, MinAge: 1, MaxAge: 3},
	{MaxWeight: 1.2, MinAge: 3, MaxAge: 5},
	{MaxWeight: 2.0, MinAge: 5, MaxAge: 8},
	{MinAge: 8, MaxAge: 12},
}

// Length returns the rounded length in inches for weight.
func (p PowerLaw) Length(weight float64) int {
	return int(math.Round(p.Coeff * math.Pow(weight, p.Exp)))
}

// Band returns the band weight falls in. The last band catches everything
// heavier than the explicit thresholds.
func Band(bands []AgeBand, weight float64) AgeBand {
	for _, b := range bands {
		if b.MaxWeight <= 0 || weight <= b.MaxWeight {
			return b
		}
	}
	if len(bands) == 0 {
		return AgeBand{}
	}
	return bands[len(bands)-1]
}

// Age samples an age for weight. Every call draws from src, so repeated calls
// for the same weight may differ.
func Age(bands []AgeBand, weight float64, src RandomSource) int {
	b := Band(bands, weight)
	return int(math.Round(src.Between(b.MinAge, b.MaxAge)))
}

// Length is the yellow perch length in inches: round(9.5 * weight^0.35).
func Length(weight float64) int {
	return YellowPerchLength.Length(weight)
}

// BiologicalAge samples a yellow perch age in whole years.
func BiologicalAge(weight float64, src RandomSource) int {
	return Age(YellowPerchAgeBands, weight, src)
}

// RandomWeight samples a weight in [lo, hi], rounded to hundredths of a pound.
// The result is never below 0.01.
func RandomWeight(src RandomSource, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	w := math.Round(src.Between(lo, hi)*100) / 100
	if w < 0.01 {
		w = 0.01
	}
	return w
}
