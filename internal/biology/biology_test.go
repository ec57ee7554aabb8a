package biology

import (
	"math"
	"testing"
)

func TestLengthKnownWeights(t *testing.T) {
	tests := []struct {
		weight float64
		want   int
	}{
		{0, 0},
		{1, 10},
		{8, 20},
		{0.5, 7},
		{3, 14},
	}
	for _, tc := range tests {
		if got := Length(tc.weight); got != tc.want {
			t.Errorf("Length(%v) = %d, want %d", tc.weight, got, tc.want)
		}
	}
}

func TestLengthMonotonic(t *testing.T) {
	prev := Length(0.01)
	for w := 0.02; w < 20; w += 0.01 {
		got := Length(w)
		if got < prev {
			t.Fatalf("length decreased at weight %.2f: %d < %d", w, got, prev)
		}
		prev = got
	}
}

func TestBiologicalAgeStaysInBand(t *testing.T) {
	tests := []struct {
		lo, hi         float64
		minAge, maxAge int
	}{
		{0.01, 0.7, 1, 3},
		{0.71, 1.2, 3, 5},
		{1.21, 2.0, 5, 8},
		{2.01, 10, 8, 12},
	}
	src := NewRand(2024)
	for _, tc := range tests {
		for i := 0; i < 10000; i++ {
			w := tc.lo + (tc.hi-tc.lo)*float64(i)/9999
			age := BiologicalAge(w, src)
			if age < tc.minAge || age > tc.maxAge {
				t.Fatalf("weight %.3f: age %d outside [%d,%d]", w, age, tc.minAge, tc.maxAge)
			}
		}
	}
}

func TestBiologicalAgeBoundariesAreInclusive(t *testing.T) {
	tests := []struct {
		weight float64
		band   AgeBand
	}{
		{0.7, YellowPerchAgeBands[0]},
		{1.2, YellowPerchAgeBands[1]},
		{2.0, YellowPerchAgeBands[2]},
		{2.0001, YellowPerchAgeBands[3]},
	}
	for _, tc := range tests {
		if got := Band(YellowPerchAgeBands, tc.weight); got != tc.band {
			t.Errorf("Band(%v) = %+v, want %+v", tc.weight, got, tc.band)
		}
	}
}

type fixedSource float64

// Between returns lo + f*(hi-lo) for the fixed fraction f.
func (f fixedSource) Between(lo, hi float64) float64 {
	return lo + float64(f)*(hi-lo)
}

func TestBiologicalAgeRoundsSample(t *testing.T) {
	if got := BiologicalAge(3, fixedSource(0)); got != 8 {
		t.Fatalf("expected lower bound 8, got %d", got)
	}
	if got := BiologicalAge(3, fixedSource(0.99)); got != 12 {
		t.Fatalf("expected rounding up to 12, got %d", got)
	}
	if got := BiologicalAge(0.5, fixedSource(0.5)); got != 2 {
		t.Fatalf("expected midpoint 2, got %d", got)
	}
}

func TestBiologicalAgeResamples(t *testing.T) {
	src := NewRand(1)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		seen[BiologicalAge(5, src)] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected repeated calls to vary, got %v", seen)
	}
}

func TestBandEmpty(t *testing.T) {
	if got := Band(nil, 1); got != (AgeBand{}) {
		t.Fatalf("expected zero band, got %+v", got)
	}
}

func TestRandomWeightWithinRange(t *testing.T) {
	src := NewRand(5)
	for i := 0; i < 500; i++ {
		w := RandomWeight(src, 0.4, 0.9)
		if w < 0.4 || w > 0.9 {
			t.Fatalf("weight %v outside range", w)
		}
		if math.Abs(w*100-math.Round(w*100)) > 1e-9 {
			t.Fatalf("weight %v not rounded to hundredths", w)
		}
	}
	if w := RandomWeight(src, 0, 0); w != 0.01 {
		t.Fatalf("expected floor of 0.01, got %v", w)
	}
}
