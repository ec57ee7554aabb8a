package species

import (
	"fmt"
	"strings"
)

// SizeCategory is the coarse size class the host spawns a fish with.
type SizeCategory int

const (
	SizeSmall SizeCategory = iota
	SizeMedium
	SizeLarge
	SizeTrophy
)

func SizeCategories() []SizeCategory {
	return []SizeCategory{SizeSmall, SizeMedium, SizeLarge, SizeTrophy}
}

func (c SizeCategory) String() string {
	switch c {
	case SizeSmall:
		return "SMALL"
	case SizeMedium:
		return "MEDIUM"
	case SizeLarge:
		return "LARGE"
	case SizeTrophy:
		return "TROPHY"
	default:
		return fmt.Sprintf("SizeCategory(%d)", int(c))
	}
}

func ParseSizeCategory(s string) (SizeCategory, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SMALL":
		return SizeSmall, nil
	case "MEDIUM", "":
		return SizeMedium, nil
	case "LARGE":
		return SizeLarge, nil
	case "TROPHY":
		return SizeTrophy, nil
	}
	return SizeMedium, fmt.Errorf("unknown size category %q", s)
}

// SizeRange is what a species looks like at one size category.
type SizeRange struct {
	MinWeight float64 `yaml:"min_weight"`
	MaxWeight float64 `yaml:"max_weight"`
	// BodySize is the renderer's body-size scalar in pixels.
	BodySize float64 `yaml:"body_size"`
	Sprite   string  `yaml:"sprite"`
}

func (r SizeRange) Contains(weight float64) bool {
	return weight >= r.MinWeight && weight <= r.MaxWeight
}
