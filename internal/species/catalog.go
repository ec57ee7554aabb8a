package species

import "github.com/appengine-ltd/fishsprite/internal/biology"

const YellowPerchID = "yellow_perch"

// YellowPerch is Perca flavescens: an opportunistic feeder and the usual
// first catch for beginners.
func YellowPerch() Descriptor {
	return Descriptor{
		ID:         YellowPerchID,
		Name:       "Yellow Perch",
		Scientific: "Perca flavescens",
		Notes:      "Opportunistic feeder, beginner-friendly species",
		Palette: Palette{
			Base:  MustColor("#d9a62e"),
			Belly: MustColor("#f4e8c1"),
			Bars:  MustColor("#3f4a23"),
			Fins:  MustColor("#e07b39"),
		},
		Sizes: map[SizeCategory]SizeRange{
			SizeSmall:  {MinWeight: 0.1, MaxWeight: 0.5, BodySize: 14, Sprite: "yellow_perch_large"},
			SizeMedium: {MinWeight: 0.5, MaxWeight: 1.2, BodySize: 20, Sprite: "yellow_perch_large"},
			SizeLarge:  {MinWeight: 1.2, MaxWeight: 2.0, BodySize: 26, Sprite: "yellow_perch_large"},
			SizeTrophy: {MinWeight: 2.0, MaxWeight: 3.2, BodySize: 32, Sprite: "yellow_perch_large"},
		},
		Length:   biology.YellowPerchLength,
		AgeBands: append([]biology.AgeBand(nil), biology.YellowPerchAgeBands...),
	}
}

// BuiltIn returns the species shipped with the binary.
func BuiltIn() []Descriptor {
	return []Descriptor{YellowPerch()}
}
