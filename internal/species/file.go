package species

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/fishsprite/internal/biology"
	"github.com/appengine-ltd/fishsprite/pkg/logger"
)

// File is the on-disk species catalog.
type File struct {
	Species []DescriptorSpec `yaml:"species"`
}

// DescriptorSpec is the YAML form of a Descriptor. Size keys are category
// names (small, medium, large, trophy).
type DescriptorSpec struct {
	ID         string               `yaml:"id"`
	Name       string               `yaml:"name"`
	Scientific string               `yaml:"scientific,omitempty"`
	Notes      string               `yaml:"notes,omitempty"`
	Palette    PaletteSpec          `yaml:"palette"`
	Sizes      map[string]SizeRange `yaml:"sizes"`
	Length     *biology.PowerLaw    `yaml:"length,omitempty"`
	AgeBands   []biology.AgeBand    `yaml:"age_bands,omitempty"`
}

// Descriptor converts the spec. Missing formulas default to yellow perch
// constants.
func (s DescriptorSpec) Descriptor() (Descriptor, error) {
	palette, err := s.Palette.Parse()
	if err != nil {
		return Descriptor{}, fmt.Errorf("species %s: %w", s.ID, err)
	}

	sizes := make(map[SizeCategory]SizeRange, len(s.Sizes))
	for name, r := range s.Sizes {
		cat, err := ParseSizeCategory(name)
		if err != nil {
			return Descriptor{}, fmt.Errorf("species %s: %w", s.ID, err)
		}
		sizes[cat] = r
	}

	length := biology.YellowPerchLength
	if s.Length != nil {
		length = *s.Length
	}
	bands := s.AgeBands
	if len(bands) == 0 {
		bands = append([]biology.AgeBand(nil), biology.YellowPerchAgeBands...)
	}

	return Descriptor{
		ID:         s.ID,
		Name:       s.Name,
		Scientific: s.Scientific,
		Notes:      s.Notes,
		Palette:    palette,
		Sizes:      sizes,
		Length:     length,
		AgeBands:   bands,
	}, nil
}

// SpecOf is the inverse of DescriptorSpec.Descriptor.
func SpecOf(d *Descriptor) DescriptorSpec {
	sizes := make(map[string]SizeRange, len(d.Sizes))
	for cat, r := range d.Sizes {
		sizes[cat.String()] = r
	}
	length := d.Length
	return DescriptorSpec{
		ID:         d.ID,
		Name:       d.Name,
		Scientific: d.Scientific,
		Notes:      d.Notes,
		Palette:    d.Palette.Spec(),
		Sizes:      sizes,
		Length:     &length,
		AgeBands:   d.AgeBands,
	}
}

// ParseFile decodes a catalog document.
func ParseFile(data []byte) ([]Descriptor, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode species file: %w", err)
	}
	out := make([]Descriptor, 0, len(f.Species))
	for i, spec := range f.Species {
		d, err := spec.Descriptor()
		if err != nil {
			return nil, fmt.Errorf("species entry %d: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// LoadFile registers every species in the YAML file at path.
func (r *Registry) LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read species file: %w", err)
	}
	descs, err := ParseFile(data)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	for i := range descs {
		if err := descs[i].Validate(); err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
	}
	for _, d := range descs {
		if err := r.Register(d); err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
	}
	logger.Log.WithField("path", path).Infof("loaded %d species", len(descs))
	return len(descs), nil
}

// MarshalFile encodes descriptors in the LoadFile format.
func MarshalFile(descs []*Descriptor) ([]byte, error) {
	f := File{Species: make([]DescriptorSpec, 0, len(descs))}
	for _, d := range descs {
		f.Species = append(f.Species, SpecOf(d))
	}
	return yaml.Marshal(f)
}
