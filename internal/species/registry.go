package species

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/fishsprite/pkg/logger"
)

// Registry holds validated species descriptors keyed by id. Descriptors are
// validated once on Register so rendering never has to.
type Registry struct {
	mu   sync.RWMutex
	byID map[string]*Descriptor
}

func NewRegistry() *Registry {
	return &Registry{byID: map[string]*Descriptor{}}
}

// DefaultRegistry returns a registry holding the built-in catalog.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, d := range BuiltIn() {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *Registry) Register(d Descriptor) error {
	d.ID = normalizeKey(d.ID)
	if err := d.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[d.ID]; ok {
		return fmt.Errorf("species %s already registered", d.ID)
	}
	stored := d
	stored.Sizes = maps.Clone(d.Sizes)
	stored.AgeBands = slices.Clone(d.AgeBands)
	r.byID[d.ID] = &stored

	logger.Log.WithFields(logrus.Fields{
		"species": d.ID,
		"sizes":   len(d.Sizes),
	}).Debug("species registered")
	return nil
}

func (r *Registry) Get(id string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[normalizeKey(id)]
	return d, ok
}

// Lookup resolves a species by id or display name. On a miss the error names
// the closest registered species.
func (r *Registry) Lookup(name string) (*Descriptor, error) {
	if d, ok := r.Get(name); ok {
		return d, nil
	}

	key := normalizeKey(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.byID {
		if normalizeKey(d.Name) == key {
			return d, nil
		}
	}

	if hint := r.closest(key); hint != "" {
		return nil, fmt.Errorf("unknown species %q (did you mean %q?)", name, hint)
	}
	return nil, fmt.Errorf("unknown species %q", name)
}

// All returns descriptors sorted by id.
func (r *Registry) All() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Descriptor, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func (r *Registry) closest(key string) string {
	best := ""
	bestDist := -1
	for id, d := range r.byID {
		for _, candidate := range []string{id, normalizeKey(d.Name)} {
			dist := levenshtein.ComputeDistance(key, candidate)
			if bestDist < 0 || dist < bestDist || (dist == bestDist && id < best) {
				best, bestDist = id, dist
			}
		}
	}
	// Anything further than half the key away is noise.
	if bestDist < 0 || bestDist > max(3, len(key)/2) {
		return ""
	}
	return best
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.Join(strings.Fields(s), "_")
}
