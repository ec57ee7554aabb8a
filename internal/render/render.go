package render

import (
	"fmt"
	"sync"

	"github.com/appengine-ltd/fishsprite/internal/draw"
	"github.com/appengine-ltd/fishsprite/internal/species"
)

// BodyFunc paints one species at the surface origin, facing +x. It must only
// issue draw calls and leave the transform as it found it.
type BodyFunc func(s draw.Surface, bodySize float64, p species.Palette)

var (
	mu     sync.RWMutex
	bodies = map[string]BodyFunc{
		species.YellowPerchID: YellowPerch,
	}
)

// Register installs the body function for a species id, replacing any
// previous one.
func Register(id string, fn BodyFunc) {
	mu.Lock()
	defer mu.Unlock()
	bodies[id] = fn
}

// For returns the body function registered for id.
func For(id string) (BodyFunc, bool) {
	mu.RLock()
	defer mu.RUnlock()
	fn, ok := bodies[id]
	return fn, ok
}

// Species draws d's body in frame xf. The surface transform is restored on
// return for placed frames; identity frames never touch it.
func Species(s draw.Surface, d *species.Descriptor, bodySize float64, xf Transform) error {
	fn, ok := For(d.ID)
	if !ok {
		return fmt.Errorf("no renderer for species %s", d.ID)
	}
	Body(s, fn, bodySize, d.Palette, xf)
	return nil
}

// Body runs fn inside frame xf.
func Body(s draw.Surface, fn BodyFunc, bodySize float64, p species.Palette, xf Transform) {
	restore := xf.apply(s)
	defer restore()
	fn(s, bodySize, p)
}
