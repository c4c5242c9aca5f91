package sim

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-antfarm/internal/core"
)

// ErrEntityNotFound is returned when removing an entity that is not live.
// Removing twice is a bug in the caller.
var ErrEntityNotFound = errors.New("sim: entity not found")

// Bounds describes the world geometry.
type Bounds struct {
	Width    float64
	Height   float64
	Nest     core.Vector2 // Nest center
	NestSize float64      // Nest radius
}

// Contains reports whether p lies inside the world rectangle.
func (b Bounds) Contains(p core.Vector2) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// InNest reports whether p is strictly within the nest radius.
func (b Bounds) InNest(p core.Vector2) bool {
	return b.Nest.DistanceTo(p) < b.NestSize
}

// World owns every live entity.
// Ids are handed out in increasing order and never reused, so iterating ids
// in ascending order is insertion order.
type World struct {
	bounds     Bounds
	background *Background
	entities   map[int]Entity
	order      []int // Live ids, ascending
	nextID     int
}

// NewWorld creates an empty world.
func NewWorld(bounds Bounds) *World {
	return &World{
		bounds:     bounds,
		background: NewBackground(bounds),
		entities:   make(map[int]Entity),
	}
}

// Bounds returns the world geometry.
func (w *World) Bounds() Bounds {
	return w.bounds
}

// Background returns the static background layer.
func (w *World) Background() *Background {
	return w.background
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.order)
}

// AddEntity registers an entity under the next id and returns that id.
func (w *World) AddEntity(e Entity) int {
	base := e.Base()
	id := w.nextID
	w.nextID++

	base.id = id
	base.world = w
	w.entities[id] = e
	w.order = append(w.order, id)
	return id
}

// RemoveEntity deletes a live entity.
func (w *World) RemoveEntity(e Entity) error {
	id := e.Base().id
	if current, ok := w.entities[id]; !ok || current.Base() != e.Base() {
		return fmt.Errorf("%w: id %d", ErrEntityNotFound, id)
	}

	delete(w.entities, id)
	if i, found := slices.BinarySearch(w.order, id); found {
		w.order = slices.Delete(w.order, i, i+1)
	}
	return nil
}

// Get looks up a live entity. A missing id is normal: the entity may have
// been removed since the id was stored.
func (w *World) Get(id int) (Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Entities returns a snapshot of live entities in insertion order.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.entities[id])
	}
	return out
}

// CountKind returns how many live entities have the given kind.
func (w *World) CountKind(kind Kind) int {
	n := 0
	for _, id := range w.order {
		if w.entities[id].Base().kind == kind {
			n++
		}
	}
	return n
}

// GetCloseEntity returns the first entity, in insertion order, of the given
// kind that is strictly closer than rng to location. It is not a nearest
// neighbour search.
func (w *World) GetCloseEntity(kind Kind, location core.Vector2, rng float64) (Entity, bool) {
	for _, id := range w.order {
		e := w.entities[id]
		base := e.Base()
		if base.kind != kind {
			continue
		}
		if location.DistanceTo(base.Location) < rng {
			return e, true
		}
	}
	return nil, false
}

// Process advances every live entity by dt seconds.
// The entity list is snapshotted first, so entities may add or remove others
// (or themselves) mid-pass; an entity removed earlier in the pass is skipped.
func (w *World) Process(dt float64) error {
	for _, e := range w.Entities() {
		if current, ok := w.entities[e.Base().id]; !ok || current.Base() != e.Base() {
			continue
		}
		if err := e.Process(dt); err != nil {
			return fmt.Errorf("sim: %s %d: %w", e.Base().kind, e.Base().id, err)
		}
	}
	return nil
}

// Render draws the background and then every entity in insertion order.
func (w *World) Render(dst core.Surface) {
	w.background.Render(dst)
	for _, id := range w.order {
		w.entities[id].Render(dst)
	}
}
