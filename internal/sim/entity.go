// Package sim contains the entity world model: game entities that walk toward
// a destination under the control of a state machine, and the World that owns
// them, answers proximity queries and dispatches per-tick updates.
package sim

import (
	"github.com/vovakirdan/tui-antfarm/internal/core"
	"github.com/vovakirdan/tui-antfarm/internal/fsm"
)

// Kind tags the closed set of entity variants.
type Kind string

const (
	KindAnt    Kind = "ant"
	KindLeaf   Kind = "leaf"
	KindSpider Kind = "spider"
)

// Entity is anything the World can own.
// Variants embed *GameEntity and override Process or Render as needed.
type Entity interface {
	// Base returns the shared entity state.
	Base() *GameEntity

	// Process advances the entity by dt seconds.
	Process(dt float64) error

	// Render draws the entity.
	Render(dst core.Surface)
}

// GameEntity is the state every simulated object shares.
type GameEntity struct {
	Location    core.Vector2
	Destination core.Vector2
	Brain       *fsm.Machine

	kind  Kind
	image core.Sprite
	speed float64
	id    int
	world *World
}

// NewGameEntity creates a detached entity with an inert brain.
func NewGameEntity(kind Kind, image core.Sprite) *GameEntity {
	return &GameEntity{
		kind:  kind,
		image: image,
		Brain: fsm.NewMachine(),
	}
}

// Base returns e itself; it lets embedding types satisfy Entity.
func (e *GameEntity) Base() *GameEntity { return e }

// ID returns the world-assigned id. Only meaningful while the entity is live.
func (e *GameEntity) ID() int { return e.id }

// Kind returns the entity variant tag.
func (e *GameEntity) Kind() Kind { return e.kind }

// World returns the world the entity was added to, or nil while detached.
func (e *GameEntity) World() *World { return e.world }

// Image returns the entity's display handle.
func (e *GameEntity) Image() core.Sprite { return e.image }

// SetImage swaps the display handle.
func (e *GameEntity) SetImage(img core.Sprite) { e.image = img }

// Speed returns the movement speed in world units per second.
func (e *GameEntity) Speed() float64 { return e.speed }

// SetSpeed sets the movement speed. Negative speeds are clamped to zero.
func (e *GameEntity) SetSpeed(speed float64) {
	e.speed = max(speed, 0)
}

// Process runs the brain and then steps toward the destination.
func (e *GameEntity) Process(dt float64) error {
	if err := e.Brain.Think(); err != nil {
		return err
	}
	e.Move(dt)
	return nil
}

// Move steps straight toward the destination by speed*dt, stopping on it
// rather than overshooting.
func (e *GameEntity) Move(dt float64) {
	if e.speed <= 0 || dt <= 0 || e.Location == e.Destination {
		return
	}

	toDest := e.Destination.Sub(e.Location)
	remaining := toDest.Length()
	travel := e.speed * dt
	if travel >= remaining {
		e.Location = e.Destination
		return
	}
	e.Location = e.Location.Add(toDest.Normalized().Scale(travel))
}

// Render blits the sprite centered on the location.
func (e *GameEntity) Render(dst core.Surface) {
	dst.Blit(e.image, e.Location)
}
