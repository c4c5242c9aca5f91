package colony

import (
	"github.com/vovakirdan/tui-antfarm/internal/core"
	"github.com/vovakirdan/tui-antfarm/internal/sim"
)

// Ant state names.
const (
	StateExploring  = "exploring"
	StateSeeking    = "seeking"
	StateDelivering = "delivering"
	StateHunting    = "hunting"
)

// carryOffset is how far left of the ant a carried item is drawn.
const carryOffset = 8

// Ant is a worker driven by a four-state brain.
// It refers to its targets by id only; they may vanish between ticks.
type Ant struct {
	*sim.GameEntity
	env *env

	carried  core.Sprite
	carrying bool

	leafID   int
	spiderID int

	// err holds a failure from inside a state hook until Process returns it.
	err error
}

// newAnt creates an ant with all four states registered. Its brain stays
// inert until the first SetState.
func newAnt(e *env, image core.Sprite) *Ant {
	a := &Ant{
		GameEntity: sim.NewGameEntity(sim.KindAnt, image),
		env:        e,
	}

	a.Brain.AddState(&exploringState{newAntState(StateExploring, a)})
	a.Brain.AddState(&seekingState{newAntState(StateSeeking, a)})
	a.Brain.AddState(&deliveringState{newAntState(StateDelivering, a)})
	a.Brain.AddState(&huntingState{antState: newAntState(StateHunting, a)})

	a.Brain.OnTransition(func(from, to string) {
		e.logger.Debug("ant changed state", "ant", a.ID(), "from", from, "to", to)
	})
	return a
}

// Carrying returns the carried item, if any.
func (a *Ant) Carrying() (core.Sprite, bool) {
	return a.carried, a.carrying
}

// Carry picks up an item.
func (a *Ant) Carry(img core.Sprite) {
	a.carried = img
	a.carrying = true
}

// Drop paints the carried item onto the background where the ant stands.
// It reports whether anything was dropped.
func (a *Ant) Drop(bg *sim.Background) bool {
	if !a.carrying {
		return false
	}
	bg.Stamp(a.carried, a.carryPosition())
	a.carried = core.Sprite{}
	a.carrying = false
	return true
}

func (a *Ant) carryPosition() core.Vector2 {
	return a.Location.Sub(core.Vec2(carryOffset, 0))
}

// leaf resolves the remembered leaf id.
func (a *Ant) leaf() (*Leaf, bool) {
	e, ok := a.World().Get(a.leafID)
	if !ok {
		return nil, false
	}
	leaf, ok := e.(*Leaf)
	return leaf, ok
}

// spider resolves the remembered spider id.
func (a *Ant) spider() (*Spider, bool) {
	e, ok := a.World().Get(a.spiderID)
	if !ok {
		return nil, false
	}
	spider, ok := e.(*Spider)
	return spider, ok
}

// remove takes an entity out of the world, keeping the first failure.
func (a *Ant) remove(e sim.Entity) {
	if err := a.World().RemoveEntity(e); err != nil && a.err == nil {
		a.err = err
	}
}

// Process thinks, moves, and reports any failure raised by a state hook.
func (a *Ant) Process(dt float64) error {
	if err := a.GameEntity.Process(dt); err != nil {
		return err
	}
	err := a.err
	a.err = nil
	return err
}

// Render draws the ant and whatever it carries.
func (a *Ant) Render(dst core.Surface) {
	a.GameEntity.Render(dst)
	if a.carrying {
		dst.Blit(a.carried, a.carryPosition())
	}
}
