package colony

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-antfarm/internal/config"
	"github.com/vovakirdan/tui-antfarm/internal/core"
	"github.com/vovakirdan/tui-antfarm/internal/sim"
)

// highRandom always returns the top of the range, so 1-in-n rolls never hit.
type highRandom struct{}

func (highRandom) Intn(lo, hi int) int { return max(lo, hi) }

// lowRandom always returns the bottom of the range, so 1-in-n rolls always hit.
type lowRandom struct{}

func (lowRandom) Intn(lo, hi int) int { return min(lo, hi) }

func newTestEnv(rng core.Random) *env {
	cfg := config.DefaultColonyConfig()
	return newEnv(&cfg, rng, log.New(io.Discard))
}

func newTestWorld(e *env) *sim.World {
	return sim.NewWorld(e.bounds)
}

// placeAnt adds an ant at loc and switches it into state.
func placeAnt(w *sim.World, e *env, loc core.Vector2, state string) *Ant {
	a := newAnt(e, spriteFor(e.cfg.Sprites.Ant))
	a.Location = loc
	w.AddEntity(a)
	if err := a.Brain.SetState(state); err != nil {
		panic(err)
	}
	return a
}

func placeLeaf(w *sim.World, e *env, loc core.Vector2) *Leaf {
	leaf := NewLeaf(spriteFor(e.cfg.Sprites.Leaf))
	leaf.Location = loc
	w.AddEntity(leaf)
	return leaf
}

func placeSpider(w *sim.World, e *env, loc core.Vector2) *Spider {
	s := newSpider(e, spriteFor(e.cfg.Sprites.Spider))
	s.Location = loc
	s.Destination = loc
	w.AddEntity(s)
	return s
}

// blitSurface records Blit calls.
type blitSurface struct {
	blits []core.Vector2
	meter int
}

func (s *blitSurface) Blit(_ core.Sprite, at core.Vector2) { s.blits = append(s.blits, at) }

func (s *blitSurface) Disc(core.Vector2, float64, rune, core.Color) {}

func (s *blitSurface) Meter(_ core.Vector2, value, _ int) { s.meter = value }
