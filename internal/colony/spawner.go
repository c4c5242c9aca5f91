package colony

import (
	"github.com/vovakirdan/tui-antfarm/internal/core"
	"github.com/vovakirdan/tui-antfarm/internal/sim"
)

// spawner drops leaves at random and sends spiders across the world.
type spawner struct {
	env    *env
	leaf   core.Sprite
	spider core.Sprite
}

func newSpawner(e *env) *spawner {
	return &spawner{
		env:    e,
		leaf:   spriteFor(e.cfg.Sprites.Leaf),
		spider: spriteFor(e.cfg.Sprites.Spider),
	}
}

// Tick rolls once for a leaf and once for a spider.
func (s *spawner) Tick(w *sim.World) {
	if core.OneIn(s.env.rng, s.env.cfg.Spawn.LeafOneIn) {
		s.spawnLeaf(w)
	}
	if core.OneIn(s.env.rng, s.env.cfg.Spawn.SpiderOneIn) {
		s.spawnSpider(w)
	}
}

func (s *spawner) spawnLeaf(w *sim.World) *Leaf {
	leaf := NewLeaf(s.leaf)
	leaf.Location = s.env.randomPoint()
	w.AddEntity(leaf)
	s.env.tally.LeavesSpawned++
	return leaf
}

// spawnSpider starts a spider just off the left edge, heading for a point
// just off the right edge.
func (s *spawner) spawnSpider(w *sim.World) *Spider {
	margin := s.env.cfg.Spawn.SpiderMargin
	height := int(s.env.bounds.Height)

	spider := newSpider(s.env, s.spider)
	spider.Location = core.Vec2(-margin, float64(s.env.rng.Intn(0, height)))
	spider.Destination = core.Vec2(s.env.bounds.Width+margin, float64(s.env.rng.Intn(0, height)))
	w.AddEntity(spider)
	s.env.tally.SpidersSpawned++
	s.env.logger.Debug("spider spawned", "spider", spider.ID(), "at", spider.Location)
	return spider
}
