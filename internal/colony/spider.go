package colony

import (
	"github.com/vovakirdan/tui-antfarm/internal/core"
	"github.com/vovakirdan/tui-antfarm/internal/sim"
)

// Spider walks across the world from left to right. Ants defend the nest
// against spiders that come too close.
type Spider struct {
	*sim.GameEntity
	env       *env
	health    int
	deadImage core.Sprite
}

// newSpider creates a spider at full health with a jittered walking speed.
func newSpider(e *env, image core.Sprite) *Spider {
	s := &Spider{
		GameEntity: sim.NewGameEntity(sim.KindSpider, image),
		env:        e,
		health:     e.cfg.Spider.Health,
		deadImage:  image.Flip(),
	}
	s.SetSpeed(e.jitter(e.cfg.Spider.Speed, e.cfg.Spider.SpeedJitter))
	return s
}

// Health returns the remaining health.
func (s *Spider) Health() int {
	return s.health
}

// Dead reports whether the spider has no health left.
func (s *Spider) Dead() bool {
	return s.health <= 0
}

// Bitten takes one point of health. At zero the spider stops and shows its
// corpse, but every bite then sets the bitten speed, so a freshly killed
// spider keeps moving until an ant carries it off.
func (s *Spider) Bitten() {
	s.health--
	if s.health <= 0 {
		s.SetSpeed(0)
		s.SetImage(s.deadImage)
	}
	s.SetSpeed(s.env.cfg.Spider.BittenSpeed)
}

// Process despawns the spider once it walks off the right edge.
func (s *Spider) Process(dt float64) error {
	if s.Location.X > s.env.bounds.Width+s.env.cfg.Spider.DespawnMargin {
		s.env.tally.SpidersEscaped++
		return s.World().RemoveEntity(s)
	}
	return s.GameEntity.Process(dt)
}

// Render draws the spider with its health meter.
func (s *Spider) Render(dst core.Surface) {
	s.GameEntity.Render(dst)
	dst.Meter(s.Location, s.health, s.env.cfg.Spider.Health)
}
