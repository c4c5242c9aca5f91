package colony

import (
	"testing"

	"github.com/vovakirdan/tui-antfarm/internal/core"
	"github.com/vovakirdan/tui-antfarm/internal/sim"
)

func TestSpiderBitten(t *testing.T) {
	tests := []struct {
		name       string
		health     int
		wantHealth int
		wantDead   bool
	}{
		{"last bite kills", 1, 0, true},
		{"survives a bite", 25, 24, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(highRandom{})
			s := newSpider(e, spriteFor(e.cfg.Sprites.Spider))
			s.health = tt.health
			alive := s.Image()

			s.Bitten()

			if s.Health() != tt.wantHealth {
				t.Errorf("Health() = %d, expected %d", s.Health(), tt.wantHealth)
			}
			if s.Dead() != tt.wantDead {
				t.Errorf("Dead() = %v, expected %v", s.Dead(), tt.wantDead)
			}
			if want := alive.Flipped != tt.wantDead; s.Image().Flipped != want {
				t.Errorf("Image().Flipped = %v, expected %v", s.Image().Flipped, want)
			}
			// A bite always sets the bitten speed, even on a corpse.
			if s.Speed() != 140 {
				t.Errorf("Speed() = %v, expected 140", s.Speed())
			}
		})
	}
}

func TestSpiderSpeedJitter(t *testing.T) {
	tests := []struct {
		name string
		rng  core.Random
		want float64
	}{
		{"low", lowRandom{}, 30},
		{"high", highRandom{}, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(tt.rng)
			s := newSpider(e, spriteFor(e.cfg.Sprites.Spider))
			if s.Speed() != tt.want {
				t.Errorf("Speed() = %v, expected %v", s.Speed(), tt.want)
			}
		})
	}
}

func TestSpiderDespawnsPastRightEdge(t *testing.T) {
	e := newTestEnv(highRandom{})
	w := newTestWorld(e)
	gone := placeSpider(w, e, core.Vec2(643, 100))
	edge := placeSpider(w, e, core.Vec2(642, 100))

	if err := w.Process(0.1); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if _, ok := w.Get(gone.ID()); ok {
		t.Error("spider past the edge still in world")
	}
	if _, ok := w.Get(edge.ID()); !ok {
		t.Error("spider on the edge was removed")
	}
	if e.tally.SpidersEscaped != 1 {
		t.Errorf("SpidersEscaped = %d, expected 1", e.tally.SpidersEscaped)
	}
}

func TestSpiderRenderMeter(t *testing.T) {
	e := newTestEnv(highRandom{})
	s := newSpider(e, spriteFor(e.cfg.Sprites.Spider))
	s.health = 7

	dst := &blitSurface{}
	s.Render(dst)

	if len(dst.blits) != 1 {
		t.Errorf("blits = %d, expected 1", len(dst.blits))
	}
	if dst.meter != 7 {
		t.Errorf("meter = %d, expected 7", dst.meter)
	}
}

func TestSpawner(t *testing.T) {
	e := newTestEnv(lowRandom{})
	w := newTestWorld(e)
	sp := newSpawner(e)

	sp.Tick(w)

	if w.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", w.Len())
	}
	if e.tally.LeavesSpawned != 1 || e.tally.SpidersSpawned != 1 {
		t.Errorf("tally = %+v, expected one leaf and one spider", *e.tally)
	}

	var spider *Spider
	for _, ent := range w.Entities() {
		if sp, ok := ent.(*Spider); ok {
			spider = sp
		}
	}
	if spider == nil {
		t.Fatal("spider not found")
	}
	if got, ok := w.Get(spider.ID()); !ok || got != sim.Entity(spider) {
		t.Errorf("Get(%d) = %v, %v, expected the spawned spider", spider.ID(), got, ok)
	}
	base := spider.Base()
	if want := core.Vec2(-50, 0); base.Location != want {
		t.Errorf("spider Location = %v, expected %v", base.Location, want)
	}
	if want := core.Vec2(690, 0); base.Destination != want {
		t.Errorf("spider Destination = %v, expected %v", base.Destination, want)
	}
}

func TestSpawnerQuiet(t *testing.T) {
	e := newTestEnv(highRandom{})
	w := newTestWorld(e)
	newSpawner(e).Tick(w)

	if w.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", w.Len())
	}
}
