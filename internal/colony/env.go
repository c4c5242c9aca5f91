// Package colony implements the ant farm: ants that explore, collect leaves,
// hunt spiders that wander near the nest, and carry their finds home.
package colony

import (
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-antfarm/internal/config"
	"github.com/vovakirdan/tui-antfarm/internal/core"
	"github.com/vovakirdan/tui-antfarm/internal/sim"
)

// Tally counts what happened in a colony since reset.
type Tally struct {
	LeavesSpawned  int
	LeavesPicked   int
	SpidersSpawned int
	SpidersKilled  int
	SpidersEscaped int
	Delivered      int // Items dropped at the nest, leaves and spiders alike
}

// env is the shared context every colony entity is built with.
type env struct {
	cfg    *config.ColonyConfig
	bounds sim.Bounds
	rng    core.Random
	tally  *Tally
	logger *log.Logger
}

func newEnv(cfg *config.ColonyConfig, rng core.Random, logger *log.Logger) *env {
	if logger == nil {
		logger = log.Default().WithPrefix("colony")
	}
	return &env{
		cfg:    cfg,
		bounds: BoundsFor(cfg.World),
		rng:    rng,
		tally:  &Tally{},
		logger: logger,
	}
}

// BoundsFor converts world config into simulation bounds.
func BoundsFor(w config.WorldConfig) sim.Bounds {
	return sim.Bounds{
		Width:    w.Width,
		Height:   w.Height,
		Nest:     core.Vec2(w.NestX, w.NestY),
		NestSize: w.NestSize,
	}
}

// randomPoint picks a whole-unit point inside the world rectangle.
func (e *env) randomPoint() core.Vector2 {
	return core.Vec2(
		float64(e.rng.Intn(0, int(e.bounds.Width))),
		float64(e.rng.Intn(0, int(e.bounds.Height))),
	)
}

// jitter returns base plus a uniform offset in [-spread, spread].
func (e *env) jitter(base float64, spread int) float64 {
	return base + float64(e.rng.Intn(-spread, spread))
}

// spriteFor builds a display handle from config.
func spriteFor(sc config.SpriteConfig) core.Sprite {
	glyph, _ := utf8.DecodeRuneInString(sc.Glyph)
	if glyph == utf8.RuneError {
		glyph = '?'
	}
	color, _ := core.ParseColor(sc.Color)
	return core.Sprite{Glyph: glyph, Color: color}
}
