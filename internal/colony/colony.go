package colony

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-antfarm/internal/config"
	"github.com/vovakirdan/tui-antfarm/internal/core"
	"github.com/vovakirdan/tui-antfarm/internal/registry"
	"github.com/vovakirdan/tui-antfarm/internal/sim"
)

// Scenario identifiers.
const (
	ScenarioColony = "colony"
	ScenarioSiege  = "colony_siege"
)

// configPath stores the custom config path set via CLI
var configPath string

var (
	presetOverride config.Preset
	logger         = log.Default().WithPrefix("colony")
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset sets the preset applied by the plain colony scenario.
func SetPreset(p config.Preset) {
	presetOverride = p
}

// SetLogger replaces the logger used by colonies created afterwards.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Colony is the ant farm simulation.
type Colony struct {
	id      string
	title   string
	preset  config.Preset
	fixed   *config.ColonyConfig // When set, used instead of loading from disk
	cfg     config.ColonyConfig
	env     *env
	world   *sim.World
	spawner *spawner
	tick    uint64
	elapsed float64
	seed    int64
}

// New creates the default colony scenario.
func New() *Colony {
	return &Colony{id: ScenarioColony, title: "Ant Colony"}
}

// NewSiege creates the colony scenario with the siege preset.
func NewSiege() *Colony {
	return &Colony{id: ScenarioSiege, title: "Ant Colony: Siege", preset: config.PresetSiege}
}

// NewWithConfig creates a colony that always uses cfg as-is.
func NewWithConfig(cfg config.ColonyConfig) *Colony {
	c := New()
	c.fixed = &cfg
	return c
}

// ID returns the unique identifier for this scenario.
func (c *Colony) ID() string {
	return c.id
}

// Title returns the display name for this scenario.
func (c *Colony) Title() string {
	return c.title
}

// Config returns the config the colony was last reset with.
func (c *Colony) Config() config.ColonyConfig {
	return c.cfg
}

// World returns the simulated world.
func (c *Colony) World() *sim.World {
	return c.world
}

// Tally returns the event counters.
func (c *Colony) Tally() Tally {
	if c.env == nil {
		return Tally{}
	}
	return *c.env.tally
}

// Seed returns the seed of the current run.
func (c *Colony) Seed() int64 {
	return c.seed
}

func (c *Colony) loadConfig() config.ColonyConfig {
	if c.fixed != nil {
		return *c.fixed
	}

	cfg, err := config.LoadColony(configPath)
	if err != nil {
		logger.Warn("using default colony config", "err", err)
		cfg = config.DefaultColonyConfig()
	}

	preset := c.preset
	if preset == "" {
		preset = presetOverride
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	return cfg
}

// Reset builds a fresh world: an empty background and AntCount ants
// scattered at random, each starting out exploring.
func (c *Colony) Reset(runtime core.RuntimeConfig) {
	c.cfg = c.loadConfig()
	c.seed = runtime.Seed
	c.env = newEnv(&c.cfg, core.NewRandom(runtime.Seed), logger)
	c.world = sim.NewWorld(c.env.bounds)
	c.spawner = newSpawner(c.env)
	c.tick = 0
	c.elapsed = 0

	antImage := spriteFor(c.cfg.Sprites.Ant)
	for i, n := 0, c.cfg.AntCount; i < n; i++ {
		ant := newAnt(c.env, antImage)
		ant.Location = c.env.randomPoint()
		if err := ant.Brain.SetState(StateExploring); err != nil {
			panic(fmt.Sprintf("colony: %v", err))
		}
		c.world.AddEntity(ant)
	}

	logger.Debug("colony reset", "scenario", c.id, "seed", runtime.Seed, "ants", c.cfg.AntCount)
}

// Step spawns new leaves and spiders, then advances every entity by dt seconds.
func (c *Colony) Step(dt float64) (core.StepResult, error) {
	c.spawner.Tick(c.world)
	if err := c.world.Process(dt); err != nil {
		return core.StepResult{State: c.State()}, err
	}
	c.tick++
	c.elapsed += dt
	return core.StepResult{State: c.State()}, nil
}

// Render draws the world.
func (c *Colony) Render(dst core.Surface) {
	c.world.Render(dst)
}

// WorldSize returns the world dimensions.
func (c *Colony) WorldSize() (w, h float64) {
	return c.cfg.World.Width, c.cfg.World.Height
}

// State returns the current counters.
func (c *Colony) State() core.SimState {
	state := core.SimState{Tick: c.tick, Elapsed: c.elapsed}
	if c.world != nil {
		state.Entities = c.world.Len()
	}
	if c.env != nil {
		state.Delivered = c.env.tally.Delivered
		state.Kills = c.env.tally.SpidersKilled
		state.LeavesSpawned = c.env.tally.LeavesSpawned
		state.SpidersSpawned = c.env.tally.SpidersSpawned
		state.SpidersEscaped = c.env.tally.SpidersEscaped
	}
	return state
}

// Register the scenarios with the registry
func init() {
	registry.Register(ScenarioColony, func() registry.Simulation {
		return New()
	})
	registry.Register(ScenarioSiege, func() registry.Simulation {
		return NewSiege()
	})
}
