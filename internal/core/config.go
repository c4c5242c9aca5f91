package core

// RuntimeConfig contains configuration passed to simulations at initialization.
// Simulations use this for deterministic seeding; screen size only matters to
// the platform layer, which maps world coordinates onto it.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic runs
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDelta returns the fixed simulation step in seconds.
func (c RuntimeConfig) TickDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 30.0
	}
	return 1.0 / float64(c.TickRate)
}

// SimState summarizes a running simulation for the platform layer.
type SimState struct {
	Tick           uint64  // Ticks simulated since reset
	Elapsed        float64 // Simulated seconds since reset
	Entities       int     // Live entities in the world
	Delivered      int     // Items dropped at the nest
	Kills          int     // Spiders killed by ants
	LeavesSpawned  int
	SpidersSpawned int
	SpidersEscaped int
}

// StepResult is returned by Simulation.Step() after each tick.
type StepResult struct {
	State SimState
}
