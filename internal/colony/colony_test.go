package colony

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-antfarm/internal/config"
	"github.com/vovakirdan/tui-antfarm/internal/core"
	"github.com/vovakirdan/tui-antfarm/internal/registry"
)

func newTestColony(seed int64) *Colony {
	SetLogger(log.New(io.Discard))
	c := NewWithConfig(config.DefaultColonyConfig())
	rc := core.DefaultConfig()
	rc.Seed = seed
	c.Reset(rc)
	return c
}

func TestColonyReset(t *testing.T) {
	c := newTestColony(1)
	snap := c.Snapshot()

	if snap.Ants != 20 {
		t.Errorf("Ants = %d, expected 20", snap.Ants)
	}
	if snap.Exploring != 20 {
		t.Errorf("Exploring = %d, expected 20", snap.Exploring)
	}
	if snap.Leaves != 0 || snap.Spiders != 0 || snap.Stamps != 0 {
		t.Errorf("snapshot = %+v, expected an empty world apart from ants", snap)
	}

	for _, e := range c.World().Entities() {
		if !c.World().Bounds().Contains(e.Base().Location) {
			t.Errorf("entity %d at %v is out of bounds", e.Base().ID(), e.Base().Location)
		}
	}
}

func TestColonyStep(t *testing.T) {
	c := newTestColony(7)
	dt := core.DefaultConfig().TickDelta()

	for i := 0; i < 300; i++ {
		if _, err := c.Step(dt); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
	}

	state := c.State()
	if state.Tick != 300 {
		t.Errorf("Tick = %d, expected 300", state.Tick)
	}
	if state.Elapsed < 9.99 || state.Elapsed > 10.01 {
		t.Errorf("Elapsed = %v, expected 10", state.Elapsed)
	}
	if c.Tally().LeavesSpawned == 0 {
		t.Error("no leaves spawned in 300 ticks")
	}
}

func TestColonyDeterminism(t *testing.T) {
	a := newTestColony(42)
	b := newTestColony(42)
	dt := core.DefaultConfig().TickDelta()

	for i := 0; i < 600; i++ {
		if _, err := a.Step(dt); err != nil {
			t.Fatalf("a.Step() error = %v", err)
		}
		if _, err := b.Step(dt); err != nil {
			t.Fatalf("b.Step() error = %v", err)
		}
		if a.Snapshot() != b.Snapshot() {
			t.Fatalf("tick %d: snapshots diverged:\n%+v\n%+v", i, a.Snapshot(), b.Snapshot())
		}
	}
}

func TestColonyResetRestarts(t *testing.T) {
	c := newTestColony(3)
	for i := 0; i < 50; i++ {
		if _, err := c.Step(0.1); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
	}

	c.Reset(core.RuntimeConfig{Seed: 3})
	if c.State().Tick != 0 {
		t.Errorf("Tick = %d after Reset, expected 0", c.State().Tick)
	}
	if c.Tally() != (Tally{}) {
		t.Errorf("Tally() = %+v after Reset, expected zero", c.Tally())
	}
}

func TestScenariosRegistered(t *testing.T) {
	for _, id := range []string{ScenarioColony, ScenarioSiege} {
		if !registry.Exists(id) {
			t.Errorf("Exists(%q) = false, expected true", id)
		}
	}

	sim, err := registry.Create(ScenarioSiege)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if sim.ID() != ScenarioSiege {
		t.Errorf("ID() = %q, expected %q", sim.ID(), ScenarioSiege)
	}
}
