package tui

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-antfarm/internal/core"
	"github.com/vovakirdan/tui-antfarm/internal/storage"
)

// fakeSim counts steps and can be told to fail.
type fakeSim struct {
	steps  int
	resets int
	fail   error
	blits  int
}

func (f *fakeSim) ID() string    { return "fake" }
func (f *fakeSim) Title() string { return "Fake" }

func (f *fakeSim) Reset(core.RuntimeConfig) {
	f.resets++
	f.steps = 0
}

func (f *fakeSim) Step(dt float64) (core.StepResult, error) {
	if f.fail != nil {
		return core.StepResult{State: f.State()}, f.fail
	}
	f.steps++
	return core.StepResult{State: f.State()}, nil
}

func (f *fakeSim) Render(dst core.Surface) {
	f.blits++
	dst.Blit(core.Sprite{Glyph: 'a'}, core.Vec2(5, 5))
}

func (f *fakeSim) WorldSize() (w, h float64) { return 10, 10 }

func (f *fakeSim) State() core.SimState {
	return core.SimState{Tick: uint64(f.steps), Elapsed: float64(f.steps) / 10, Delivered: f.steps / 2}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(sim *fakeSim, store *storage.Store) Model {
	m := NewModel(sim, store, core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 10, Seed: 1}, "calm")
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model
}

func TestModelTicksFollowElapsedTime(t *testing.T) {
	sim := &fakeSim{}
	m := newTestModel(sim, nil)

	start := time.Unix(1000, 0)
	m = update(t, m, TickMsg(start))
	if sim.steps != 0 {
		t.Fatalf("steps = %d after first tick, expected 0", sim.steps)
	}

	m = update(t, m, TickMsg(start.Add(300*time.Millisecond)))
	if sim.steps != 3 {
		t.Errorf("steps = %d, expected 3", sim.steps)
	}
	if m.State().Tick != 3 {
		t.Errorf("State().Tick = %d, expected 3", m.State().Tick)
	}
}

func TestModelPause(t *testing.T) {
	sim := &fakeSim{}
	m := newTestModel(sim, nil)

	start := time.Unix(1000, 0)
	m = update(t, m, TickMsg(start))
	m = update(t, m, keyMsg("p"))
	m = update(t, m, TickMsg(start.Add(time.Second)))
	if sim.steps != 0 {
		t.Errorf("steps = %d while paused, expected 0", sim.steps)
	}

	m = update(t, m, keyMsg("p"))
	update(t, m, TickMsg(start.Add(1200*time.Millisecond)))
	if sim.steps != 2 {
		t.Errorf("steps = %d after resume, expected 2", sim.steps)
	}
}

func TestModelSpeed(t *testing.T) {
	sim := &fakeSim{}
	m := newTestModel(sim, nil)

	m = update(t, m, keyMsg("+"))
	if m.clock.Speed() != 1.5 {
		t.Errorf("Speed() = %v, expected 1.5", m.clock.Speed())
	}

	for i := 0; i < 5; i++ {
		m = update(t, m, keyMsg("-"))
	}
	if m.clock.Speed() != 0.5 {
		t.Errorf("Speed() = %v, expected 0.5 (never drops to zero)", m.clock.Speed())
	}
}

func TestModelStepErrorQuits(t *testing.T) {
	sim := &fakeSim{fail: errors.New("boom")}
	m := newTestModel(sim, nil)

	start := time.Unix(1000, 0)
	m = update(t, m, TickMsg(start))
	m = update(t, m, TickMsg(start.Add(time.Second)))

	if !errors.Is(m.Err(), sim.fail) {
		t.Errorf("Err() = %v, expected %v", m.Err(), sim.fail)
	}
	if !m.IsQuitting() {
		t.Error("IsQuitting() = false after a failed step")
	}
}

func TestModelSavesRunOnQuit(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	sim := &fakeSim{}
	m := newTestModel(sim, store)
	start := time.Unix(1000, 0)
	m = update(t, m, TickMsg(start))
	m = update(t, m, TickMsg(start.Add(400*time.Millisecond)))
	m = update(t, m, keyMsg("q"))

	if !m.IsQuitting() {
		t.Error("IsQuitting() = false after q")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	if runs[0].Scenario != "fake" || runs[0].Preset != "calm" || runs[0].Ticks != 4 || runs[0].Delivered != 2 {
		t.Errorf("saved run = %+v", runs[0])
	}
}

func TestModelSkipsEmptyRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(&fakeSim{}, store)
	update(t, m, keyMsg("b"))

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs, got %d", len(runs))
	}
}

func TestModelView(t *testing.T) {
	sim := &fakeSim{}
	m := newTestModel(sim, nil)

	if view := m.View(); view == "" {
		t.Error("View() is empty")
	}
	if sim.blits != 1 {
		t.Errorf("Render called %d times, expected 1", sim.blits)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if m.screen.Width() != 40 || m.screen.Height() != 12-hudHeight {
		t.Errorf("screen = %dx%d, expected 40x%d", m.screen.Width(), m.screen.Height(), 12-hudHeight)
	}
	if sim.resets != 1 {
		t.Errorf("resets = %d after resize, expected 1", sim.resets)
	}
}
