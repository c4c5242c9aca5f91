package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-antfarm/internal/core"
	"github.com/vovakirdan/tui-antfarm/internal/fsm"
)

func TestProcessZeroSpeedDoesNotMove(t *testing.T) {
	e := NewGameEntity(KindLeaf, core.Sprite{Glyph: 'l'})
	e.Location = core.Vec2(10, 10)
	e.Destination = core.Vec2(100, 100)

	if err := e.Process(0.5); err != nil {
		t.Fatalf("Process() failed: %v", err)
	}
	if e.Location != core.Vec2(10, 10) {
		t.Errorf("Location = %v, expected unchanged (10, 10)", e.Location)
	}
}

func TestProcessClampedStep(t *testing.T) {
	tests := []struct {
		name      string
		from, to  core.Vector2
		speed, dt float64
	}{
		{"partial step", core.Vec2(0, 0), core.Vec2(100, 0), 50, 0.5},
		{"diagonal", core.Vec2(0, 0), core.Vec2(30, 40), 10, 1},
		{"exact arrival", core.Vec2(0, 0), core.Vec2(0, 20), 20, 1},
		{"would overshoot", core.Vec2(5, 5), core.Vec2(8, 9), 120, 1},
		{"backwards", core.Vec2(200, 200), core.Vec2(0, 0), 60, 1.0 / 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewGameEntity(KindAnt, core.Sprite{Glyph: 'a'})
			e.Location = tc.from
			e.Destination = tc.to
			e.SetSpeed(tc.speed)

			before := tc.from.DistanceTo(tc.to)
			if err := e.Process(tc.dt); err != nil {
				t.Fatalf("Process() failed: %v", err)
			}

			step := tc.from.DistanceTo(e.Location)
			if step > tc.speed*tc.dt+1e-9 {
				t.Errorf("step %f exceeds speed*dt %f", step, tc.speed*tc.dt)
			}

			after := e.Location.DistanceTo(tc.to)
			expected := math.Max(0, before-tc.speed*tc.dt)
			if math.Abs(after-expected) > 1e-9 {
				t.Errorf("distance after step = %f, expected %f", after, expected)
			}
		})
	}
}

func TestProcessArrivesExactly(t *testing.T) {
	e := NewGameEntity(KindAnt, core.Sprite{Glyph: 'a'})
	e.Destination = core.Vec2(3, 4)
	e.SetSpeed(1000)

	if err := e.Process(1); err != nil {
		t.Fatalf("Process() failed: %v", err)
	}
	if e.Location != e.Destination {
		t.Errorf("Location = %v, expected to land on %v", e.Location, e.Destination)
	}
}

func TestSetSpeedClampsNegative(t *testing.T) {
	e := NewGameEntity(KindSpider, core.Sprite{Glyph: 's'})
	e.SetSpeed(-10)
	if e.Speed() != 0 {
		t.Errorf("Speed() = %f, expected negative speed clamped to 0", e.Speed())
	}
}

type countingState struct {
	fsm.BaseState
	ticks int
}

func (s *countingState) DoActions() { s.ticks++ }

func TestProcessThinksBeforeMoving(t *testing.T) {
	e := NewGameEntity(KindAnt, core.Sprite{Glyph: 'a'})
	s := &countingState{BaseState: fsm.NewBaseState("count")}
	e.Brain.AddState(s)

	// Inert brain: no state yet
	if err := e.Process(0.1); err != nil {
		t.Fatalf("Process() failed: %v", err)
	}
	if s.ticks != 0 {
		t.Errorf("inert brain ran DoActions %d times", s.ticks)
	}

	if err := e.Brain.SetState("count"); err != nil {
		t.Fatalf("SetState() failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := e.Process(0.1); err != nil {
			t.Fatalf("Process() failed: %v", err)
		}
	}
	if s.ticks != 3 {
		t.Errorf("DoActions ran %d times, expected 3", s.ticks)
	}
}

type recordingSurface struct {
	blits  []core.Vector2
	discs  int
	meters int
}

func (r *recordingSurface) Blit(_ core.Sprite, at core.Vector2) { r.blits = append(r.blits, at) }
func (r *recordingSurface) Disc(core.Vector2, float64, rune, core.Color) { r.discs++ }
func (r *recordingSurface) Meter(core.Vector2, int, int) { r.meters++ }

func TestRenderBlitsAtLocation(t *testing.T) {
	e := NewGameEntity(KindLeaf, core.Sprite{Glyph: 'l'})
	e.Location = core.Vec2(7, 8)

	var dst recordingSurface
	e.Render(&dst)

	if len(dst.blits) != 1 || dst.blits[0] != e.Location {
		t.Errorf("blits = %v, expected one at %v", dst.blits, e.Location)
	}
}
