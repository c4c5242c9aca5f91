package colony

import "github.com/vovakirdan/tui-antfarm/internal/sim"

// Snapshot captures the colony for determinism testing and the HUD.
type Snapshot struct {
	Tick       uint64
	Elapsed    float64
	Ants       int
	Leaves     int
	Spiders    int
	Exploring  int
	Seeking    int
	Delivering int
	Hunting    int
	Carrying   int
	Stamps     int
	Tally      Tally
	AntX       float64 // Sum of ant X coordinates
	AntY       float64 // Sum of ant Y coordinates
}

// Snapshot returns the current colony snapshot.
func (c *Colony) Snapshot() Snapshot {
	snap := Snapshot{Tick: c.tick, Elapsed: c.elapsed, Tally: c.Tally()}
	if c.world == nil {
		return snap
	}

	snap.Stamps = len(c.world.Background().Stamps())
	for _, e := range c.world.Entities() {
		switch e.Base().Kind() {
		case sim.KindLeaf:
			snap.Leaves++
		case sim.KindSpider:
			snap.Spiders++
		case sim.KindAnt:
			snap.Ants++
		}

		ant, ok := e.(*Ant)
		if !ok {
			continue
		}
		snap.AntX += ant.Location.X
		snap.AntY += ant.Location.Y
		if _, carrying := ant.Carrying(); carrying {
			snap.Carrying++
		}
		switch ant.Brain.ActiveName() {
		case StateExploring:
			snap.Exploring++
		case StateSeeking:
			snap.Seeking++
		case StateDelivering:
			snap.Delivering++
		case StateHunting:
			snap.Hunting++
		}
	}
	return snap
}
