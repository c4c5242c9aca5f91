package colony

import (
	"github.com/vovakirdan/tui-antfarm/internal/core"
	"github.com/vovakirdan/tui-antfarm/internal/fsm"
	"github.com/vovakirdan/tui-antfarm/internal/sim"
)

// antState is the common part of every ant state.
type antState struct {
	fsm.BaseState
	ant *Ant
}

func newAntState(name string, a *Ant) antState {
	return antState{BaseState: fsm.NewBaseState(name), ant: a}
}

// exploringState wanders around looking for leaves and for spiders near
// the nest.
type exploringState struct {
	antState
}

func (s *exploringState) randomDestination() {
	s.ant.Destination = s.ant.env.randomPoint()
}

func (s *exploringState) DoActions() {
	if core.OneIn(s.ant.env.rng, s.ant.env.cfg.Ant.WanderOneIn) {
		s.randomDestination()
	}
}

func (s *exploringState) CheckConditions() string {
	a := s.ant
	world := a.World()
	sight := a.env.cfg.Ant.SightRange

	if leaf, ok := world.GetCloseEntity(sim.KindLeaf, a.Location, sight); ok {
		a.leafID = leaf.Base().ID()
		return StateSeeking
	}

	bounds := world.Bounds()
	if spider, ok := world.GetCloseEntity(sim.KindSpider, bounds.Nest, bounds.NestSize); ok {
		if a.Location.DistanceTo(spider.Base().Location) < sight {
			a.spiderID = spider.Base().ID()
			return StateHunting
		}
	}
	return ""
}

func (s *exploringState) EntryActions() {
	s.ant.SetSpeed(s.ant.env.jitter(s.ant.env.cfg.Ant.ExploreSpeed, s.ant.env.cfg.Ant.ExploreJitter))
	s.randomDestination()
}

// seekingState walks to a remembered leaf and picks it up.
type seekingState struct {
	antState
}

func (s *seekingState) CheckConditions() string {
	a := s.ant
	leaf, ok := a.leaf()
	if !ok {
		return StateExploring
	}
	if a.Location.DistanceTo(leaf.Location) < a.env.cfg.Ant.PickupRange {
		a.Carry(leaf.Image())
		a.remove(leaf)
		a.env.tally.LeavesPicked++
		return StateDelivering
	}
	return ""
}

func (s *seekingState) EntryActions() {
	a := s.ant
	if leaf, ok := a.leaf(); ok {
		a.Destination = leaf.Location
		a.SetSpeed(a.env.jitter(a.env.cfg.Ant.SeekSpeed, a.env.cfg.Ant.SeekJitter))
	}
}

// deliveringState carries an item home and drops it somewhere in the nest.
type deliveringState struct {
	antState
}

func (s *deliveringState) CheckConditions() string {
	a := s.ant
	world := a.World()
	if !world.Bounds().InNest(a.Location) {
		return ""
	}
	if !core.OneIn(a.env.rng, a.env.cfg.Ant.DropOneIn) {
		return ""
	}
	if a.Drop(world.Background()) {
		a.env.tally.Delivered++
	}
	return StateExploring
}

func (s *deliveringState) EntryActions() {
	a := s.ant
	scatter := a.env.cfg.Ant.DeliverScatter
	offset := core.Vec2(
		float64(a.env.rng.Intn(-scatter, scatter)),
		float64(a.env.rng.Intn(-scatter, scatter)),
	)
	a.SetSpeed(a.env.cfg.Ant.DeliverSpeed)
	a.Destination = a.env.bounds.Nest.Add(offset)
}

// huntingState chases a spider, bites it to death and then hauls the corpse
// home. It gives up when the spider is gone or has wandered too far from
// the nest.
type huntingState struct {
	antState
	gotKill bool
}

// GotKill reports whether the hunt ended in a kill.
func (s *huntingState) GotKill() bool {
	return s.gotKill
}

func (s *huntingState) DoActions() {
	a := s.ant
	spider, ok := a.spider()
	if !ok {
		return
	}

	a.Destination = spider.Location
	if a.Location.DistanceTo(spider.Location) >= a.env.cfg.Ant.BiteRange {
		return
	}
	if !core.OneIn(a.env.rng, a.env.cfg.Ant.BiteOneIn) {
		return
	}

	spider.Bitten()
	if spider.Dead() {
		a.Carry(spider.Image())
		a.remove(spider)
		a.env.tally.SpidersKilled++
		a.env.logger.Info("spider killed", "ant", a.ID(), "spider", spider.ID())
		s.gotKill = true
	}
}

func (s *huntingState) CheckConditions() string {
	a := s.ant
	if s.gotKill {
		return StateDelivering
	}

	spider, ok := a.spider()
	if !ok {
		return StateExploring
	}

	bounds := a.World().Bounds()
	if spider.Location.DistanceTo(bounds.Nest) > bounds.NestSize*a.env.cfg.Ant.HuntLeash {
		return StateExploring
	}
	return ""
}

func (s *huntingState) EntryActions() {
	a := s.ant
	a.SetSpeed(a.env.cfg.Ant.HuntSpeed + float64(a.env.rng.Intn(0, a.env.cfg.Ant.HuntJitter)))
}

func (s *huntingState) ExitActions() {
	s.gotKill = false
}
