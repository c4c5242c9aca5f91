package core

import (
	"errors"
	"time"
)

// ErrNegativeSpeed is returned when a clock speed below zero is requested.
var ErrNegativeSpeed = errors.New("core: negative clock speed")

// maxCatchUpTicks bounds how many ticks one Advance may produce, so a stalled
// terminal does not trigger a burst of thousands of steps.
const maxCatchUpTicks = 10

// Clock turns externally measured elapsed time into fixed simulation ticks.
// It never reads the wall clock itself.
type Clock struct {
	tickRate int
	speed    float64
	paused   bool
	backlog  time.Duration // Scaled time not yet consumed by a tick
	ticks    uint64
}

// NewClock creates a clock producing tickRate ticks per simulated second.
func NewClock(tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = DefaultConfig().TickRate
	}
	return &Clock{tickRate: tickRate, speed: 1}
}

// TickDelta returns the fixed step in seconds.
func (c *Clock) TickDelta() float64 {
	return 1.0 / float64(c.tickRate)
}

func (c *Clock) tickDuration() time.Duration {
	return time.Second / time.Duration(c.tickRate)
}

// Speed returns the time scale (1 = real time).
func (c *Clock) Speed() float64 {
	return c.speed
}

// SetSpeed changes the time scale.
func (c *Clock) SetSpeed(speed float64) error {
	if speed < 0 {
		return ErrNegativeSpeed
	}
	c.speed = speed
	return nil
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	return c.paused
}

// TogglePause pauses or resumes the clock.
func (c *Clock) TogglePause() {
	c.paused = !c.paused
}

// Ticks returns the number of ticks produced so far.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Advance consumes real elapsed time and returns how many fixed ticks are due.
func (c *Clock) Advance(elapsed time.Duration) int {
	if c.paused || elapsed <= 0 {
		return 0
	}
	c.backlog += time.Duration(float64(elapsed) * c.speed)

	step := c.tickDuration()
	n := int(c.backlog / step)
	c.backlog -= time.Duration(n) * step
	if n > maxCatchUpTicks {
		n = maxCatchUpTicks
		c.backlog = 0
	}
	c.ticks += uint64(n)
	return n
}
