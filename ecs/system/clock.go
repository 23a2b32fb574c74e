package system

import "github.com/milk9111/sanity/ecs"

// DefaultStep is one physics step at 60 ticks per second.
const DefaultStep = 1.0 / 60.0

// Clock is the shared simulation time. It runs last in the scheduler so
// every other system sees the same Now for a step.
type Clock struct {
	Now    float64
	Step   float64
	Paused bool
}

func NewClock(step float64) *Clock {
	if step <= 0 {
		step = DefaultStep
	}
	return &Clock{Step: step}
}

func (c *Clock) Update(_ *ecs.World) {
	if c == nil || c.Paused {
		return
	}
	c.Now += c.Step
}
