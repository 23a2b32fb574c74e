package system

import (
	"github.com/milk9111/sanity/ecs"
	"github.com/milk9111/sanity/physics"
)

// PhysicsSystem steps the space after the controllers have written their
// velocities.
type PhysicsSystem struct {
	Space *physics.Space
	Clock *Clock
}

func NewPhysicsSystem(space *physics.Space, clock *Clock) *PhysicsSystem {
	return &PhysicsSystem{Space: space, Clock: clock}
}

func (s *PhysicsSystem) Update(_ *ecs.World) {
	if s == nil || s.Space == nil || s.Clock == nil || s.Clock.Paused {
		return
	}
	s.Space.Step(s.Clock.Step)
}
