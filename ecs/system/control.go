package system

import (
	"github.com/milk9111/sanity/actor"
	"github.com/milk9111/sanity/ecs"
	"github.com/milk9111/sanity/ecs/component"
)

// ControlSystem runs every actor controller once per step. All damage
// clocks advance first; the player ticks before enemies so an enemy strike
// re-validates against the player's post-move position.
type ControlSystem struct {
	Clock *Clock
}

func NewControlSystem(clock *Clock) *ControlSystem {
	return &ControlSystem{Clock: clock}
}

func (s *ControlSystem) Update(w *ecs.World) {
	if s == nil || s.Clock == nil || w == nil || s.Clock.Paused {
		return
	}
	now, dt := s.Clock.Now, s.Clock.Step

	var players, enemies []*actor.Controller
	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, a *component.Actor) {
		if a.Controller == nil {
			return
		}
		a.Controller.Advance(now)
		if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			players = append(players, a.Controller)
			return
		}
		enemies = append(enemies, a.Controller)
	})

	for _, c := range players {
		c.Tick(now, dt)
	}
	for _, c := range enemies {
		c.Tick(now, dt)
	}
}
