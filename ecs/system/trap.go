package system

import (
	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/ecs"
	"github.com/milk9111/sanity/ecs/component"
)

// TrapSystem arms delayed strikes when the player steps into them and
// drives the ones already running. It belongs between ControlSystem and
// PhysicsSystem.
type TrapSystem struct {
	Clock *Clock
}

func NewTrapSystem(clock *Clock) *TrapSystem {
	return &TrapSystem{Clock: clock}
}

func (s *TrapSystem) Update(w *ecs.World) {
	if s == nil || s.Clock == nil || w == nil || s.Clock.Paused {
		return
	}
	now := s.Clock.Now

	_, player, hasPlayer := Player(w)
	ecs.ForEach(w, component.TrapComponent.Kind(), func(_ ecs.Entity, trap *component.Trap) {
		if trap.Strike == nil {
			return
		}
		if hasPlayer && trap.Strike.Armed() && inside(trap.Area, player.Controller.Position()) {
			trap.Strike.Trigger(now, player.Controller)
		}
		trap.Strike.Update(now)
	})
}

func inside(area common.Box, p common.Vec2) bool {
	lo, hi := area.Min(), area.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}
