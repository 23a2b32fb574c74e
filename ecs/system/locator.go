package system

import (
	"github.com/milk9111/sanity/ai"
	"github.com/milk9111/sanity/ecs"
	"github.com/milk9111/sanity/ecs/component"
)

// PlayerLocator finds the live player actor for enemy machines. A dead or
// missing player reads as no target.
type PlayerLocator struct {
	World *ecs.World
}

var _ ai.TargetLocator = PlayerLocator{}

func (l PlayerLocator) Locate() (ai.Target, bool) {
	if l.World == nil {
		return ai.Target{}, false
	}
	e, ok := ecs.First(l.World, component.PlayerTagComponent.Kind())
	if !ok {
		return ai.Target{}, false
	}
	a, ok := ecs.Get(l.World, e, component.ActorComponent.Kind())
	if !ok || a.Controller == nil || a.Controller.Dead() {
		return ai.Target{}, false
	}
	return ai.Target{Position: a.Controller.Position(), Receiver: a.Controller}, true
}

// Player returns the player's controller, if any.
func Player(w *ecs.World) (ecs.Entity, *component.Actor, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	a, ok := ecs.Get(w, e, component.ActorComponent.Kind())
	if !ok || a.Controller == nil {
		return 0, nil, false
	}
	return e, a, true
}
