package system

import (
	core "github.com/milk9111/sanity/component"
	"github.com/milk9111/sanity/ecs"
)

// Depleted is the payload of ecs.EventDepleted.
type Depleted struct {
	ID   string
	Name string
}

// ForwardCombat subscribes the world queue to an emitter so combat events
// can be drained alongside the rest.
func ForwardCombat(w *ecs.World, emitter *core.CombatEventEmitter) {
	if w == nil || emitter == nil {
		return
	}
	emitter.Subscribe(func(evt core.CombatEvent) {
		w.Events().Push(ecs.Event{Type: ecs.EventCombat, Data: evt})
	})
}
