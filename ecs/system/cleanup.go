package system

import (
	"github.com/milk9111/sanity/ecs"
	"github.com/milk9111/sanity/ecs/component"
	"github.com/milk9111/sanity/physics"
)

// Despawned is the payload of ecs.EventDespawn.
type Despawned struct {
	Entity ecs.Entity
	Name   string
	ID     string
}

// CleanupSystem removes dead actors once their destroy delay has passed.
type CleanupSystem struct {
	Space *physics.Space
	Clock *Clock
}

func NewCleanupSystem(space *physics.Space, clock *Clock) *CleanupSystem {
	return &CleanupSystem{Space: space, Clock: clock}
}

func (s *CleanupSystem) Update(w *ecs.World) {
	if s == nil || s.Clock == nil || w == nil {
		return
	}
	now := s.Clock.Now

	var gone []ecs.Entity
	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, a *component.Actor) {
		if a.Controller == nil {
			return
		}
		at, ok := a.Controller.Receiver.DestroyAt()
		if !ok || now < at {
			return
		}
		gone = append(gone, e)
	})

	for _, e := range gone {
		a, _ := ecs.Get(w, e, component.ActorComponent.Kind())
		if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
			s.Space.RemoveBody(body.Rigid)
		}
		w.Events().Push(ecs.Event{
			Type: ecs.EventDespawn,
			Data: Despawned{Entity: e, Name: a.Controller.Name(), ID: a.Controller.ID()},
		})
		ecs.DestroyEntity(w, e)
	}
}
