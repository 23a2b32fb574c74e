package entity

import (
	"fmt"

	"github.com/milk9111/sanity/actor"
	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/ecs"
	"github.com/milk9111/sanity/ecs/component"
	"github.com/milk9111/sanity/ecs/system"
	"github.com/milk9111/sanity/physics"
	"github.com/milk9111/sanity/prefabs"
	"golang.org/x/image/colornames"
)

func NewPlayer(env Env, pos common.Vec2) (ecs.Entity, *actor.Controller, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, nil, fmt.Errorf("player: load spec: %w", err)
	}
	cfg := PlayerConfig(spec)

	size := bodySize(spec.Body)
	rb := env.Space.AddBody(physics.BodyDef{
		Position:     pos,
		Size:         size,
		Mass:         spec.Body.Mass,
		GravityScale: gravityScale(spec.Body),
		Layer:        physics.LayerPlayer,
		CollidesWith: physics.LayerGround,
	})
	c := actor.New(cfg, rb, env.Space, env.Resolver, env.Store)
	env.Space.SetOwner(rb, c)
	if env.Audio != nil {
		c.Audio = env.Audio
	}

	w := env.World
	entity := ecs.CreateEntity(w)
	c.OnDepleted = func() {
		w.Events().Push(ecs.Event{Type: ecs.EventDepleted, Data: system.Depleted{ID: c.ID(), Name: c.Name()}})
	}

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, nil, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.ActorComponent.Kind(), &component.Actor{Controller: c}); err != nil {
		return 0, nil, fmt.Errorf("player: add actor: %w", err)
	}
	if err := ecs.Add(w, entity, component.BodyComponent.Kind(), &component.Body{Rigid: rb}); err != nil {
		return 0, nil, fmt.Errorf("player: add body: %w", err)
	}

	drawable := &component.Drawable{Color: colornames.Wheat, Size: size}
	if spec.Color != nil {
		drawable.Color = spec.Color.Color
	}
	if err := ecs.Add(w, entity, component.DrawableComponent.Kind(), drawable); err != nil {
		return 0, nil, fmt.Errorf("player: add drawable: %w", err)
	}

	return entity, c, nil
}

func bodySize(spec prefabs.BodySpec) common.Vec2 {
	if spec.Width <= 0 || spec.Height <= 0 {
		return common.Vec2{X: 1, Y: 1}
	}
	return common.Vec2{X: spec.Width, Y: spec.Height}
}

func gravityScale(spec prefabs.BodySpec) float64 {
	if spec.GravityScale == 0 {
		return 1
	}
	return spec.GravityScale
}
