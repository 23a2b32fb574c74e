package entity

import (
	"fmt"

	"github.com/milk9111/sanity/actor"
	"github.com/milk9111/sanity/ai"
	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/ecs"
	"github.com/milk9111/sanity/ecs/component"
	"github.com/milk9111/sanity/physics"
	"github.com/milk9111/sanity/prefabs"
	"golang.org/x/image/colornames"
)

// NewEnemy builds an AI-driven actor from the spawn's prefab, applying the
// spawn's detection overrides.
func NewEnemy(env Env, spawn prefabs.SpawnSpec) (ecs.Entity, *actor.Controller, error) {
	spec, err := prefabs.LoadEnemySpec(spawn.Prefab)
	if err != nil {
		return 0, nil, fmt.Errorf("enemy: load spec: %w", err)
	}
	cfg, det := EnemyConfig(spec)

	override, err := prefabs.DecodeComponentSpec[prefabs.DetectionSpec](spawn.Overrides["detection"])
	if err != nil {
		return 0, nil, fmt.Errorf("enemy: decode detection override: %w", err)
	}
	applyDetection(&det, override)
	syncEnemyAttack(&cfg, det)

	var guard *ai.EngageScript
	if spec.EngageScript != "" {
		src, err := prefabs.LoadScript(spec.EngageScript)
		if err != nil {
			return 0, nil, fmt.Errorf("enemy: load script %s: %w", spec.EngageScript, err)
		}
		guard, err = ai.NewEngageScript(spec.EngageScript, src)
		if err != nil {
			return 0, nil, fmt.Errorf("enemy: %w", err)
		}
	}

	pos := common.Vec2{X: spawn.X, Y: spawn.Y}
	size := bodySize(spec.Body)
	rb := env.Space.AddBody(physics.BodyDef{
		Position:     pos,
		Size:         size,
		Mass:         spec.Body.Mass,
		GravityScale: gravityScale(spec.Body),
		Layer:        physics.LayerEnemy,
		CollidesWith: physics.LayerGround,
	})
	c := actor.New(cfg, rb, env.Space, env.Resolver, nil)
	env.Space.SetOwner(rb, c)
	if env.Audio != nil {
		c.Audio = env.Audio
	}

	m := ai.NewMachine(det, pos, env.Locator)
	m.Guard = guard
	m.Hops = spec.Hops
	if spec.ReturnToSpawn != nil {
		m.ReturnToSpawn = *spec.ReturnToSpawn
	}
	c.AttachAI(m)

	w := env.World
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.EnemyTagComponent.Kind(), &component.EnemyTag{Prefab: spawn.Prefab, Spawn: pos}); err != nil {
		return 0, nil, fmt.Errorf("enemy: add enemy tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.ActorComponent.Kind(), &component.Actor{Controller: c}); err != nil {
		return 0, nil, fmt.Errorf("enemy: add actor: %w", err)
	}
	if err := ecs.Add(w, entity, component.BodyComponent.Kind(), &component.Body{Rigid: rb}); err != nil {
		return 0, nil, fmt.Errorf("enemy: add body: %w", err)
	}

	drawable := &component.Drawable{Color: colornames.Indianred, Size: size}
	if spec.Color != nil {
		drawable.Color = spec.Color.Color
	}
	if err := ecs.Add(w, entity, component.DrawableComponent.Kind(), drawable); err != nil {
		return 0, nil, fmt.Errorf("enemy: add drawable: %w", err)
	}

	return entity, c, nil
}
