package main

import (
	"fmt"

	"github.com/milk9111/sanity/actor"
	"github.com/milk9111/sanity/combat"
	core "github.com/milk9111/sanity/component"
	"github.com/milk9111/sanity/ecs"
	"github.com/milk9111/sanity/ecs/component"
	"github.com/milk9111/sanity/ecs/entity"
	"github.com/milk9111/sanity/ecs/system"
	"github.com/milk9111/sanity/physics"
	"github.com/milk9111/sanity/prefabs"
)

// scene is one loaded level with its own world, space and clock.
type scene struct {
	name      string
	spec      *prefabs.LevelSpec
	world     *ecs.World
	space     *physics.Space
	clock     *system.Clock
	scheduler *ecs.Scheduler
	player    *actor.Controller
}

func loadScene(level string, store core.Persister, input system.InputSource, audio actor.Audio) (*scene, error) {
	w := ecs.NewWorld()
	space := physics.NewSpace(physics.DefaultGravity)
	clock := system.NewClock(system.DefaultStep)

	emitter := &core.CombatEventEmitter{}
	resolver := combat.NewResolver(space, emitter)
	resolver.Clock = func() float64 { return clock.Now }
	system.ForwardCombat(w, emitter)

	env := entity.Env{
		World:    w,
		Space:    space,
		Resolver: resolver,
		Store:    store,
		Locator:  system.PlayerLocator{World: w},
		Audio:    audio,
	}
	spec, player, err := entity.LoadLevel(env, level)
	if err != nil {
		return nil, err
	}
	a, ok := ecs.Get(w, player, component.ActorComponent.Kind())
	if !ok {
		return nil, fmt.Errorf("scene %s: player has no actor", level)
	}

	return &scene{
		name:   level,
		spec:   spec,
		world:  w,
		space:  space,
		clock:  clock,
		player: a.Controller,
		scheduler: ecs.NewScheduler(
			system.NewInputSystem(input),
			system.NewControlSystem(clock),
			system.NewTrapSystem(clock),
			system.NewPhysicsSystem(space, clock),
			system.NewCleanupSystem(space, clock),
			clock,
		),
	}, nil
}

func (s *scene) hub() bool {
	return s != nil && s.spec != nil && s.spec.Hub
}
