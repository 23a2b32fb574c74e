package entity

import (
	"github.com/milk9111/sanity/actor"
	"github.com/milk9111/sanity/ai"
	"github.com/milk9111/sanity/combat"
	core "github.com/milk9111/sanity/component"
	"github.com/milk9111/sanity/ecs"
	"github.com/milk9111/sanity/physics"
)

// Env is what the builders need to put an entity into a running scene.
type Env struct {
	World    *ecs.World
	Space    *physics.Space
	Resolver *combat.Resolver
	Store    core.Persister
	Locator  ai.TargetLocator
	// Audio, when set, replaces the silent default on every new actor.
	Audio actor.Audio
}
