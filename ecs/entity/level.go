package entity

import (
	"fmt"

	"github.com/milk9111/sanity/combat"
	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/ecs"
	"github.com/milk9111/sanity/ecs/component"
	"github.com/milk9111/sanity/physics"
	"github.com/milk9111/sanity/prefabs"
)

// LoadLevel fills the world with a level's ground, player, enemies and
// traps.
func LoadLevel(env Env, filename string) (*prefabs.LevelSpec, ecs.Entity, error) {
	spec, err := prefabs.LoadLevelSpec(filename)
	if err != nil {
		return nil, 0, fmt.Errorf("level: %w", err)
	}

	for _, g := range spec.Ground {
		if _, err := NewGround(env, g); err != nil {
			return nil, 0, fmt.Errorf("level %s: %w", spec.Name, err)
		}
	}

	player, _, err := NewPlayer(env, common.Vec2{X: spec.PlayerSpawn.X, Y: spec.PlayerSpawn.Y})
	if err != nil {
		return nil, 0, fmt.Errorf("level %s: %w", spec.Name, err)
	}

	for _, spawn := range spec.Enemies {
		if _, _, err := NewEnemy(env, spawn); err != nil {
			return nil, 0, fmt.Errorf("level %s: %w", spec.Name, err)
		}
	}

	for _, t := range spec.Traps {
		if _, err := NewTrap(env, t); err != nil {
			return nil, 0, fmt.Errorf("level %s: %w", spec.Name, err)
		}
	}

	return spec, player, nil
}

func NewGround(env Env, spec prefabs.BoxSpec) (ecs.Entity, error) {
	box := common.Box{Center: common.Vec2{X: spec.X, Y: spec.Y}, Size: common.Vec2{X: spec.Width, Y: spec.Height}}
	env.Space.AddStaticBox(box, physics.LayerGround, nil)

	entity := ecs.CreateEntity(env.World)
	if err := ecs.Add(env.World, entity, component.GroundComponent.Kind(), &component.Ground{Box: box}); err != nil {
		return 0, fmt.Errorf("ground: add ground: %w", err)
	}
	return entity, nil
}

func NewTrap(env Env, spec prefabs.TrapSpec) (ecs.Entity, error) {
	cfg := combat.DefaultDelayedStrikeConfig()
	setF(&cfg.Delay, spec.Delay)
	setF(&cfg.Distance, spec.Distance)
	setF(&cfg.TravelTime, spec.TravelTime)
	setF(&cfg.Upward, spec.Upward)
	setI(&cfg.Damage, spec.Damage)
	setF(&cfg.Direction, spec.Direction)
	cfg.SingleUse = spec.SingleUse

	area := common.Box{Center: common.Vec2{X: spec.X, Y: spec.Y}, Size: common.Vec2{X: spec.Width, Y: spec.Height}}
	entity := ecs.CreateEntity(env.World)
	if err := ecs.Add(env.World, entity, component.TrapComponent.Kind(), &component.Trap{
		Strike: combat.NewDelayedStrike(cfg),
		Area:   area,
	}); err != nil {
		return 0, fmt.Errorf("trap: add trap: %w", err)
	}
	return entity, nil
}
