package actor

import (
	"github.com/milk9111/sanity/ability"
	"github.com/milk9111/sanity/ai"
	"github.com/milk9111/sanity/combat"
	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/component"
	"github.com/milk9111/sanity/locomotion"
	"github.com/milk9111/sanity/physics"
)

// SanityKey is the persisted key of the player's resource.
const SanityKey = "PLAYER_SANITY"

type Config struct {
	Name    string
	Faction component.Faction

	ResourceMax int
	ResourceKey string

	Locomotion locomotion.Config
	Abilities  ability.Config
	Gates      ability.Gates
	Receiver   combat.ReceiverConfig

	GroundRadius float64
	GroundOffset common.Vec2
	GroundMask   physics.Layer
	AttackMask   physics.Layer

	FastFallForce float64
	RestorePerHit int

	Clips Clips
}

// PlayerConfig is the player character tuning.
func PlayerConfig() Config {
	recv := combat.DefaultReceiverConfig()
	recv.KnockbackForce = 0
	recv.Persistent = true
	return Config{
		Name:          "player",
		Faction:       component.FactionPlayer,
		ResourceMax:   100,
		ResourceKey:   SanityKey,
		Locomotion:    locomotion.DefaultConfig(),
		Abilities:     ability.DefaultConfig(),
		Gates:         ability.AllGates(),
		Receiver:      recv,
		GroundRadius:  0.1,
		GroundOffset:  common.Vec2{Y: -0.5},
		GroundMask:    physics.LayerGround,
		AttackMask:    physics.LayerEnemy,
		FastFallForce: 30,
		RestorePerHit: 1,
	}
}

func enemyAbilities(det ai.DetectionConfig, damage int) ability.Config {
	cfg := ability.DefaultConfig()
	cfg.Jump.MaxJumps = 0
	cfg.Attack = ability.AttackConfig{
		Damage:   damage,
		Cooldown: det.AttackCooldown,
		Duration: det.AttackCooldown,
		Windup:   det.Windup,
	}
	return cfg
}

func enemyGates() ability.Gates {
	return ability.Gates{Attack: true}
}

// WalkerConfig is the basic melee enemy.
func WalkerConfig() Config {
	det := ai.WalkerDetection()
	loco := locomotion.DefaultConfig()
	loco.WalkSpeed = det.MoveSpeed
	return Config{
		Name:         "walker",
		Faction:      component.FactionEnemy,
		ResourceMax:  5,
		Locomotion:   loco,
		Abilities:    enemyAbilities(det, 10),
		Gates:        enemyGates(),
		Receiver:     combat.DefaultReceiverConfig(),
		GroundRadius: 0.1,
		GroundOffset: common.Vec2{Y: -0.5},
		GroundMask:   physics.LayerGround,
		AttackMask:   physics.LayerPlayer,
	}
}

// HopperConfig is the big bunny.
func HopperConfig() Config {
	det := ai.HopperDetection()
	cfg := WalkerConfig()
	cfg.Name = "bunny"
	cfg.Abilities = enemyAbilities(det, 15)
	cfg.GroundRadius = 0.12
	return cfg
}
