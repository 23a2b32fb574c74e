package entity

import (
	"log"

	"github.com/milk9111/sanity/ability"
	"github.com/milk9111/sanity/actor"
	"github.com/milk9111/sanity/ai"
	"github.com/milk9111/sanity/common"
	core "github.com/milk9111/sanity/component"
	"github.com/milk9111/sanity/physics"
	"github.com/milk9111/sanity/prefabs"
)

// PlayerConfig overlays a player prefab on the built-in player tuning.
// Zero fields in the prefab keep the default.
func PlayerConfig(spec *prefabs.PlayerSpec) actor.Config {
	cfg := actor.PlayerConfig()
	if spec == nil {
		return cfg
	}
	applyActor(&cfg, &spec.ActorSpec)

	j := &cfg.Abilities.Jump
	setF(&j.Force, spec.Jump.Force)
	setF(&j.SecondMultiplier, spec.Jump.SecondMultiplier)
	setI(&j.MaxJumps, spec.Jump.MaxJumps)
	setF(&j.ActionLock, spec.Jump.ActionLock)
	setF(&j.InputHold, spec.Jump.InputHold)

	d := &cfg.Abilities.Dash
	setF(&d.Speed, spec.Dash.Speed)
	setF(&d.Duration, spec.Dash.Duration)
	setF(&d.Cooldown, spec.Dash.Cooldown)
	setF(&d.ActionLock, spec.Dash.ActionLock)
	setF(&d.HangDuration, spec.Dash.HangDuration)
	setF(&d.HangGravityMultiplier, spec.Dash.HangGravityMultiplier)
	setF(&d.HangSpeedMultiplier, spec.Dash.HangSpeedMultiplier)
	setF(&d.HangUpwardBoost, spec.Dash.HangUpwardBoost)
	setF(&d.DecelDuration, spec.Dash.DecelDuration)

	s := &cfg.Abilities.Slide
	setF(&s.Speed, spec.Slide.Speed)
	setF(&s.Duration, spec.Slide.Duration)
	setF(&s.Cooldown, spec.Slide.Cooldown)

	setF(&cfg.FastFallForce, spec.FastFall)
	setI(&cfg.RestorePerHit, spec.RestorePerHit)
	return cfg
}

// EnemyConfig overlays an enemy prefab on the walker or hopper tuning,
// picked by the prefab's hops flag.
func EnemyConfig(spec *prefabs.EnemySpec) (actor.Config, ai.DetectionConfig) {
	cfg, det := actor.WalkerConfig(), ai.WalkerDetection()
	if spec == nil {
		return cfg, det
	}
	if spec.Hops {
		cfg, det = actor.HopperConfig(), ai.HopperDetection()
	}
	applyActor(&cfg, &spec.ActorSpec)
	applyDetection(&det, spec.Detection)

	h := &cfg.Abilities.Hop
	setF(&h.Speed, spec.Hop.Speed)
	setF(&h.Force, spec.Hop.Force)
	setF(&h.Cooldown, spec.Hop.Cooldown)
	setF(&h.Timeout, spec.Hop.Timeout)
	setF(&h.LandVelocity, spec.Hop.LandVelocity)

	syncEnemyAttack(&cfg, det)
	return cfg, det
}

// syncEnemyAttack keeps the swing timing and chase speed in step with the
// detection tuning that drives them.
func syncEnemyAttack(cfg *actor.Config, det ai.DetectionConfig) {
	cfg.Abilities.Attack.Cooldown = det.AttackCooldown
	cfg.Abilities.Attack.Duration = det.AttackCooldown
	cfg.Abilities.Attack.Windup = det.Windup
	if det.MoveSpeed > 0 {
		cfg.Locomotion.WalkSpeed = det.MoveSpeed
	}
}

func applyActor(cfg *actor.Config, spec *prefabs.ActorSpec) {
	if spec.Name != "" {
		cfg.Name = spec.Name
	}
	setI(&cfg.ResourceMax, spec.Resource.Max)
	if spec.Resource.Key != "" {
		cfg.ResourceKey = spec.Resource.Key
	}
	setF(&cfg.GroundRadius, spec.GroundRadius)
	if spec.Body.Height > 0 {
		cfg.GroundOffset = common.Vec2{Y: -spec.Body.Height / 2}
	}

	l := &cfg.Locomotion
	setF(&l.WalkSpeed, spec.Locomotion.WalkSpeed)
	setF(&l.AirAcceleration, spec.Locomotion.AirAcceleration)
	setF(&l.AirControl, spec.Locomotion.AirControl)
	setF(&l.AirDeceleration, spec.Locomotion.AirDeceleration)
	setF(&l.AirTurn, spec.Locomotion.AirTurn)

	applyAttack(&cfg.Abilities.Attack, spec.Attack)

	r := &cfg.Receiver
	setF(&r.InvulnerabilityTime, spec.Receiver.InvulnerabilityTime)
	setF(&r.KnockbackForce, spec.Receiver.KnockbackForce)
	setF(&r.MaxKnockbackSpeed, spec.Receiver.MaxKnockbackSpeed)
	setF(&r.DestroyDelay, spec.Receiver.DestroyDelay)

	cfg.Clips = clips(spec.Audio)
}

func applyAttack(a *ability.AttackConfig, spec prefabs.AttackSpec) {
	setI(&a.Damage, spec.Damage)
	setF(&a.Cooldown, spec.Cooldown)
	setF(&a.Duration, spec.Duration)
	setF(&a.Windup, spec.Windup)
	setF(&a.Reach.Default, spec.Reach)
	if spec.Box.Width > 0 && spec.Box.Height > 0 {
		a.Box.Default = common.Vec2{X: spec.Box.Width, Y: spec.Box.Height}
	}
	for name, o := range spec.Directions {
		dir, ok := core.ParseDirection(name)
		if !ok {
			log.Printf("entity: unknown attack direction %q", name)
			continue
		}
		if o.Reach > 0 {
			a.Reach.Set(dir, o.Reach)
		}
		if o.Width > 0 && o.Height > 0 {
			a.Box.Set(dir, common.Vec2{X: o.Width, Y: o.Height})
		}
	}
}

func applyDetection(det *ai.DetectionConfig, spec prefabs.DetectionSpec) {
	setF(&det.DetectionRange, spec.DetectionRange)
	setF(&det.ChaseRange, spec.ChaseRange)
	setF(&det.ChaseDropBuffer, spec.ChaseDropBuffer)
	setF(&det.VerticalTolerance, spec.VerticalTolerance)
	setF(&det.AttackRange, spec.AttackRange)
	setF(&det.AttackCooldown, spec.AttackCooldown)
	setF(&det.Windup, spec.Windup)
	setF(&det.ReturnStopThreshold, spec.ReturnStopThreshold)
	setF(&det.MoveSpeed, spec.MoveSpeed)
	setF(&det.ReturnSpeed, spec.ReturnSpeed)
	if spec.RequireLineOfSight != nil {
		det.RequireLineOfSight = *spec.RequireLineOfSight
	}
	if det.RequireLineOfSight && det.LineOfSightMask == physics.LayerNone {
		det.LineOfSightMask = physics.LayerGround
	}
	if !det.RequireLineOfSight {
		det.LineOfSightMask = physics.LayerNone
	}
}

// clips maps prefab audio names onto the controller's sound slots.
func clips(audio []prefabs.AudioSpec) actor.Clips {
	var c actor.Clips
	for _, a := range audio {
		switch a.Name {
		case "jump":
			c.Jump = a.File
		case "dash":
			c.Dash = a.File
		case "hop":
			c.Hop = a.File
		case "attack_hit":
			c.AttackHit = a.File
		case "attack_miss":
			c.AttackMiss = a.File
		}
	}
	return c
}

func setF(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func setI(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
