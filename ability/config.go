package ability

import (
	"math"

	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/component"
)

type JumpConfig struct {
	Force            float64
	SecondMultiplier float64
	MaxJumps         int
	ActionLock       float64
	InputHold        float64
}

type DashConfig struct {
	Speed                 float64
	Duration              float64
	Cooldown              float64
	ActionLock            float64
	HangDuration          float64
	HangGravityMultiplier float64
	HangSpeedMultiplier   float64
	HangUpwardBoost       float64
	DecelDuration         float64
}

type SlideConfig struct {
	Speed      float64
	Duration   float64
	Cooldown   float64
	ActionLock float64
}

type AttackConfig struct {
	Damage   int
	Cooldown float64
	Duration float64
	Windup   float64
	Reach    component.Overrides[float64]
	Box      component.Overrides[common.Vec2]
}

type HopConfig struct {
	Speed        float64
	Force        float64
	Cooldown     float64
	Timeout      float64
	LandVelocity float64
}

type Config struct {
	Jump     JumpConfig
	Dash     DashConfig
	Slide    SlideConfig
	Attack   AttackConfig
	Hop      HopConfig
	DeadZone float64
}

// DefaultConfig is the player tuning.
func DefaultConfig() Config {
	return Config{
		Jump: JumpConfig{
			Force:            10,
			SecondMultiplier: 0.4,
			MaxJumps:         2,
			ActionLock:       0.12,
			InputHold:        0.12,
		},
		Dash: DashConfig{
			Speed:                 18,
			Duration:              0.15,
			Cooldown:              0.25,
			ActionLock:            0.12,
			HangDuration:          0.12,
			HangGravityMultiplier: 0.35,
			HangSpeedMultiplier:   0.9,
			HangUpwardBoost:       0.2,
			DecelDuration:         0.25,
		},
		Slide: SlideConfig{
			Speed:    9,
			Duration: 0.3,
			Cooldown: 0.6,
		},
		Attack: AttackConfig{
			Damage:   1,
			Cooldown: 0.35,
			Duration: 0.12,
			Reach:    component.Overrides[float64]{Default: 0.8},
			Box:      component.Overrides[common.Vec2]{Default: common.Vec2{X: 1, Y: 0.6}},
		},
		Hop: HopConfig{
			Speed:        5.5,
			Force:        9.5,
			Cooldown:     0.65,
			Timeout:      3,
			LandVelocity: 0.01,
		},
		DeadZone: 0.01,
	}
}

// Normalize clamps durations and cooldowns to safe minimums.
func (c Config) Normalize() Config {
	nonNeg := func(v *float64) {
		if *v < 0 || math.IsNaN(*v) {
			*v = 0
		}
	}
	nonNeg(&c.Jump.Force)
	nonNeg(&c.Jump.SecondMultiplier)
	nonNeg(&c.Jump.ActionLock)
	nonNeg(&c.Jump.InputHold)
	if c.Jump.MaxJumps < 0 {
		c.Jump.MaxJumps = 0
	}

	nonNeg(&c.Dash.Speed)
	nonNeg(&c.Dash.Duration)
	nonNeg(&c.Dash.Cooldown)
	nonNeg(&c.Dash.ActionLock)
	nonNeg(&c.Dash.HangDuration)
	nonNeg(&c.Dash.HangGravityMultiplier)
	nonNeg(&c.Dash.HangSpeedMultiplier)
	nonNeg(&c.Dash.DecelDuration)

	nonNeg(&c.Slide.Speed)
	nonNeg(&c.Slide.Duration)
	nonNeg(&c.Slide.Cooldown)
	nonNeg(&c.Slide.ActionLock)

	if c.Attack.Damage < 0 {
		c.Attack.Damage = 0
	}
	nonNeg(&c.Attack.Cooldown)
	nonNeg(&c.Attack.Duration)
	nonNeg(&c.Attack.Windup)

	nonNeg(&c.Hop.Speed)
	nonNeg(&c.Hop.Force)
	nonNeg(&c.Hop.Cooldown)
	nonNeg(&c.Hop.LandVelocity)
	if c.Hop.Timeout <= 0 {
		c.Hop.Timeout = 3
	}
	nonNeg(&c.DeadZone)
	return c
}
