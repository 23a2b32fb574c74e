package ai

import (
	"math"

	"github.com/milk9111/sanity/physics"
)

// DetectionConfig tunes how an enemy notices, follows and strikes a target.
type DetectionConfig struct {
	DetectionRange      float64
	ChaseRange          float64
	ChaseDropBuffer     float64
	VerticalTolerance   float64
	RequireLineOfSight  bool
	LineOfSightMask     physics.Layer
	AttackRange         float64
	AttackCooldown      float64
	Windup              float64
	ReturnStopThreshold float64
	MoveSpeed           float64
	ReturnSpeed         float64
}

// WalkerDetection is the tuning of the basic walking enemy.
func WalkerDetection() DetectionConfig {
	return DetectionConfig{
		DetectionRange:      8,
		ChaseRange:          12,
		ChaseDropBuffer:     1,
		VerticalTolerance:   3,
		AttackRange:         1.2,
		AttackCooldown:      1,
		Windup:              0.25,
		ReturnStopThreshold: 0.05,
		MoveSpeed:           3,
		ReturnSpeed:         3,
	}
}

// HopperDetection is the tuning of the big bunny.
func HopperDetection() DetectionConfig {
	return DetectionConfig{
		DetectionRange:      10,
		ChaseRange:          14,
		ChaseDropBuffer:     1,
		VerticalTolerance:   3,
		AttackRange:         1.3,
		AttackCooldown:      1,
		Windup:              0.25,
		ReturnStopThreshold: 0.05,
	}
}

// Normalize clamps negative values and keeps the drop-out distance at or
// beyond the detection distance.
func (c DetectionConfig) Normalize() DetectionConfig {
	nonNeg := func(v *float64) {
		if *v < 0 || math.IsNaN(*v) {
			*v = 0
		}
	}
	nonNeg(&c.DetectionRange)
	nonNeg(&c.ChaseRange)
	nonNeg(&c.ChaseDropBuffer)
	nonNeg(&c.VerticalTolerance)
	nonNeg(&c.AttackRange)
	nonNeg(&c.AttackCooldown)
	nonNeg(&c.Windup)
	nonNeg(&c.ReturnStopThreshold)
	nonNeg(&c.MoveSpeed)
	nonNeg(&c.ReturnSpeed)

	if c.ChaseRange+c.ChaseDropBuffer < c.DetectionRange {
		c.ChaseRange = c.DetectionRange - c.ChaseDropBuffer
	}
	return c
}

// DropRange is the horizontal distance past which a chase is abandoned.
func (c DetectionConfig) DropRange() float64 {
	return c.ChaseRange + c.ChaseDropBuffer
}
