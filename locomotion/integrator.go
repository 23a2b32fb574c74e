package locomotion

import (
	"math"

	"github.com/milk9111/sanity/common"
)

// Config tunes horizontal movement.
type Config struct {
	WalkSpeed       float64
	AirAcceleration float64
	AirControl      float64
	AirDeceleration float64
	AirTurn         float64
	DeadZone        float64
}

func DefaultConfig() Config {
	return Config{
		WalkSpeed:       5,
		AirAcceleration: 20,
		AirControl:      0.9,
		AirDeceleration: 0.25,
		AirTurn:         3,
		DeadZone:        0.01,
	}
}

// Normalize replaces negative values with zero.
func (c Config) Normalize() Config {
	c.WalkSpeed = math.Max(c.WalkSpeed, 0)
	c.AirAcceleration = math.Max(c.AirAcceleration, 0)
	c.AirControl = math.Max(c.AirControl, 0)
	c.AirDeceleration = math.Max(c.AirDeceleration, 0)
	c.AirTurn = math.Max(c.AirTurn, 0)
	c.DeadZone = math.Max(c.DeadZone, 0)
	return c
}

// Integrator turns horizontal intent into horizontal velocity and tracks facing.
type Integrator struct {
	Config      Config
	FacingRight bool
}

func NewIntegrator(cfg Config) *Integrator {
	return &Integrator{Config: cfg.Normalize(), FacingRight: true}
}

// Step returns the horizontal velocity for this physics step. On the ground
// intent maps straight to speed; in the air vx eases toward a reduced target.
func (in *Integrator) Step(intent float64, grounded bool, vx, dt float64) float64 {
	if in == nil {
		return vx
	}
	return in.StepAt(intent, in.Config.WalkSpeed, grounded, vx, dt)
}

// StepAt is Step with an explicit top speed, for actors whose speed depends
// on what they are doing.
func (in *Integrator) StepAt(intent, speed float64, grounded bool, vx, dt float64) float64 {
	if in == nil {
		return vx
	}
	intent = common.Clamp(intent, -1, 1)
	cfg := in.Config

	if grounded {
		return intent * speed
	}

	target := intent * speed * cfg.AirControl
	accel := cfg.AirAcceleration
	if math.Abs(intent) <= cfg.DeadZone {
		accel *= cfg.AirDeceleration
	}
	if vx*target < 0 {
		accel *= cfg.AirTurn
	}
	return common.MoveTowards(vx, target, accel*dt)
}

// UpdateFacing flips facing once intent clears the dead zone. It reports
// whether facing changed.
func (in *Integrator) UpdateFacing(intent float64) bool {
	if in == nil || math.Abs(intent) <= in.Config.DeadZone {
		return false
	}
	right := intent > 0
	if right == in.FacingRight {
		return false
	}
	in.FacingRight = right
	return true
}

// Facing returns 1 when facing right and -1 otherwise.
func (in *Integrator) Facing() float64 {
	if in == nil || in.FacingRight {
		return 1
	}
	return -1
}
