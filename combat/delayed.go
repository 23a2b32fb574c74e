package combat

import (
	"math"

	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/component"
	"github.com/milk9111/sanity/physics"
)

// StrikeTarget is what a delayed strike can shove and damage.
type StrikeTarget interface {
	component.Damageable
	Body() physics.Body
	SetInputLocked(locked bool)
}

type DelayedStrikeConfig struct {
	Delay      float64
	Distance   float64
	TravelTime float64
	Upward     float64
	Damage     int
	// Direction is the horizontal sign of the shove.
	Direction float64
	SingleUse bool
}

func DefaultDelayedStrikeConfig() DelayedStrikeConfig {
	return DelayedStrikeConfig{
		Delay:      2,
		Distance:   5,
		TravelTime: 0.6,
		Upward:     0.5,
		Damage:     1,
		Direction:  -1,
		SingleUse:  true,
	}
}

type strikePhase int

const (
	strikeArmed strikePhase = iota
	strikeWinding
	strikeShoving
	strikeSpent
)

// DelayedStrike is a trap: once triggered it winds up, shoves the target a
// fixed distance with input locked, then deals damage. Update must run
// after the target's controller and before the physics step so the shove
// speed holds for the whole travel.
type DelayedStrike struct {
	Config DelayedStrikeConfig
	// OnTrigger fires when the wind-up starts, e.g. to play an animation.
	OnTrigger func()

	phase  strikePhase
	target StrikeTarget
	fireAt float64
	shoveT float64
	startX float64
}

func NewDelayedStrike(cfg DelayedStrikeConfig) *DelayedStrike {
	if cfg.Direction == 0 {
		cfg.Direction = -1
	}
	return &DelayedStrike{Config: cfg}
}

// Trigger starts the wind-up against target. It is ignored while a strike
// is running or after a single-use strike has been spent.
func (d *DelayedStrike) Trigger(now float64, target StrikeTarget) bool {
	if d == nil || target == nil || d.phase != strikeArmed {
		return false
	}
	d.target = target
	d.fireAt = now + math.Max(0, d.Config.Delay)
	d.phase = strikeWinding
	if d.OnTrigger != nil {
		d.OnTrigger()
	}
	return true
}

func (d *DelayedStrike) Update(now float64) {
	if d == nil || d.target == nil {
		return
	}
	switch d.phase {
	case strikeWinding:
		if now < d.fireAt {
			return
		}
		body := d.target.Body()
		if body == nil {
			d.finish()
			return
		}
		d.target.SetInputLocked(true)
		body.SetVelocity(common.Vec2{X: common.Sign(d.Config.Direction) * d.shoveSpeed(), Y: d.Config.Upward})
		d.startX = body.Position().X
		d.shoveT = now
		d.phase = strikeShoving

	case strikeShoving:
		body := d.target.Body()
		travelled := 0.0
		if body != nil {
			travelled = math.Abs(body.Position().X - d.startX)
		}
		if now-d.shoveT < d.Config.TravelTime && travelled < d.Config.Distance {
			if body != nil {
				v := body.Velocity()
				body.SetVelocity(common.Vec2{X: common.Sign(d.Config.Direction) * d.shoveSpeed(), Y: v.Y})
			}
			return
		}
		d.target.SetInputLocked(false)
		d.target.TakeDamage(component.Hit{Amount: d.Config.Damage})
		d.finish()
	}
}

// Reset re-arms a spent strike.
func (d *DelayedStrike) Reset() {
	if d == nil || d.phase == strikeWinding || d.phase == strikeShoving {
		return
	}
	d.phase = strikeArmed
}

func (d *DelayedStrike) Armed() bool {
	return d != nil && d.phase == strikeArmed
}

func (d *DelayedStrike) finish() {
	d.target = nil
	if d.Config.SingleUse {
		d.phase = strikeSpent
		return
	}
	d.phase = strikeArmed
}

func (d *DelayedStrike) shoveSpeed() float64 {
	if d.Config.TravelTime > 0 {
		return d.Config.Distance / d.Config.TravelTime
	}
	return d.Config.Distance * 10
}
