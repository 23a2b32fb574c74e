package ability

import (
	"math"

	"github.com/milk9111/sanity/common"
)

// TryJump spends one charge. Charges after the first are weaker.
func (s *Scheduler) TryJump(ctx Context) bool {
	if !s.canStart(ctx.Now) || !s.gates.Jump || ctx.Body == nil {
		return false
	}
	if s.jumpsLeft <= 0 {
		return false
	}

	force := s.cfg.Jump.Force
	if s.jumpsLeft != s.cfg.Jump.MaxJumps {
		force *= s.cfg.Jump.SecondMultiplier
	}
	s.jumpsLeft--

	v := ctx.Body.Velocity()
	ctx.Body.SetVelocity(common.Vec2{X: v.X})
	ctx.Body.ApplyImpulse(common.Vec2{Y: force})

	s.lock.Extend(ctx.Now, s.cfg.Jump.ActionLock)
	s.jumpHold.Extend(ctx.Now, s.cfg.Jump.InputHold)
	s.heldIntent = ctx.Intent
	s.setState(Jumping)
	return true
}

// OnLanded refills jump charges. Call it on the airborne to grounded edge.
func (s *Scheduler) OnLanded() {
	if s == nil {
		return
	}
	s.jumpsLeft = s.cfg.Jump.MaxJumps
	if s.state == Jumping {
		s.setState(Idle)
	}
}

func (s *Scheduler) JumpsLeft() int {
	if s == nil {
		return 0
	}
	return s.jumpsLeft
}

// FilterIntent keeps the pre-jump intent for a moment after a jump so a
// released stick does not zero horizontal speed during the impulse.
func (s *Scheduler) FilterIntent(now, intent float64) float64 {
	if s == nil || !s.jumpHold.Active(now) {
		return intent
	}
	if math.Abs(intent) > s.cfg.DeadZone {
		return intent
	}
	return s.heldIntent
}
