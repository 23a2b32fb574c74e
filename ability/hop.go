package ability

import "github.com/milk9111/sanity/common"

type hopPhase int

const (
	hopNone hopPhase = iota
	hopSettle
	hopAirborne
)

type hopRun struct {
	phase    hopPhase
	dir      float64
	settled  bool
	launched float64
	deadline float64
}

// TryHop jumps toward target. A missing target is a silent no-op.
func (s *Scheduler) TryHop(ctx Context, target common.Vec2, hasTarget bool) bool {
	if !hasTarget || ctx.Body == nil || !ctx.Grounded {
		return false
	}
	if !s.HopReady(ctx.Now) {
		return false
	}

	dir := common.Sign(target.X - ctx.Body.Position().X)
	s.hop = hopRun{
		phase:    hopSettle,
		dir:      dir,
		deadline: ctx.Now + s.cfg.Hop.Timeout,
	}
	s.hopCooldown.Trigger(ctx.Now)
	s.setState(Hopping)
	return true
}

// HopReady reports whether TryHop would accept a grounded start at now.
func (s *Scheduler) HopReady(now float64) bool {
	return s != nil && !s.inputLocked && !s.lock.Active(now) && s.state == Idle && s.hopCooldown.Ready(now)
}

// HopDirection is the direction of the running hop, or 0.
func (s *Scheduler) HopDirection() float64 {
	if s == nil || s.state != Hopping {
		return 0
	}
	return s.hop.dir
}

// tickHop waits one step, launches, then holds vx until a grounded step
// with non-positive vertical speed or the safety deadline.
func (s *Scheduler) tickHop(ctx Context) {
	body := ctx.Body
	if body == nil || ctx.Now >= s.hop.deadline {
		s.hop = hopRun{}
		s.setState(Idle)
		return
	}
	cfg := s.cfg.Hop

	switch s.hop.phase {
	case hopSettle:
		if !s.hop.settled {
			s.hop.settled = true
			return
		}
		body.SetVelocity(common.Vec2{X: s.hop.dir * cfg.Speed})
		body.ApplyImpulse(common.Vec2{Y: cfg.Force})
		s.hop.phase = hopAirborne
		s.hop.launched = ctx.Now

	case hopAirborne:
		v := body.Velocity()
		if ctx.Now > s.hop.launched && ctx.Grounded && v.Y <= cfg.LandVelocity {
			s.hop = hopRun{}
			s.setState(Idle)
			return
		}
		body.SetVelocity(common.Vec2{X: s.hop.dir * cfg.Speed, Y: v.Y})
	}
}
