package ability

import (
	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/physics"
)

type dashPhase int

const (
	dashNone dashPhase = iota
	dashBurst
	dashHang
	dashDecel
)

type dashRun struct {
	phase        dashPhase
	dir          float64
	savedGravity float64
	phaseStart   float64
	phaseEnd     float64
	hangSpeed    float64
	decelFrom    float64
}

// TryDash starts the burst phase: full speed, no gravity.
func (s *Scheduler) TryDash(ctx Context) bool {
	if !s.canStart(ctx.Now) || !s.gates.Dash || ctx.Body == nil {
		return false
	}
	if !s.dashCooldown.Ready(ctx.Now) {
		return false
	}

	dir := s.direction(ctx)
	cfg := s.cfg.Dash
	s.dash = dashRun{
		phase:        dashBurst,
		dir:          dir,
		savedGravity: ctx.Body.GravityScale(),
		phaseStart:   ctx.Now,
		phaseEnd:     ctx.Now + cfg.Duration,
	}
	ctx.Body.SetGravityScale(0)
	ctx.Body.SetVelocity(common.Vec2{X: dir * cfg.Speed})

	s.dashCooldown.Trigger(ctx.Now)
	s.lock.Extend(ctx.Now, cfg.ActionLock)
	s.setState(Dashing)
	return true
}

func (s *Scheduler) tickDash(ctx Context) {
	body := ctx.Body
	if body == nil {
		s.finishDash(nil)
		return
	}
	cfg := s.cfg.Dash

	switch s.dash.phase {
	case dashBurst:
		if ctx.Now < s.dash.phaseEnd {
			body.SetVelocity(common.Vec2{X: s.dash.dir * cfg.Speed})
			return
		}
		s.dash.phase = dashHang
		s.dash.phaseStart = ctx.Now
		s.dash.phaseEnd = ctx.Now + cfg.HangDuration
		s.dash.hangSpeed = s.dash.dir * cfg.Speed * cfg.HangSpeedMultiplier
		body.SetVelocity(common.Vec2{X: s.dash.hangSpeed, Y: cfg.HangUpwardBoost})
		body.SetGravityScale(s.dash.savedGravity * cfg.HangGravityMultiplier)
		s.setState(PostDashHang)

	case dashHang:
		if ctx.Grounded {
			s.finishDash(body)
			return
		}
		if ctx.Now < s.dash.phaseEnd {
			body.SetVelocity(common.Vec2{X: s.dash.hangSpeed, Y: body.Velocity().Y})
			return
		}
		s.dash.phase = dashDecel
		s.dash.phaseStart = ctx.Now
		s.dash.phaseEnd = ctx.Now + cfg.DecelDuration
		s.dash.decelFrom = body.Velocity().X
		s.tickDecel(ctx)

	case dashDecel:
		s.tickDecel(ctx)

	default:
		s.finishDash(body)
	}
}

func (s *Scheduler) tickDecel(ctx Context) {
	body := ctx.Body
	if ctx.Grounded {
		s.finishDash(body)
		return
	}
	if ctx.Now >= s.dash.phaseEnd {
		body.SetVelocity(common.Vec2{Y: body.Velocity().Y})
		s.finishDash(body)
		return
	}
	t := 1.0
	if span := s.dash.phaseEnd - s.dash.phaseStart; span > 0 {
		t = (ctx.Now - s.dash.phaseStart) / span
	}
	body.SetVelocity(common.Vec2{X: common.Lerp(s.dash.decelFrom, 0, t), Y: body.Velocity().Y})
}

func (s *Scheduler) finishDash(body physics.Body) {
	s.restoreDashGravity(body)
	s.dash = dashRun{}
	s.setState(Idle)
}

func (s *Scheduler) restoreDashGravity(body physics.Body) {
	if body == nil || s.dash.phase == dashNone {
		return
	}
	body.SetGravityScale(s.dash.savedGravity)
}
