package ability

import "github.com/milk9111/sanity/common"

type slideRun struct {
	dir float64
	end float64
}

// TrySlide starts a grounded slide in the facing direction.
func (s *Scheduler) TrySlide(ctx Context) bool {
	if !s.canStart(ctx.Now) || !s.gates.Slide || ctx.Body == nil || !ctx.Grounded {
		return false
	}
	if !s.slideCooldown.Ready(ctx.Now) {
		return false
	}

	dir := 1.0
	if ctx.Facing < 0 {
		dir = -1
	}
	s.slide = slideRun{dir: dir, end: ctx.Now + s.cfg.Slide.Duration}
	v := ctx.Body.Velocity()
	ctx.Body.SetVelocity(common.Vec2{X: dir * s.cfg.Slide.Speed, Y: v.Y})

	s.slideCooldown.Trigger(ctx.Now)
	s.lock.Extend(ctx.Now, s.cfg.Slide.ActionLock)
	s.setState(Sliding)
	return true
}

func (s *Scheduler) tickSlide(ctx Context) {
	if ctx.Body == nil || !ctx.Grounded || ctx.Now >= s.slide.end {
		s.slide = slideRun{}
		s.setState(Idle)
		return
	}
	v := ctx.Body.Velocity()
	ctx.Body.SetVelocity(common.Vec2{X: s.slide.dir * s.cfg.Slide.Speed, Y: v.Y})
}
