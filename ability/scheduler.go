package ability

import (
	"math"

	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/component"
	"github.com/milk9111/sanity/physics"
)

// Context is what a scheduler sees of its actor for one physics step.
type Context struct {
	Now      float64
	Dt       float64
	Body     physics.Body
	Grounded bool
	Intent   float64
	Facing   float64
}

// Scheduler arbitrates the timed abilities of one actor. Exactly one State is
// active; new abilities start only from Idle or Jumping and only while the
// shared action lock has expired. Multi-step abilities advance in Tick.
type Scheduler struct {
	cfg   Config
	state State
	lock  component.Window
	gates Gates

	inputLocked bool

	jumpsLeft  int
	jumpHold   component.Window
	heldIntent float64

	dashCooldown   component.Cooldown
	dash           dashRun
	slideCooldown  component.Cooldown
	slide          slideRun
	attackCooldown component.Cooldown
	attack         attackRun
	hopCooldown    component.Cooldown
	hop            hopRun

	// OnStateChange fires after every transition.
	OnStateChange func(from, to State)
}

func NewScheduler(cfg Config) *Scheduler {
	cfg = cfg.Normalize()
	return &Scheduler{
		cfg:            cfg,
		gates:          AllGates(),
		jumpsLeft:      cfg.Jump.MaxJumps,
		dashCooldown:   component.NewCooldown(cfg.Dash.Cooldown),
		slideCooldown:  component.NewCooldown(cfg.Slide.Cooldown),
		attackCooldown: component.NewCooldown(cfg.Attack.Cooldown),
		hopCooldown:    component.NewCooldown(cfg.Hop.Cooldown),
	}
}

func (s *Scheduler) Config() Config {
	if s == nil {
		return Config{}
	}
	return s.cfg
}

func (s *Scheduler) State() State {
	if s == nil {
		return Idle
	}
	return s.state
}

func (s *Scheduler) SetGates(g Gates) {
	if s == nil {
		return
	}
	s.gates = g
}

func (s *Scheduler) Gates() Gates {
	if s == nil {
		return Gates{}
	}
	return s.gates
}

// SetInputLocked blocks every new start. Cooldowns and running abilities are
// left alone.
func (s *Scheduler) SetInputLocked(locked bool) {
	if s == nil {
		return
	}
	s.inputLocked = locked
}

func (s *Scheduler) InputLocked() bool {
	return s != nil && s.inputLocked
}

// ActionLocked reports whether the shared lock blocks new starts at now.
func (s *Scheduler) ActionLocked(now float64) bool {
	return s != nil && s.lock.Active(now)
}

// OverridesHorizontal reports whether the running ability owns vx this step.
func (s *Scheduler) OverridesHorizontal() bool {
	if s == nil {
		return false
	}
	switch s.state {
	case Dashing, PostDashHang, Sliding, Hopping:
		return true
	}
	return false
}

// Dashing reports either dash phase.
func (s *Scheduler) Dashing() bool {
	return s != nil && (s.state == Dashing || s.state == PostDashHang)
}

// Ready reports whether any ability could start at now, cooldowns aside.
func (s *Scheduler) Ready(now float64) bool {
	return s.canStart(now)
}

func (s *Scheduler) canStart(now float64) bool {
	return s != nil && !s.inputLocked && !s.lock.Active(now) && s.state.interruptible()
}

func (s *Scheduler) setState(to State) {
	from := s.state
	if from == to {
		return
	}
	s.state = to
	if s.OnStateChange != nil {
		s.OnStateChange(from, to)
	}
}

// Tick advances the running ability by one physics step. Ground contact
// observed here cancels the dash hang and the slide.
func (s *Scheduler) Tick(ctx Context) {
	if s == nil {
		return
	}
	switch s.state {
	case Dashing, PostDashHang:
		s.tickDash(ctx)
	case Sliding:
		s.tickSlide(ctx)
	case Attacking:
		s.tickAttack(ctx)
	case Hopping:
		s.tickHop(ctx)
	}
}

// Cancel ends whatever is running and restores any overridden gravity.
func (s *Scheduler) Cancel(body physics.Body) {
	if s == nil {
		return
	}
	if s.Dashing() {
		s.restoreDashGravity(body)
	}
	s.dash = dashRun{}
	s.slide = slideRun{}
	s.attack = attackRun{}
	s.hop = hopRun{}
	s.setState(Idle)
}

// direction picks sign(intent), then sign(vx), then facing.
func (s *Scheduler) direction(ctx Context) float64 {
	if math.Abs(ctx.Intent) > s.cfg.DeadZone {
		return common.Sign(ctx.Intent)
	}
	if ctx.Body != nil {
		if vx := ctx.Body.Velocity().X; math.Abs(vx) > s.cfg.DeadZone {
			return common.Sign(vx)
		}
	}
	if ctx.Facing < 0 {
		return -1
	}
	return 1
}
