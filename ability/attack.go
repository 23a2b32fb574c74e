package ability

import (
	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/component"
)

// strikeExpiry bounds how long an untaken strike keeps an attack alive.
const strikeExpiry = 0.25

// Strike is the hit an attack delivers once its wind-up has elapsed.
type Strike struct {
	Direction component.Direction
	Reach     float64
	Size      common.Vec2
	Damage    int
}

type attackRun struct {
	strike   Strike
	strikeAt float64
	end      float64
	struck   bool
}

// TryAttack starts a swing toward dir and holds the action lock for its
// duration. The hit is delivered through TakeStrike after the wind-up.
func (s *Scheduler) TryAttack(ctx Context, dir component.Direction) bool {
	if !s.canStart(ctx.Now) || !s.gates.Attack {
		return false
	}
	if !s.attackCooldown.Ready(ctx.Now) {
		return false
	}
	if dir == component.DirNone {
		dir = component.DirRight
		if ctx.Facing < 0 {
			dir = component.DirLeft
		}
	}

	cfg := s.cfg.Attack
	s.attack = attackRun{
		strike: Strike{
			Direction: dir,
			Reach:     cfg.Reach.Resolve(dir),
			Size:      cfg.Box.Resolve(dir),
			Damage:    cfg.Damage,
		},
		strikeAt: ctx.Now + cfg.Windup,
		end:      ctx.Now + cfg.Duration,
	}
	s.attackCooldown.Trigger(ctx.Now)
	s.lock.Extend(ctx.Now, cfg.Duration)
	s.setState(Attacking)
	return true
}

// TakeStrike hands out the pending strike exactly once, as soon as the
// wind-up has elapsed.
func (s *Scheduler) TakeStrike(now float64) (Strike, bool) {
	if s == nil || s.state != Attacking || s.attack.struck || now < s.attack.strikeAt {
		return Strike{}, false
	}
	s.attack.struck = true
	return s.attack.strike, true
}

// AttackReady reports whether the attack cooldown has elapsed.
func (s *Scheduler) AttackReady(now float64) bool {
	return s != nil && s.attackCooldown.Ready(now)
}

func (s *Scheduler) tickAttack(ctx Context) {
	if ctx.Now < s.attack.end {
		return
	}
	if !s.attack.struck && ctx.Now < s.attack.strikeAt+strikeExpiry {
		return
	}
	s.attack = attackRun{}
	s.setState(Idle)
}
