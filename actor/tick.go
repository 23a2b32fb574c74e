package actor

import (
	"math"

	"github.com/milk9111/sanity/ability"
	"github.com/milk9111/sanity/ai"
	"github.com/milk9111/sanity/combat"
	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/component"
)

// Tick runs one physics step: ground check, sampling, ability starts,
// velocity, ability continuation, combat, then resource bookkeeping.
func (c *Controller) Tick(now, dt float64) {
	if c == nil {
		return
	}
	c.Advance(now)
	if c.body == nil {
		c.warnOnce("body", "actor: %s has no body", c.cfg.Name)
		return
	}
	if c.Receiver.Dead() {
		return
	}

	pos := c.body.Position()
	grounded, landed := c.Ground.Check(c.querier, pos)
	c.grounded = grounded
	if landed {
		c.Abilities.OnLanded()
	}

	ctx := ability.Context{
		Now:      now,
		Dt:       dt,
		Body:     c.body,
		Grounded: grounded,
		Facing:   c.Loco.Facing(),
	}

	in := c.input
	if c.inputLocked {
		in = component.Input{}
	}
	if c.AI != nil {
		c.decision = c.AI.Update(c.perceive(now, pos, grounded))
		if !c.inputLocked {
			ctx.Intent = c.decision.MoveDir
		}
		c.startFromDecision(ctx)
	} else {
		ctx.Intent = c.Abilities.FilterIntent(now, in.Move)
		c.Loco.UpdateFacing(ctx.Intent)
		ctx.Facing = c.Loco.Facing()
		c.startFromInput(ctx, in)
	}

	c.integrate(ctx, in)
	c.Abilities.Tick(ctx)

	if strike, ok := c.Abilities.TakeStrike(now); ok {
		c.resolveStrike(strike)
	}

	c.input.Jump = false
	c.input.Dash = false
	c.input.Slide = false
	c.input.Attack = false
	c.animate()
}

func (c *Controller) perceive(now float64, pos common.Vec2, grounded bool) ai.Perception {
	return ai.Perception{
		Self:        pos,
		Grounded:    grounded,
		Querier:     c.querier,
		AttackReady: c.Abilities.Ready(now) && c.Abilities.AttackReady(now),
		HopReady:    c.Abilities.HopReady(now),
		Busy:        c.Abilities.State() != ability.Idle,
	}
}

// startFromInput tries presses in jump, dash, slide, attack order. The
// action lock lets at most one of them start.
func (c *Controller) startFromInput(ctx ability.Context, in component.Input) {
	if in.Jump {
		c.Abilities.TryJump(ctx)
	}
	if in.Dash {
		c.Abilities.TryDash(ctx)
	}
	if in.Slide {
		c.Abilities.TrySlide(ctx)
	}
	if in.Attack {
		c.Abilities.TryAttack(ctx, component.ResolveAttackDirection(in, ctx.Facing))
	}
}

func (c *Controller) startFromDecision(ctx ability.Context) {
	d := c.decision
	switch d.Behavior {
	case ai.Attack:
		dir := component.DirRight
		if d.MoveDir < 0 {
			dir = component.DirLeft
		}
		c.Loco.UpdateFacing(d.MoveDir)
		c.Abilities.TryAttack(ctx, dir)
	case ai.Hop:
		if c.Abilities.TryHop(ctx, d.Target.Position, d.HasTarget) {
			c.Loco.UpdateFacing(c.Abilities.HopDirection())
			c.play(c.cfg.Clips.Hop)
		}
	}
}

// integrate writes horizontal velocity unless a running ability owns it,
// and applies fast fall.
func (c *Controller) integrate(ctx ability.Context, in component.Input) {
	body := c.body
	if !c.Abilities.OverridesHorizontal() {
		v := body.Velocity()
		if c.AI != nil {
			v.X = c.enemyVelocity(ctx, v.X)
		} else {
			v.X = c.Loco.Step(ctx.Intent, ctx.Grounded, v.X, ctx.Dt)
		}
		body.SetVelocity(v)
	}

	if c.cfg.FastFallForce > 0 && in.Down && !ctx.Grounded && !c.Abilities.Dashing() {
		body.ApplyImpulse(common.Vec2{Y: -c.cfg.FastFallForce * ctx.Dt})
	}
}

func (c *Controller) enemyVelocity(ctx ability.Context, vx float64) float64 {
	d := c.decision
	if d.Snap {
		pos := c.body.Position()
		c.body.SetPosition(common.Vec2{X: d.SnapX, Y: pos.Y})
		return 0
	}
	if c.inputLocked {
		return 0
	}
	switch d.Behavior {
	case ai.Chase, ai.Return:
		c.Loco.UpdateFacing(d.MoveDir)
		return c.Loco.StepAt(d.MoveDir, d.Speed, ctx.Grounded, vx, ctx.Dt)
	}
	return 0
}

func (c *Controller) resolveStrike(strike ability.Strike) {
	pos := c.body.Position()
	if c.AI != nil {
		target, ok := c.AI.ConfirmStrike(pos)
		landed := ok && c.resolver.Strike(c, target.Receiver, strike.Damage, pos)
		if landed {
			c.play(c.cfg.Clips.AttackHit)
		} else {
			c.play(c.cfg.Clips.AttackMiss)
		}
		return
	}

	applied := c.resolver.ResolveHit(combat.HitQuery{
		Origin:    pos,
		Direction: strike.Direction,
		Reach:     strike.Reach,
		Size:      strike.Size,
		Mask:      c.cfg.AttackMask,
	}, strike.Damage, c)
	if c.cfg.RestorePerHit > 0 && len(applied) > 0 {
		c.Resource.Restore(c.cfg.RestorePerHit * len(applied))
	}
}

func (c *Controller) animate() {
	v := c.body.Velocity()
	c.Animator.SetBool(AnimGrounded, c.grounded)
	c.Animator.SetBool(AnimWalking, math.Abs(v.X) > c.cfg.Locomotion.DeadZone)
	c.Animator.SetBool(AnimFacing, c.Loco.Facing() > 0)
	c.Animator.SetFloat(AnimYVel, v.Y)
}
