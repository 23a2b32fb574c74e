package combat

import (
	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/component"
	"github.com/milk9111/sanity/physics"
)

// ReceiverConfig tunes how an actor reacts to being hit.
type ReceiverConfig struct {
	InvulnerabilityTime float64
	KnockbackForce      float64
	// MaxKnockbackSpeed caps the velocity along the knockback direction.
	// Zero disables the cap.
	MaxKnockbackSpeed float64
	DestroyDelay      float64
	// Persistent receivers survive a depleted resource; the owner decides
	// what depletion means.
	Persistent bool
}

func DefaultReceiverConfig() ReceiverConfig {
	return ReceiverConfig{
		InvulnerabilityTime: 0.18,
		KnockbackForce:      5,
		DestroyDelay:        0.08,
	}
}

// Receiver is the damage-taking side of an actor: invulnerability window,
// knockback and one-shot death.
type Receiver struct {
	Config   ReceiverConfig
	Resource *component.Resource
	Body     physics.Body

	OnDamaged func(hit component.Hit)
	OnDeath   func()

	now       float64
	invuln    component.Window
	dead      bool
	destroyAt float64
}

func NewReceiver(cfg ReceiverConfig, res *component.Resource, body physics.Body) *Receiver {
	if cfg.InvulnerabilityTime < 0 {
		cfg.InvulnerabilityTime = 0
	}
	if cfg.KnockbackForce < 0 {
		cfg.KnockbackForce = 0
	}
	if cfg.DestroyDelay < 0 {
		cfg.DestroyDelay = 0
	}
	return &Receiver{Config: cfg, Resource: res, Body: body}
}

// Tick advances the receiver clock. Invulnerability expires against it.
func (r *Receiver) Tick(now float64) {
	if r == nil {
		return
	}
	r.now = now
}

func (r *Receiver) TakeDamage(hit component.Hit) bool {
	if r == nil || r.Resource == nil || r.dead || hit.Amount <= 0 {
		return false
	}
	if r.invuln.Active(r.now) {
		return false
	}

	r.Resource.Damage(hit.Amount)
	r.invuln.Extend(r.now, r.Config.InvulnerabilityTime)
	if hit.HasSource {
		r.knockback(hit.Source)
	}
	if r.OnDamaged != nil {
		r.OnDamaged(hit)
	}
	if r.Resource.Depleted() && !r.Config.Persistent {
		r.die()
	}
	return true
}

func (r *Receiver) Invulnerable(now float64) bool {
	return r != nil && r.invuln.Active(now)
}

func (r *Receiver) Dead() bool {
	return r != nil && r.dead
}

// DestroyAt is when a dead actor may be removed from the world.
func (r *Receiver) DestroyAt() (float64, bool) {
	if r == nil || !r.dead {
		return 0, false
	}
	return r.destroyAt, true
}

func (r *Receiver) die() {
	r.dead = true
	r.destroyAt = r.now + r.Config.DestroyDelay
	if r.Body != nil {
		r.Body.SetCollisionEnabled(false)
	}
	if r.OnDeath != nil {
		r.OnDeath()
	}
}

func (r *Receiver) knockback(source common.Vec2) {
	if r.Body == nil || r.Config.KnockbackForce <= 0 {
		return
	}
	dir := r.Body.Position().Sub(source).Normalize()
	if dir.LenSq() < 0.01 {
		dir = common.Vec2{Y: 1}
	}
	r.Body.ApplyImpulse(dir.Scale(r.Config.KnockbackForce))

	limit := r.Config.MaxKnockbackSpeed
	if limit <= 0 {
		return
	}
	v := r.Body.Velocity()
	along := v.Dot(dir)
	if along > limit {
		tangent := v.Sub(dir.Scale(along))
		r.Body.SetVelocity(tangent.Add(dir.Scale(limit)))
	}
}
