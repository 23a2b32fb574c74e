package actor

import (
	"log"

	"github.com/milk9111/sanity/ability"
	"github.com/milk9111/sanity/ai"
	"github.com/milk9111/sanity/combat"
	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/component"
	"github.com/milk9111/sanity/locomotion"
	"github.com/milk9111/sanity/physics"
	"github.com/oklog/ulid/v2"
)

// Controller is the composition root of one actor. It owns the actor's
// resource, locomotion, abilities and, for enemies, its aggro machine, and
// runs them in a fixed order once per physics step.
type Controller struct {
	id   string
	cfg  Config
	body physics.Body

	querier  physics.Querier
	resolver *combat.Resolver

	Resource  *component.Resource
	Loco      *locomotion.Integrator
	Ground    *locomotion.GroundSensor
	Abilities *ability.Scheduler
	Receiver  *combat.Receiver
	AI        *ai.Machine

	Animator Animator
	Audio    Audio

	// OnDepleted fires once each time the resource reaches zero.
	OnDepleted func()

	input       component.Input
	inputLocked bool
	grounded    bool
	decision    ai.Decision
	depleted    bool
	now         float64
	warned      map[string]bool
}

var (
	_ component.Damageable = (*Controller)(nil)
	_ component.Identified = (*Controller)(nil)
	_ component.Factioned  = (*Controller)(nil)
	_ component.Positioned = (*Controller)(nil)
	_ combat.Mortal        = (*Controller)(nil)
	_ combat.StrikeTarget  = (*Controller)(nil)
)

// New builds a controller around body. A nil resolver gets a private one
// over q; a nil store keeps the resource in memory only.
func New(cfg Config, body physics.Body, q physics.Querier, resolver *combat.Resolver, store component.Persister) *Controller {
	if resolver == nil {
		resolver = combat.NewResolver(q, nil)
	}
	c := &Controller{
		id:       ulid.Make().String(),
		cfg:      cfg,
		body:     body,
		querier:  q,
		resolver: resolver,
		Resource: component.NewResource(cfg.ResourceMax, cfg.ResourceKey, store),
		Loco:     locomotion.NewIntegrator(cfg.Locomotion),
		Ground:   locomotion.NewGroundSensor(cfg.GroundRadius, cfg.GroundOffset, cfg.GroundMask),
		Animator: nopAnimator{},
		Audio:    nopAudio{},
		warned:   map[string]bool{},
	}
	c.Abilities = ability.NewScheduler(cfg.Abilities)
	c.Abilities.SetGates(cfg.Gates)
	c.Abilities.OnStateChange = c.abilityChanged
	c.Receiver = combat.NewReceiver(cfg.Receiver, c.Resource, body)
	c.Receiver.OnDeath = func() {
		c.Abilities.Cancel(c.body)
		c.Animator.Trigger(AnimDie)
	}

	c.Resource.Load()
	c.Resource.Subscribe(c.resourceChanged)
	return c
}

// AttachAI makes the controller enemy-driven.
func (c *Controller) AttachAI(m *ai.Machine) {
	if c == nil {
		return
	}
	c.AI = m
}

func (c *Controller) ID() string {
	if c == nil {
		return ""
	}
	return c.id
}

func (c *Controller) Name() string {
	if c == nil {
		return ""
	}
	return c.cfg.Name
}

func (c *Controller) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

func (c *Controller) Faction() component.Faction {
	if c == nil {
		return component.FactionNeutral
	}
	return c.cfg.Faction
}

func (c *Controller) Body() physics.Body {
	if c == nil {
		return nil
	}
	return c.body
}

func (c *Controller) Position() common.Vec2 {
	if c == nil || c.body == nil {
		return common.Vec2{}
	}
	return c.body.Position()
}

func (c *Controller) Grounded() bool {
	return c != nil && c.grounded
}

func (c *Controller) Facing() float64 {
	if c == nil {
		return 1
	}
	return c.Loco.Facing()
}

// Decision is the last aggro decision, zero for the player.
func (c *Controller) Decision() ai.Decision {
	if c == nil {
		return ai.Decision{}
	}
	return c.decision
}

// SetInput stores the sampled input for the next Tick. Button fields are
// presses and are consumed by that Tick.
func (c *Controller) SetInput(in component.Input) {
	if c == nil {
		return
	}
	c.input = in.Clamped()
}

// SetInputLocked blocks every ability start and zeroes intent, e.g. during
// dialogue or a scripted shove.
func (c *Controller) SetInputLocked(locked bool) {
	if c == nil {
		return
	}
	c.inputLocked = locked
	c.Abilities.SetInputLocked(locked)
}

func (c *Controller) InputLocked() bool {
	return c != nil && c.inputLocked
}

func (c *Controller) TakeDamage(hit component.Hit) bool {
	if c == nil {
		return false
	}
	return c.Receiver.TakeDamage(hit)
}

func (c *Controller) Dead() bool {
	return c != nil && c.Receiver.Dead()
}

func (c *Controller) CurrentResource() int {
	if c == nil {
		return 0
	}
	return c.Resource.Current()
}

func (c *Controller) MaxResource() int {
	if c == nil {
		return 0
	}
	return c.Resource.Max()
}

// Subscribe registers a resource listener and returns its remover.
func (c *Controller) Subscribe(fn component.ResourceListener) func() {
	if c == nil {
		return func() {}
	}
	return c.Resource.Subscribe(fn)
}

// Advance moves the damage clock without ticking, so hits landed by actors
// ticked earlier in the same step see the current time.
func (c *Controller) Advance(now float64) {
	if c == nil {
		return
	}
	c.now = now
	c.Receiver.Tick(now)
}

func (c *Controller) resourceChanged(current, _ int) {
	if current > 0 {
		c.depleted = false
		return
	}
	if c.depleted {
		return
	}
	c.depleted = true
	if c.OnDepleted != nil {
		c.OnDepleted()
	}
}

func (c *Controller) abilityChanged(_, to ability.State) {
	switch to {
	case ability.Jumping:
		c.Animator.Trigger(AnimJump)
		c.play(c.cfg.Clips.Jump)
	case ability.Dashing:
		c.Animator.Trigger(AnimDash)
		c.play(c.cfg.Clips.Dash)
	case ability.Sliding:
		c.Animator.Trigger(AnimSlide)
	case ability.Attacking:
		c.Animator.Trigger(AnimAttack)
	case ability.Hopping:
		c.Animator.Trigger(AnimHop)
	}
}

func (c *Controller) play(clip string) {
	if clip == "" {
		return
	}
	c.Audio.Play(clip, c.Position(), 1, 1)
}

func (c *Controller) warnOnce(cause, format string, args ...any) {
	if c.warned[cause] {
		return
	}
	c.warned[cause] = true
	log.Printf(format, args...)
}
