package component

import "github.com/milk9111/sanity/common"

// Faction identifies teams for friendly-fire checks.
type Faction int

const (
	FactionNeutral Faction = iota
	FactionPlayer
	FactionEnemy
	FactionEnvironment
)

// CanHit reports whether an attacker of faction f may damage target.
func (f Faction) CanHit(target Faction) bool {
	if f == FactionNeutral || target == FactionNeutral {
		return true
	}
	return f != target
}

// Hit is one damage message. Source is the world point knockback pushes away from.
type Hit struct {
	Amount    int
	Source    common.Vec2
	HasSource bool
	Attacker  string
	Faction   Faction
}

// Damageable is anything the combat resolver can dispatch a hit to.
type Damageable interface {
	TakeDamage(hit Hit) bool
}

// Identified damageables report a stable id for combat events.
type Identified interface {
	ID() string
}

// Factioned damageables opt into friendly-fire filtering.
type Factioned interface {
	Faction() Faction
}

// Positioned damageables report where they are for event payloads.
type Positioned interface {
	Position() common.Vec2
}

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventHit           CombatEventType = "hit"
	EventDamageApplied CombatEventType = "damage_applied"
	EventDeath         CombatEventType = "death"
	EventMiss          CombatEventType = "miss"
)

// CombatEvent is emitted during combat resolution.
type CombatEvent struct {
	Type       CombatEventType
	AttackerID string
	TargetID   string
	Damage     int
	Time       float64
	Pos        common.Vec2
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans events out to handlers.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

func (e *CombatEventEmitter) Subscribe(h CombatEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
