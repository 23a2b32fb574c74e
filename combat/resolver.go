package combat

import (
	"log"

	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/component"
	"github.com/milk9111/sanity/physics"
)

// Mortal damageables report death so the resolver can emit death events.
type Mortal interface {
	Dead() bool
}

// Resolver turns attacks into TakeDamage calls and combat events.
type Resolver struct {
	Querier physics.Querier
	Emitter *component.CombatEventEmitter
	Clock   func() float64

	warned bool
}

func NewResolver(q physics.Querier, emitter *component.CombatEventEmitter) *Resolver {
	return &Resolver{Querier: q, Emitter: emitter}
}

// ResolveHit damages every distinct Damageable owner inside the query box,
// skipping the attacker and friendly factions. It returns the targets the
// hit actually applied to.
func (r *Resolver) ResolveHit(q HitQuery, damage int, attacker component.Damageable) []component.Damageable {
	if r == nil {
		return nil
	}
	if r.Querier == nil {
		if !r.warned {
			r.warned = true
			log.Printf("combat: resolver has no querier, attacks will miss")
		}
		return nil
	}

	hit := component.Hit{
		Amount:    damage,
		Source:    q.Origin,
		HasSource: true,
		Attacker:  idOf(attacker),
		Faction:   factionOf(attacker),
	}

	seen := make(map[component.Damageable]bool)
	var applied []component.Damageable
	for _, c := range r.Querier.OverlapBox(q.Box(), q.Mask) {
		target, ok := c.Owner.(component.Damageable)
		if !ok || target == nil || target == attacker || seen[target] {
			continue
		}
		seen[target] = true
		if !hit.Faction.CanHit(factionOf(target)) {
			continue
		}
		if r.apply(target, hit, c.Bounds.Center) {
			applied = append(applied, target)
		}
	}

	if len(applied) == 0 {
		r.emit(component.CombatEvent{Type: component.EventMiss, AttackerID: hit.Attacker, Pos: q.Box().Center})
	}
	return applied
}

// Strike is the single-target hit an enemy lands after re-validating range.
func (r *Resolver) Strike(attacker, target component.Damageable, amount int, source common.Vec2) bool {
	if r == nil {
		return false
	}
	hit := component.Hit{
		Amount:    amount,
		Source:    source,
		HasSource: true,
		Attacker:  idOf(attacker),
		Faction:   factionOf(attacker),
	}
	if target == nil || target == attacker || !hit.Faction.CanHit(factionOf(target)) {
		r.emit(component.CombatEvent{Type: component.EventMiss, AttackerID: hit.Attacker, Pos: source})
		return false
	}
	return r.apply(target, hit, positionOf(target, source))
}

func (r *Resolver) apply(target component.Damageable, hit component.Hit, pos common.Vec2) bool {
	evt := component.CombatEvent{
		Type:       component.EventHit,
		AttackerID: hit.Attacker,
		TargetID:   idOf(target),
		Damage:     hit.Amount,
		Time:       r.now(),
		Pos:        pos,
	}
	r.emit(evt)

	if !target.TakeDamage(hit) {
		return false
	}
	evt.Type = component.EventDamageApplied
	r.emit(evt)
	if m, ok := target.(Mortal); ok && m.Dead() {
		evt.Type = component.EventDeath
		r.emit(evt)
	}
	return true
}

func (r *Resolver) emit(evt component.CombatEvent) {
	if r.Emitter == nil {
		return
	}
	if evt.Time == 0 {
		evt.Time = r.now()
	}
	r.Emitter.Emit(evt)
}

func (r *Resolver) now() float64 {
	if r.Clock == nil {
		return 0
	}
	return r.Clock()
}

func idOf(d component.Damageable) string {
	if id, ok := d.(component.Identified); ok {
		return id.ID()
	}
	return ""
}

func factionOf(d component.Damageable) component.Faction {
	if f, ok := d.(component.Factioned); ok {
		return f.Faction()
	}
	return component.FactionNeutral
}

func positionOf(d component.Damageable, fallback common.Vec2) common.Vec2 {
	if p, ok := d.(component.Positioned); ok {
		return p.Position()
	}
	return fallback
}
