package ai

import (
	"context"
	"log"
	"math"

	"github.com/looplab/fsm"
	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/physics"
)

type Mode string

const (
	Idle      Mode = "idle"
	Chasing   Mode = "chasing"
	Attacking Mode = "attacking"
	Returning Mode = "returning"
	Hopping   Mode = "hopping"
)

const (
	evDetect = "detect"
	evLose   = "lose"
	evCalm   = "calm"
	evAttack = "attack"
	evHop    = "hop"
	evResume = "resume"
)

func transitions() fsm.Events {
	return fsm.Events{
		{Name: evDetect, Src: []string{string(Idle), string(Returning)}, Dst: string(Chasing)},
		{Name: evLose, Src: []string{string(Chasing), string(Attacking), string(Hopping)}, Dst: string(Returning)},
		{Name: evCalm, Src: []string{string(Chasing), string(Attacking), string(Hopping), string(Returning)}, Dst: string(Idle)},
		{Name: evAttack, Src: []string{string(Chasing)}, Dst: string(Attacking)},
		{Name: evHop, Src: []string{string(Chasing)}, Dst: string(Hopping)},
		{Name: evResume, Src: []string{string(Attacking), string(Hopping)}, Dst: string(Chasing)},
	}
}

// Machine is the detection and aggro state machine of one enemy. It only
// decides; the owning controller applies the decision.
type Machine struct {
	Config  DetectionConfig
	Spawn   common.Vec2
	Locator TargetLocator
	Guard   *EngageScript

	// ReturnToSpawn walks back to Spawn after losing the target instead of
	// idling in place.
	ReturnToSpawn bool
	// Hops chases with hops instead of walking.
	Hops bool

	OnStateChange func(from, to Mode)

	fsm    *fsm.FSM
	warned map[string]bool
}

func NewMachine(cfg DetectionConfig, spawn common.Vec2, locator TargetLocator) *Machine {
	m := &Machine{
		Config:        cfg.Normalize(),
		Spawn:         spawn,
		Locator:       locator,
		ReturnToSpawn: true,
		warned:        map[string]bool{},
	}
	m.fsm = fsm.NewFSM(string(Idle), transitions(), fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			if m.OnStateChange != nil {
				m.OnStateChange(Mode(e.Src), Mode(e.Dst))
			}
		},
	})
	return m
}

func (m *Machine) Mode() Mode {
	if m == nil || m.fsm == nil {
		return Idle
	}
	return Mode(m.fsm.Current())
}

// Reset drops any aggro without firing OnStateChange.
func (m *Machine) Reset() {
	if m == nil || m.fsm == nil {
		return
	}
	m.fsm.SetState(string(Idle))
}

// Update re-acquires the target, applies at most the transitions this step
// allows and returns what the actor should do.
func (m *Machine) Update(p Perception) Decision {
	if m == nil || m.fsm == nil {
		return Decision{}
	}
	target, ok := m.locate()

	switch m.Mode() {
	case Idle:
		if ok && m.engages(p, target) {
			m.fire(evDetect)
			return m.pursue(target, p.Self)
		}
		return Decision{Behavior: Hold}

	case Chasing:
		return m.chase(p, target, ok)

	case Attacking:
		if p.Busy || !p.AttackReady {
			return Decision{Behavior: Hold, Target: target, HasTarget: ok}
		}
		return m.settle(p, target, ok)

	case Hopping:
		if p.Busy {
			return Decision{Behavior: Hold, Target: target, HasTarget: ok}
		}
		return m.settle(p, target, ok)

	case Returning:
		if ok && m.within(p, target.Position, m.Config.DetectionRange) {
			m.fire(evDetect)
			return m.pursue(target, p.Self)
		}
		return m.returnHome(p.Self)
	}
	return Decision{}
}

// ConfirmStrike re-checks the attack range after the wind-up. Only a
// confirmed target may be damaged.
func (m *Machine) ConfirmStrike(self common.Vec2) (Target, bool) {
	if m == nil {
		return Target{}, false
	}
	target, ok := m.locate()
	if !ok || !m.inAttackRange(self, target.Position) {
		return Target{}, false
	}
	return target, true
}

func (m *Machine) chase(p Perception, target Target, ok bool) Decision {
	if !ok || !m.within(p, target.Position, m.Config.DropRange()) {
		return m.lose(p.Self)
	}
	dir := common.Sign(target.Position.X - p.Self.X)
	if m.inAttackRange(p.Self, target.Position) && p.AttackReady {
		m.fire(evAttack)
		return Decision{Behavior: Attack, MoveDir: dir, Target: target, HasTarget: true}
	}
	if m.Hops && p.Grounded && p.HopReady {
		m.fire(evHop)
		return Decision{Behavior: Hop, MoveDir: dir, Target: target, HasTarget: true}
	}
	return m.pursue(target, p.Self)
}

// settle picks the follow-up once an attack or hop has finished.
func (m *Machine) settle(p Perception, target Target, ok bool) Decision {
	if ok && m.within(p, target.Position, m.Config.DropRange()) {
		m.fire(evResume)
		return m.pursue(target, p.Self)
	}
	return m.lose(p.Self)
}

func (m *Machine) pursue(target Target, self common.Vec2) Decision {
	if m.Hops {
		return Decision{Behavior: Hold, Target: target, HasTarget: true}
	}
	return Decision{
		Behavior:  Chase,
		MoveDir:   common.Sign(target.Position.X - self.X),
		Speed:     m.Config.MoveSpeed,
		Target:    target,
		HasTarget: true,
	}
}

func (m *Machine) lose(self common.Vec2) Decision {
	if !m.ReturnToSpawn {
		m.fire(evCalm)
		return Decision{Behavior: Hold}
	}
	m.fire(evLose)
	return m.returnHome(self)
}

func (m *Machine) returnHome(self common.Vec2) Decision {
	dx := m.Spawn.X - self.X
	if math.Abs(dx) <= m.Config.ReturnStopThreshold {
		m.fire(evCalm)
		return Decision{Behavior: Return, Snap: true, SnapX: m.Spawn.X}
	}
	return Decision{Behavior: Return, MoveDir: common.Sign(dx), Speed: m.Config.ReturnSpeed}
}

func (m *Machine) engages(p Perception, target Target) bool {
	if !m.within(p, target.Position, m.Config.DetectionRange) {
		return false
	}
	if m.Guard == nil {
		return true
	}
	d := target.Position.Sub(p.Self)
	return m.Guard.Allows(d.X, d.Y, d.Len())
}

func (m *Machine) within(p Perception, target common.Vec2, rng float64) bool {
	if math.Abs(target.X-p.Self.X) > rng || math.Abs(target.Y-p.Self.Y) > m.Config.VerticalTolerance {
		return false
	}
	return m.lineOfSight(p, target)
}

func (m *Machine) inAttackRange(self, target common.Vec2) bool {
	return math.Abs(target.X-self.X) <= m.Config.AttackRange &&
		math.Abs(target.Y-self.Y) <= m.Config.VerticalTolerance
}

// lineOfSight is clear unless a blocker on LineOfSightMask lies between
// self and target. A zero mask disables the test.
func (m *Machine) lineOfSight(p Perception, target common.Vec2) bool {
	if !m.Config.RequireLineOfSight || m.Config.LineOfSightMask == physics.LayerNone {
		return true
	}
	if p.Querier == nil {
		m.warnOnce("los", "ai: line of sight required but no querier, treating as clear")
		return true
	}
	_, blocked := p.Querier.Raycast(p.Self, target, m.Config.LineOfSightMask)
	return !blocked
}

func (m *Machine) locate() (Target, bool) {
	if m.Locator == nil {
		m.warnOnce("locator", "ai: no target locator")
		return Target{}, false
	}
	return m.Locator.Locate()
}

func (m *Machine) fire(event string) {
	if !m.fsm.Can(event) {
		log.Printf("ai: illegal event %s in state %s", event, m.fsm.Current())
		return
	}
	if err := m.fsm.Event(context.Background(), event); err != nil {
		log.Printf("ai: event %s: %v", event, err)
	}
}

func (m *Machine) warnOnce(cause, msg string) {
	if m.warned == nil {
		m.warned = map[string]bool{}
	}
	if m.warned[cause] {
		return
	}
	m.warned[cause] = true
	log.Print(msg)
}
