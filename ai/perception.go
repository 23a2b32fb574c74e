package ai

import (
	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/component"
	"github.com/milk9111/sanity/physics"
)

// Target is what a locator reports about the actor being hunted.
type Target struct {
	Position common.Vec2
	Receiver component.Damageable
}

// TargetLocator finds the current target. It is asked on every update.
type TargetLocator interface {
	Locate() (Target, bool)
}

type LocatorFunc func() (Target, bool)

func (f LocatorFunc) Locate() (Target, bool) {
	if f == nil {
		return Target{}, false
	}
	return f()
}

// Perception is what the owning actor knows about itself this step.
type Perception struct {
	Self     common.Vec2
	Grounded bool
	Querier  physics.Querier

	// AttackReady and HopReady mean the scheduler would accept the start.
	AttackReady bool
	HopReady    bool
	// Busy means an ability is still running.
	Busy bool
}

type Behavior int

const (
	Hold Behavior = iota
	Chase
	Return
	Attack
	Hop
)

func (b Behavior) String() string {
	switch b {
	case Chase:
		return "chase"
	case Return:
		return "return"
	case Attack:
		return "attack"
	case Hop:
		return "hop"
	default:
		return "hold"
	}
}

// Decision is the movement and ability request for one step.
type Decision struct {
	Behavior  Behavior
	MoveDir   float64
	Speed     float64
	Target    Target
	HasTarget bool

	// Snap asks the controller to place x at SnapX and stop.
	Snap  bool
	SnapX float64
}
