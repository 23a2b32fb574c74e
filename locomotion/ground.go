package locomotion

import (
	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/physics"
)

// GroundSensor is a circle overlap at the actor's feet.
type GroundSensor struct {
	Radius float64
	Offset common.Vec2
	Mask   physics.Layer

	grounded bool
}

func NewGroundSensor(radius float64, offset common.Vec2, mask physics.Layer) *GroundSensor {
	if radius <= 0 {
		radius = 0.1
	}
	if mask == physics.LayerNone {
		mask = physics.LayerGround
	}
	return &GroundSensor{Radius: radius, Offset: offset, Mask: mask}
}

// Check samples the ground at feet+Offset. landed is true only on the
// airborne to grounded transition. A nil querier reads as airborne.
func (g *GroundSensor) Check(q physics.Querier, feet common.Vec2) (grounded, landed bool) {
	if g == nil {
		return false, false
	}
	was := g.grounded
	g.grounded = q != nil && q.OverlapCircle(feet.Add(g.Offset), g.Radius, g.Mask)
	return g.grounded, g.grounded && !was
}

func (g *GroundSensor) Grounded() bool {
	return g != nil && g.grounded
}
