package combat

import (
	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/component"
	"github.com/milk9111/sanity/physics"
)

// HitQuery is the box one swing sweeps. It is built per resolution.
type HitQuery struct {
	Origin    common.Vec2
	Direction component.Direction
	Reach     float64
	Size      common.Vec2
	Mask      physics.Layer
}

// Box is Size centered Reach units from Origin along Direction.
func (q HitQuery) Box() common.Box {
	return common.Box{
		Center: q.Origin.Add(q.Direction.Vector().Scale(q.Reach)),
		Size:   q.Size,
	}
}
