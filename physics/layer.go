package physics

import "github.com/jakecoffman/cp"

// Layer is a collision category bitmask.
type Layer uint32

const (
	LayerGround Layer = 1 << iota
	LayerPlayer
	LayerEnemy
	LayerHazard

	LayerNone Layer = 0
	LayerAll  Layer = ^Layer(0)
)

func (l Layer) Has(other Layer) bool {
	return l&other != 0
}

func shapeFilter(categories, mask Layer) cp.ShapeFilter {
	return cp.ShapeFilter{Categories: uint(categories), Mask: uint(mask)}
}

// queryFilter matches every shape whose category is in mask.
func queryFilter(mask Layer) cp.ShapeFilter {
	return shapeFilter(LayerAll, mask)
}
