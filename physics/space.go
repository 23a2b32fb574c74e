package physics

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sanity/common"
)

// DefaultGravity is the world gravity in units/s², y up.
var DefaultGravity = common.Vec2{X: 0, Y: -9.81}

// Collider is one query result.
type Collider struct {
	Owner  any
	Layer  Layer
	Bounds common.Box
}

// Hit is the first blocking shape along a ray.
type Hit struct {
	Point    common.Vec2
	Normal   common.Vec2
	Fraction float64
	Owner    any
}

// Querier answers the spatial questions the actor core asks.
type Querier interface {
	OverlapCircle(center common.Vec2, radius float64, mask Layer) bool
	OverlapBox(box common.Box, mask Layer) []Collider
	Raycast(from, to common.Vec2, mask Layer) (Hit, bool)
}

type shapeInfo struct {
	layer Layer
	owner any
}

// Space owns the Chipmunk space plus the layer/owner data of its shapes.
type Space struct {
	space  *cp.Space
	shapes map[*cp.Shape]shapeInfo
}

var _ Querier = (*Space)(nil)

func NewSpace(gravity common.Vec2) *Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(toCP(gravity))
	return &Space{
		space:  space,
		shapes: make(map[*cp.Shape]shapeInfo),
	}
}

// AddStaticBox adds level geometry.
func (s *Space) AddStaticBox(box common.Box, layer Layer, owner any) {
	if s == nil || s.space == nil {
		return
	}
	lo, hi := box.Min(), box.Max()
	shape := cp.NewBox2(s.space.StaticBody, cp.BB{L: lo.X, B: lo.Y, R: hi.X, T: hi.Y}, 0)
	shape.SetFriction(1)
	shape.SetFilter(shapeFilter(layer, LayerAll))
	shape.UserData = owner
	s.space.AddShape(shape)
	s.shapes[shape] = shapeInfo{layer: layer, owner: owner}
}

// AddBody creates a dynamic, rotation-locked box body.
func (s *Space) AddBody(def BodyDef) *RigidBody {
	if s == nil || s.space == nil {
		return nil
	}
	mass := def.Mass
	if mass <= 0 {
		mass = 1
	}
	size := def.Size
	if size.X <= 0 || size.Y <= 0 {
		size = common.Vec2{X: 1, Y: 1}
	}
	collidesWith := def.CollidesWith
	if collidesWith == LayerNone {
		collidesWith = LayerGround
	}

	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(toCP(def.Position))
	shape := cp.NewBox(body, size.X, size.Y, 0)
	shape.SetFriction(0)
	shape.SetFilter(shapeFilter(def.Layer, collidesWith))
	shape.UserData = def.Owner

	rb := &RigidBody{
		space:        s,
		body:         body,
		shape:        shape,
		size:         size,
		layer:        def.Layer,
		collidesWith: collidesWith,
		gravityScale: def.GravityScale,
		enabled:      true,
	}
	body.UserData = rb
	body.SetVelocityUpdateFunc(rb.updateVelocity)

	s.space.AddBody(body)
	s.space.AddShape(shape)
	s.shapes[shape] = shapeInfo{layer: def.Layer, owner: def.Owner}
	return rb
}

// SetOwner rebinds the query owner of a body after construction.
func (s *Space) SetOwner(rb *RigidBody, owner any) {
	if s == nil || rb == nil || rb.shape == nil {
		return
	}
	rb.shape.UserData = owner
	info := s.shapes[rb.shape]
	info.owner = owner
	s.shapes[rb.shape] = info
}

func (s *Space) RemoveBody(rb *RigidBody) {
	if s == nil || s.space == nil || rb == nil || rb.body == nil {
		return
	}
	if _, ok := s.shapes[rb.shape]; !ok {
		log.Printf("physics: remove unknown body")
		return
	}
	delete(s.shapes, rb.shape)
	s.space.RemoveShape(rb.shape)
	s.space.RemoveBody(rb.body)
	rb.space = nil
}

// reinsert puts a teleported body's shape back into the spatial index so
// queries see the new position before the next step.
func (s *Space) reinsert(rb *RigidBody) {
	if s == nil || s.space == nil || rb == nil || rb.shape == nil {
		return
	}
	if _, ok := s.shapes[rb.shape]; !ok {
		return
	}
	s.space.RemoveShape(rb.shape)
	s.space.AddShape(rb.shape)
}

func (s *Space) Step(dt float64) {
	if s == nil || s.space == nil || dt <= 0 {
		return
	}
	s.space.Step(dt)
}

func (s *Space) OverlapCircle(center common.Vec2, radius float64, mask Layer) bool {
	if s == nil || s.space == nil {
		return false
	}
	bb := cp.BB{L: center.X - radius, B: center.Y - radius, R: center.X + radius, T: center.Y + radius}
	found := false
	s.space.BBQuery(bb, queryFilter(mask), func(shape *cp.Shape, _ interface{}) {
		if found {
			return
		}
		if boxFromBB(shape.BB()).IntersectsCircle(center, radius) {
			found = true
		}
	}, nil)
	return found
}

func (s *Space) OverlapBox(box common.Box, mask Layer) []Collider {
	if s == nil || s.space == nil {
		return nil
	}
	lo, hi := box.Min(), box.Max()
	var out []Collider
	s.space.BBQuery(cp.BB{L: lo.X, B: lo.Y, R: hi.X, T: hi.Y}, queryFilter(mask), func(shape *cp.Shape, _ interface{}) {
		info, ok := s.shapes[shape]
		if !ok {
			return
		}
		out = append(out, Collider{Owner: info.owner, Layer: info.layer, Bounds: boxFromBB(shape.BB())})
	}, nil)
	return out
}

func (s *Space) Raycast(from, to common.Vec2, mask Layer) (Hit, bool) {
	if s == nil || s.space == nil {
		return Hit{}, false
	}
	info := s.space.SegmentQueryFirst(toCP(from), toCP(to), 0, queryFilter(mask))
	if info.Shape == nil {
		return Hit{}, false
	}
	return Hit{
		Point:    fromCP(info.Point),
		Normal:   fromCP(info.Normal),
		Fraction: info.Alpha,
		Owner:    s.shapes[info.Shape].owner,
	}, true
}

func boxFromBB(bb cp.BB) common.Box {
	return common.Box{
		Center: common.Vec2{X: (bb.L + bb.R) / 2, Y: (bb.B + bb.T) / 2},
		Size:   common.Vec2{X: bb.R - bb.L, Y: bb.T - bb.B},
	}
}
