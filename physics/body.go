package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sanity/common"
)

// Body is the slice of a rigid body the actor core drives.
type Body interface {
	Position() common.Vec2
	SetPosition(p common.Vec2)
	Velocity() common.Vec2
	SetVelocity(v common.Vec2)
	ApplyImpulse(impulse common.Vec2)
	GravityScale() float64
	SetGravityScale(scale float64)
	SetCollisionEnabled(enabled bool)
	CollisionEnabled() bool
}

// BodyDef describes a dynamic box body.
type BodyDef struct {
	Position     common.Vec2
	Size         common.Vec2
	Mass         float64
	GravityScale float64
	Layer        Layer
	CollidesWith Layer
	Owner        any
}

// RigidBody is a rotation-locked cp body with a single box shape.
type RigidBody struct {
	space        *Space
	body         *cp.Body
	shape        *cp.Shape
	size         common.Vec2
	layer        Layer
	collidesWith Layer
	gravityScale float64
	enabled      bool
}

var _ Body = (*RigidBody)(nil)

func (rb *RigidBody) Position() common.Vec2 {
	if rb == nil || rb.body == nil {
		return common.Vec2{}
	}
	return fromCP(rb.body.Position())
}

func (rb *RigidBody) SetPosition(p common.Vec2) {
	if rb == nil || rb.body == nil {
		return
	}
	rb.body.SetPosition(toCP(p))
	rb.space.reinsert(rb)
}

func (rb *RigidBody) Velocity() common.Vec2 {
	if rb == nil || rb.body == nil {
		return common.Vec2{}
	}
	return fromCP(rb.body.Velocity())
}

func (rb *RigidBody) SetVelocity(v common.Vec2) {
	if rb == nil || rb.body == nil {
		return
	}
	rb.body.SetVelocity(v.X, v.Y)
}

// ApplyImpulse changes velocity by impulse/mass at the center of mass.
func (rb *RigidBody) ApplyImpulse(impulse common.Vec2) {
	if rb == nil || rb.body == nil {
		return
	}
	rb.body.ApplyImpulseAtWorldPoint(toCP(impulse), rb.body.Position())
}

func (rb *RigidBody) GravityScale() float64 {
	if rb == nil {
		return 0
	}
	return rb.gravityScale
}

func (rb *RigidBody) SetGravityScale(scale float64) {
	if rb == nil {
		return
	}
	rb.gravityScale = scale
}

// SetCollisionEnabled clears the shape filter so the body neither collides
// nor shows up in queries.
func (rb *RigidBody) SetCollisionEnabled(enabled bool) {
	if rb == nil || rb.shape == nil || rb.enabled == enabled {
		return
	}
	rb.enabled = enabled
	if enabled {
		rb.shape.SetFilter(shapeFilter(rb.layer, rb.collidesWith))
		return
	}
	rb.shape.SetFilter(shapeFilter(LayerNone, LayerNone))
}

func (rb *RigidBody) CollisionEnabled() bool {
	return rb != nil && rb.enabled
}

func (rb *RigidBody) Size() common.Vec2 {
	if rb == nil {
		return common.Vec2{}
	}
	return rb.size
}

func (rb *RigidBody) Bounds() common.Box {
	return common.Box{Center: rb.Position(), Size: rb.Size()}
}

func (rb *RigidBody) Layer() Layer {
	if rb == nil {
		return LayerNone
	}
	return rb.layer
}

func (rb *RigidBody) updateVelocity(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
	cp.BodyUpdateVelocity(body, gravity.Mult(rb.gravityScale), damping, dt)
}

func toCP(v common.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) common.Vec2 {
	return common.Vec2{X: v.X, Y: v.Y}
}
