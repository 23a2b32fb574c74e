package ability

import "github.com/milk9111/sanity/common"

// fakeBody is a unit-mass body with no integration of its own.
type fakeBody struct {
	pos     common.Vec2
	vel     common.Vec2
	gravity float64
	enabled bool
}

func newFakeBody(gravity float64) *fakeBody {
	return &fakeBody{gravity: gravity, enabled: true}
}

func (b *fakeBody) Position() common.Vec2       { return b.pos }
func (b *fakeBody) SetPosition(p common.Vec2)   { b.pos = p }
func (b *fakeBody) Velocity() common.Vec2       { return b.vel }
func (b *fakeBody) SetVelocity(v common.Vec2)   { b.vel = v }
func (b *fakeBody) ApplyImpulse(i common.Vec2)  { b.vel = b.vel.Add(i) }
func (b *fakeBody) GravityScale() float64       { return b.gravity }
func (b *fakeBody) SetGravityScale(g float64)   { b.gravity = g }
func (b *fakeBody) SetCollisionEnabled(on bool) { b.enabled = on }
func (b *fakeBody) CollisionEnabled() bool      { return b.enabled }
