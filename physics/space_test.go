package physics

import (
	"testing"

	"github.com/milk9111/sanity/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const step = 1.0 / 60.0

func newTestSpace() *Space {
	s := NewSpace(DefaultGravity)
	s.AddStaticBox(common.Box{Center: common.V(0, -0.5), Size: common.V(20, 1)}, LayerGround, "floor")
	s.AddStaticBox(common.Box{Center: common.V(5, 2), Size: common.V(1, 4)}, LayerGround, "wall")
	return s
}

func TestBodyLandsOnGround(t *testing.T) {
	s := newTestSpace()
	rb := s.AddBody(BodyDef{Position: common.V(0, 2), Size: common.V(1, 1), Mass: 1, GravityScale: 1, Layer: LayerPlayer})
	require.NotNil(t, rb)

	for i := 0; i < 180; i++ {
		s.Step(step)
	}

	assert.InDelta(t, 0.5, rb.Position().Y, 0.15)
	assert.InDelta(t, 0, rb.Velocity().Y, 0.5)
	feet := rb.Position().Sub(common.V(0, 0.5))
	assert.True(t, s.OverlapCircle(feet, 0.1, LayerGround))
	assert.False(t, s.OverlapCircle(feet.Add(common.V(0, 1)), 0.1, LayerGround))
}

func TestGravityScaleZeroFloats(t *testing.T) {
	s := newTestSpace()
	rb := s.AddBody(BodyDef{Position: common.V(0, 3), Size: common.V(1, 1), GravityScale: 0, Layer: LayerPlayer})

	for i := 0; i < 30; i++ {
		s.Step(step)
	}
	assert.InDelta(t, 3, rb.Position().Y, 1e-6)

	rb.SetGravityScale(2)
	s.Step(step)
	assert.InDelta(t, DefaultGravity.Y*2*step, rb.Velocity().Y, 1e-6)
}

func TestApplyImpulseScalesByMass(t *testing.T) {
	s := newTestSpace()
	rb := s.AddBody(BodyDef{Position: common.V(0, 3), Size: common.V(1, 1), Mass: 2, Layer: LayerEnemy})

	rb.ApplyImpulse(common.V(4, 2))
	assert.InDelta(t, 2, rb.Velocity().X, 1e-9)
	assert.InDelta(t, 1, rb.Velocity().Y, 1e-9)
}

func TestOverlapBoxReturnsOwners(t *testing.T) {
	s := newTestSpace()
	a := s.AddBody(BodyDef{Position: common.V(1, 3), Size: common.V(1, 1), Layer: LayerEnemy, Owner: "a"})
	s.AddBody(BodyDef{Position: common.V(-3, 3), Size: common.V(1, 1), Layer: LayerEnemy, Owner: "b"})
	s.AddBody(BodyDef{Position: common.V(1.2, 3), Size: common.V(1, 1), Layer: LayerPlayer, Owner: "p"})

	hits := s.OverlapBox(common.Box{Center: common.V(0.5, 3), Size: common.V(1, 0.6)}, LayerEnemy)
	require.Len(t, hits, 1)
	assert.Equal(t, "a", hits[0].Owner)
	assert.Equal(t, LayerEnemy, hits[0].Layer)

	a.SetCollisionEnabled(false)
	assert.Empty(t, s.OverlapBox(common.Box{Center: common.V(0.5, 3), Size: common.V(1, 0.6)}, LayerEnemy))
	a.SetCollisionEnabled(true)
	assert.Len(t, s.OverlapBox(common.Box{Center: common.V(0.5, 3), Size: common.V(1, 0.6)}, LayerEnemy), 1)
}

func TestSetPositionReindexesQueries(t *testing.T) {
	s := newTestSpace()
	rb := s.AddBody(BodyDef{Position: common.V(-8, 3), Size: common.V(1, 1), Layer: LayerEnemy, Owner: "moved"})

	rb.SetPosition(common.V(0, 3))
	hits := s.OverlapBox(common.Box{Center: common.V(0, 3), Size: common.V(0.5, 0.5)}, LayerEnemy)
	require.Len(t, hits, 1)
	assert.Equal(t, "moved", hits[0].Owner)
	assert.Empty(t, s.OverlapBox(common.Box{Center: common.V(-8, 3), Size: common.V(0.5, 0.5)}, LayerEnemy))

	s.Step(1.0 / 60)
	assert.InDelta(t, 0, rb.Position().X, 1e-6)
	assert.Len(t, s.OverlapBox(common.Box{Center: rb.Position(), Size: common.V(0.5, 0.5)}, LayerEnemy), 1)
}

func TestRaycast(t *testing.T) {
	s := newTestSpace()

	hit, ok := s.Raycast(common.V(0, 1), common.V(10, 1), LayerGround)
	require.True(t, ok)
	assert.Equal(t, "wall", hit.Owner)
	assert.InDelta(t, 4.5, hit.Point.X, 1e-6)

	_, ok = s.Raycast(common.V(0, 1), common.V(4, 1), LayerGround)
	assert.False(t, ok)

	_, ok = s.Raycast(common.V(0, 1), common.V(10, 1), LayerEnemy)
	assert.False(t, ok)
}

func TestRemoveBody(t *testing.T) {
	s := newTestSpace()
	rb := s.AddBody(BodyDef{Position: common.V(0, 3), Size: common.V(1, 1), Layer: LayerEnemy, Owner: "gone"})
	s.RemoveBody(rb)

	assert.Empty(t, s.OverlapBox(common.Box{Center: common.V(0, 3), Size: common.V(2, 2)}, LayerEnemy))
	s.RemoveBody(rb)
}

func TestNilSpaceIsSafe(t *testing.T) {
	var s *Space
	assert.False(t, s.OverlapCircle(common.Vec2{}, 1, LayerAll))
	assert.Nil(t, s.OverlapBox(common.Box{}, LayerAll))
	_, ok := s.Raycast(common.Vec2{}, common.V(1, 0), LayerAll)
	assert.False(t, ok)
	s.Step(step)
}
