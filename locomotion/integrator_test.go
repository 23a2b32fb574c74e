package locomotion

import (
	"testing"

	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/physics"
	"github.com/stretchr/testify/assert"
)

const dt = 0.02

func TestGroundedSetsVelocityDirectly(t *testing.T) {
	in := NewIntegrator(DefaultConfig())
	assert.Equal(t, 5.0, in.Step(1, true, -3, dt))
	assert.Equal(t, -2.5, in.Step(-0.5, true, 4, dt))
	assert.Equal(t, 5.0, in.Step(3, true, 0, dt), "intent is clamped")
}

func TestStepAtOverridesTopSpeed(t *testing.T) {
	in := NewIntegrator(DefaultConfig())
	assert.Equal(t, -3.0, in.StepAt(-1, 3, true, 0, dt))
	assert.InDelta(t, 2.7, in.StepAt(1, 3, false, 2.69, dt), 1e-9, "air target uses the given speed")
}

func TestAirborneAcceleration(t *testing.T) {
	in := NewIntegrator(DefaultConfig())

	cases := []struct {
		name   string
		intent float64
		vx     float64
		want   float64
	}{
		{"accelerates_toward_reduced_target", 1, 0, 20 * dt},
		{"caps_at_air_control_target", 1, 4.4, 4.5},
		{"decelerates_slowly_without_input", 0, 2, 2 - 20*0.25*dt},
		{"turns_sharply_against_velocity", -1, 2, 2 - 20*3*dt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, in.Step(tc.intent, false, tc.vx, dt), 1e-9)
		})
	}
}

func TestFacingDeadZone(t *testing.T) {
	in := NewIntegrator(DefaultConfig())
	assert.Equal(t, 1.0, in.Facing())

	assert.False(t, in.UpdateFacing(-0.005))
	assert.Equal(t, 1.0, in.Facing())

	assert.True(t, in.UpdateFacing(-0.5))
	assert.Equal(t, -1.0, in.Facing())
	assert.False(t, in.UpdateFacing(-1))
}

type fakeQuerier struct {
	ground bool
}

func (f *fakeQuerier) OverlapCircle(common.Vec2, float64, physics.Layer) bool  { return f.ground }
func (f *fakeQuerier) OverlapBox(common.Box, physics.Layer) []physics.Collider { return nil }
func (f *fakeQuerier) Raycast(common.Vec2, common.Vec2, physics.Layer) (physics.Hit, bool) {
	return physics.Hit{}, false
}

func TestGroundSensorReportsLandingOnce(t *testing.T) {
	q := &fakeQuerier{}
	g := NewGroundSensor(0, common.Vec2{}, physics.LayerNone)

	grounded, landed := g.Check(q, common.Vec2{})
	assert.False(t, grounded)
	assert.False(t, landed)

	q.ground = true
	grounded, landed = g.Check(q, common.Vec2{})
	assert.True(t, grounded)
	assert.True(t, landed)

	_, landed = g.Check(q, common.Vec2{})
	assert.False(t, landed)

	grounded, _ = g.Check(nil, common.Vec2{})
	assert.False(t, grounded, "missing querier reads as airborne")
}

func TestGroundSensorAgainstSpace(t *testing.T) {
	s := physics.NewSpace(physics.DefaultGravity)
	s.AddStaticBox(common.Box{Center: common.V(0, -0.5), Size: common.V(10, 1)}, physics.LayerGround, nil)
	g := NewGroundSensor(0.1, common.Vec2{}, physics.LayerGround)

	grounded, landed := g.Check(s, common.V(0, 0.05))
	assert.True(t, grounded)
	assert.True(t, landed)

	grounded, _ = g.Check(s, common.V(0, 0.5))
	assert.False(t, grounded)
}
