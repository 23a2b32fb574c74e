package actor

import (
	"testing"

	"github.com/milk9111/sanity/ability"
	"github.com/milk9111/sanity/ai"
	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/component"
	"github.com/milk9111/sanity/physics"
	"github.com/milk9111/sanity/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 0.02

type fakeBody struct {
	pos     common.Vec2
	vel     common.Vec2
	gravity float64
	enabled bool
}

func newFakeBody(x, y float64) *fakeBody {
	return &fakeBody{pos: common.V(x, y), gravity: 1, enabled: true}
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

type fakeWorld struct {
	ground    bool
	colliders []physics.Collider
}

func (w *fakeWorld) OverlapCircle(common.Vec2, float64, physics.Layer) bool { return w.ground }
func (w *fakeWorld) OverlapBox(common.Box, physics.Layer) []physics.Collider {
	return w.colliders
}
func (w *fakeWorld) Raycast(common.Vec2, common.Vec2, physics.Layer) (physics.Hit, bool) {
	return physics.Hit{}, false
}

type recorder struct {
	triggers []string
	clips    []string
}

func (r *recorder) Trigger(name string)      { r.triggers = append(r.triggers, name) }
func (r *recorder) SetBool(string, bool)     {}
func (r *recorder) SetFloat(string, float64) {}
func (r *recorder) Play(clip string, _ common.Vec2, _ float64, _ float64) {
	r.clips = append(r.clips, clip)
}

func TestPlayerJumpFromInput(t *testing.T) {
	world := &fakeWorld{ground: true}
	body := newFakeBody(0, 0.5)
	rec := &recorder{}
	c := New(PlayerConfig(), body, world, nil, nil)
	c.Animator = rec

	c.SetInput(component.Input{Move: 1, Jump: true})
	c.Tick(0, dt)

	assert.Equal(t, 10.0, body.vel.Y)
	assert.Equal(t, 5.0, body.vel.X)
	assert.Equal(t, ability.Jumping, c.Abilities.State())
	assert.Contains(t, rec.triggers, AnimJump)

	// presses are consumed by the tick that saw them
	world.ground = false
	c.Tick(0.2, dt)
	assert.Equal(t, 1, c.Abilities.JumpsLeft())
}

func TestInputLockZeroesIntent(t *testing.T) {
	world := &fakeWorld{ground: true}
	body := newFakeBody(0, 0.5)
	c := New(PlayerConfig(), body, world, nil, nil)

	c.SetInputLocked(true)
	c.SetInput(component.Input{Move: -1, Jump: true, Dash: true})
	c.Tick(0, dt)
	assert.Equal(t, common.Vec2{}, body.vel)
	assert.Equal(t, ability.Idle, c.Abilities.State())

	c.SetInputLocked(false)
	c.SetInput(component.Input{Move: -1})
	c.Tick(dt, dt)
	assert.Equal(t, -5.0, body.vel.X)
	assert.Equal(t, -1.0, c.Facing())
}

func TestFastFall(t *testing.T) {
	world := &fakeWorld{}
	body := newFakeBody(0, 5)
	c := New(PlayerConfig(), body, world, nil, nil)

	c.SetInput(component.Input{Down: true})
	c.Tick(0, dt)
	assert.InDelta(t, -30*dt, body.vel.Y, 1e-9)

	world.ground = true
	body.vel = common.Vec2{}
	c.SetInput(component.Input{Down: true})
	c.Tick(dt, dt)
	assert.Equal(t, 0.0, body.vel.Y, "no fast fall on the ground")
}

func TestPlayerAttackDamagesAndRestores(t *testing.T) {
	world := &fakeWorld{ground: true}
	store := &prefs.Memory{}
	player := New(PlayerConfig(), newFakeBody(0, 0.5), world, nil, store)
	player.Resource.Set(50)

	enemy := New(WalkerConfig(), newFakeBody(1, 0.5), world, nil, nil)
	world.colliders = []physics.Collider{{Owner: enemy, Layer: physics.LayerEnemy}, {Owner: player, Layer: physics.LayerPlayer}}

	player.SetInput(component.Input{Attack: true, Up: true})
	player.Tick(0, dt)

	assert.Equal(t, 4, enemy.CurrentResource())
	assert.Equal(t, 51, player.CurrentResource())
	assert.Equal(t, 51, store.GetInt(SanityKey, 0))
	assert.Equal(t, ability.Attacking, player.Abilities.State())
	assert.True(t, player.Abilities.ActionLocked(0.1))
}

func TestPlayerAttackDuringLockIsIgnored(t *testing.T) {
	world := &fakeWorld{ground: true}
	player := New(PlayerConfig(), newFakeBody(0, 0.5), world, nil, nil)
	enemy := New(WalkerConfig(), newFakeBody(1, 0.5), world, nil, nil)
	world.colliders = []physics.Collider{{Owner: enemy}}

	player.SetInput(component.Input{Jump: true})
	player.Tick(0, dt)
	player.SetInput(component.Input{Attack: true})
	player.Tick(dt, dt)
	assert.Equal(t, 5, enemy.CurrentResource())
}

func newWalker(t *testing.T, world *fakeWorld, player *Controller) (*Controller, *recorder) {
	t.Helper()
	cfg := WalkerConfig()
	cfg.Clips = Clips{AttackHit: "hit", AttackMiss: "miss"}
	enemy := New(cfg, newFakeBody(0, 0.5), world, nil, nil)
	m := ai.NewMachine(ai.WalkerDetection(), enemy.Position(), ai.LocatorFunc(func() (ai.Target, bool) {
		return ai.Target{Position: player.Position(), Receiver: player}, true
	}))
	enemy.AttachAI(m)
	rec := &recorder{}
	enemy.Audio = rec
	return enemy, rec
}

func TestInputLockHoldsWalker(t *testing.T) {
	world := &fakeWorld{ground: true}
	player := New(PlayerConfig(), newFakeBody(5, 0.5), world, nil, nil)
	enemy, _ := newWalker(t, world, player)
	body := enemy.Body().(*fakeBody)

	enemy.SetInputLocked(true)
	enemy.Tick(0, dt)
	assert.Equal(t, ai.Chasing, enemy.AI.Mode())
	assert.Zero(t, body.vel.X)

	enemy.SetInputLocked(false)
	enemy.Tick(dt, dt)
	assert.InDelta(t, 3, body.vel.X, 1e-9)
}

func TestEnemyAttackRevalidatesAfterWindup(t *testing.T) {
	cases := []struct {
		name      string
		moveTo    float64
		wantSan   int
		wantClips []string
	}{
		{"target_stays", 1, 90, []string{"hit"}},
		{"target_escapes", 3, 100, []string{"miss"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			world := &fakeWorld{ground: true}
			playerBody := newFakeBody(1, 0.5)
			player := New(PlayerConfig(), playerBody, world, nil, nil)
			enemy, rec := newWalker(t, world, player)

			enemy.Tick(0, dt)
			require.Equal(t, ai.Chasing, enemy.AI.Mode())
			assert.Equal(t, 3.0, enemy.Body().Velocity().X)

			enemy.Tick(dt, dt)
			require.Equal(t, ai.Attacking, enemy.AI.Mode())
			assert.Equal(t, 0.0, enemy.Body().Velocity().X)

			enemy.Tick(0.2, dt)
			assert.Equal(t, 100, player.CurrentResource(), "wind-up still running")

			playerBody.pos.X = tc.moveTo
			enemy.Tick(0.3, dt)
			assert.Equal(t, tc.wantSan, player.CurrentResource())
			assert.Equal(t, tc.wantClips, rec.clips)
			assert.Equal(t, ability.Attacking, enemy.Abilities.State(), "the swing completes either way")
		})
	}
}

func TestEnemyReturnsAndSnapsToSpawn(t *testing.T) {
	world := &fakeWorld{ground: true}
	playerBody := newFakeBody(5, 0.5)
	player := New(PlayerConfig(), playerBody, world, nil, nil)
	enemy, _ := newWalker(t, world, player)

	enemy.Tick(0, dt)
	require.Equal(t, ai.Chasing, enemy.AI.Mode())

	playerBody.pos.X = 40
	enemy.Body().SetPosition(common.V(2, 0.5))
	enemy.Tick(dt, dt)
	assert.Equal(t, ai.Returning, enemy.AI.Mode())
	assert.Equal(t, -3.0, enemy.Body().Velocity().X)

	enemy.Body().SetPosition(common.V(0.03, 0.5))
	enemy.Tick(2*dt, dt)
	assert.Equal(t, ai.Idle, enemy.AI.Mode())
	assert.Equal(t, 0.0, enemy.Position().X)
	assert.Equal(t, 0.0, enemy.Body().Velocity().X)
}

func TestDepletionFiresOnce(t *testing.T) {
	c := New(PlayerConfig(), newFakeBody(0, 0), &fakeWorld{}, nil, nil)
	calls := 0
	c.OnDepleted = func() { calls++ }

	c.Advance(1)
	c.Resource.Set(10)
	assert.True(t, c.TakeDamage(component.Hit{Amount: 15}))
	assert.Equal(t, 0, c.CurrentResource())
	c.Advance(1.5)
	c.TakeDamage(component.Hit{Amount: 5})
	assert.Equal(t, 1, calls)
	assert.False(t, c.Dead(), "the player survives depletion")

	c.Resource.Restore(20)
	c.Advance(2)
	assert.True(t, c.TakeDamage(component.Hit{Amount: 20}))
	assert.Equal(t, 2, calls)
}

func TestPlayerInvulnerabilityWindow(t *testing.T) {
	c := New(PlayerConfig(), newFakeBody(0, 0), &fakeWorld{}, nil, nil)
	c.Resource.Set(40)

	c.Advance(1)
	assert.True(t, c.TakeDamage(component.Hit{Amount: 15}))
	assert.False(t, c.TakeDamage(component.Hit{Amount: 15}), "second hit in the same step")
	assert.Equal(t, 25, c.CurrentResource())

	c.Advance(1.1)
	assert.False(t, c.TakeDamage(component.Hit{Amount: 15}))

	c.Advance(1.2)
	assert.True(t, c.TakeDamage(component.Hit{Amount: 15}))
	assert.Equal(t, 10, c.CurrentResource())
}

func TestEnemyDeathStopsTicking(t *testing.T) {
	world := &fakeWorld{ground: true}
	body := newFakeBody(0, 0.5)
	enemy := New(WalkerConfig(), body, world, nil, nil)
	enemy.Advance(1)

	enemy.TakeDamage(component.Hit{Amount: 99, Source: common.V(-1, 0.5), HasSource: true})
	require.True(t, enemy.Dead())
	assert.False(t, body.CollisionEnabled())
	at, ok := enemy.Receiver.DestroyAt()
	require.True(t, ok)
	assert.InDelta(t, 1.08, at, 1e-9)

	body.vel = common.Vec2{}
	enemy.Tick(1.02, dt)
	assert.Equal(t, common.Vec2{}, body.vel)
}

func TestHubRules(t *testing.T) {
	store := &prefs.Memory{}
	c := New(PlayerConfig(), newFakeBody(0, 0), &fakeWorld{}, nil, store)
	hub := DefaultHubRules(store)

	c.Resource.Set(90)
	hub.Enter(c)
	assert.Equal(t, 50, c.CurrentResource())
	assert.Equal(t, 1, store.GetInt(HubVisitedKey, 0))
	assert.Equal(t, ability.NoGates(), c.Abilities.Gates())

	hub.Leave(c)
	assert.Equal(t, ability.AllGates(), c.Abilities.Gates())

	c.Resource.Set(60)
	hub.Enter(c)
	assert.Equal(t, 90, c.CurrentResource())

	c.Resource.Set(95)
	hub.Enter(c)
	assert.Equal(t, 100, c.CurrentResource(), "restore clamps at max")
}

func TestHubEntryCancelsDash(t *testing.T) {
	body := newFakeBody(0, 0.5)
	c := New(PlayerConfig(), body, &fakeWorld{ground: true}, nil, prefs.NewMemory())

	c.SetInput(component.Input{Move: 1, Dash: true})
	c.Tick(0, dt)
	require.Equal(t, ability.Dashing, c.Abilities.State())
	require.Zero(t, body.GravityScale())

	DefaultHubRules(nil).Enter(c)
	assert.Equal(t, ability.Idle, c.Abilities.State())
	assert.Equal(t, 1.0, body.GravityScale())
}

func TestEnemyDeathCancelsSwing(t *testing.T) {
	world := &fakeWorld{ground: true}
	player := New(PlayerConfig(), newFakeBody(1, 0.5), world, nil, nil)
	enemy, _ := newWalker(t, world, player)

	enemy.Tick(0, dt)
	enemy.Tick(dt, dt)
	require.Equal(t, ability.Attacking, enemy.Abilities.State())

	require.True(t, enemy.TakeDamage(component.Hit{Amount: 99}))
	require.True(t, enemy.Dead())
	assert.Equal(t, ability.Idle, enemy.Abilities.State())

	enemy.Tick(0.3, dt)
	assert.Equal(t, 100, player.CurrentResource(), "a dead enemy never lands its wind-up")
}

func TestResourcePersistsAcrossControllers(t *testing.T) {
	store := &prefs.Memory{}
	a := New(PlayerConfig(), newFakeBody(0, 0), &fakeWorld{}, nil, store)
	a.Resource.Set(42)

	b := New(PlayerConfig(), newFakeBody(0, 0), &fakeWorld{}, nil, store)
	assert.Equal(t, 42, b.CurrentResource())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestPlayerLandsInSpace(t *testing.T) {
	space := physics.NewSpace(physics.DefaultGravity)
	space.AddStaticBox(common.Box{Center: common.V(0, -0.5), Size: common.V(20, 1)}, physics.LayerGround, nil)
	rb := space.AddBody(physics.BodyDef{
		Position:     common.V(0, 2),
		Size:         common.V(1, 1),
		Mass:         1,
		GravityScale: 3,
		Layer:        physics.LayerPlayer,
		CollidesWith: physics.LayerGround | physics.LayerEnemy,
	})
	c := New(PlayerConfig(), rb, space, nil, nil)
	space.SetOwner(rb, c)

	now := 0.0
	step := 1.0 / 60.0
	for i := 0; i < 120; i++ {
		c.Tick(now, step)
		space.Step(step)
		now += step
	}
	require.True(t, c.Grounded())

	c.SetInput(component.Input{Jump: true})
	c.Tick(now, step)
	assert.InDelta(t, 10, rb.Velocity().Y, 1e-9)
	space.Step(step)
	assert.Greater(t, rb.Position().Y, 0.5)
}
