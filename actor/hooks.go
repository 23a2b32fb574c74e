package actor

import "github.com/milk9111/sanity/common"

// Animator receives fire-and-forget animation parameters.
type Animator interface {
	Trigger(name string)
	SetBool(name string, v bool)
	SetFloat(name string, v float64)
}

// Audio plays one-shot clips at a world position.
type Audio interface {
	Play(clip string, pos common.Vec2, volume, pitch float64)
}

type nopAnimator struct{}

func (nopAnimator) Trigger(string)           {}
func (nopAnimator) SetBool(string, bool)     {}
func (nopAnimator) SetFloat(string, float64) {}

type nopAudio struct{}

func (nopAudio) Play(string, common.Vec2, float64, float64) {}

// Clips names the sounds an actor plays. Empty names are skipped.
type Clips struct {
	Jump       string
	Dash       string
	Hop        string
	AttackHit  string
	AttackMiss string
}

// Animation parameter names the controller drives.
const (
	AnimJump     = "jump"
	AnimDash     = "dash"
	AnimSlide    = "slide"
	AnimAttack   = "attack"
	AnimHop      = "hop"
	AnimDie      = "die"
	AnimGrounded = "grounded"
	AnimWalking  = "walking"
	AnimFacing   = "facing_right"
	AnimYVel     = "y_vel"
)
