package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	core "github.com/milk9111/sanity/component"
	"github.com/milk9111/sanity/ecs"
)

// InputSource samples one step of player intent.
type InputSource interface {
	Sample() core.Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() core.Input

func (f InputFunc) Sample() core.Input { return f() }

// InputSystem feeds the sampled input to the player controller.
type InputSystem struct {
	Source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	if source == nil {
		source = KeyboardSource{}
	}
	return &InputSystem{Source: source}
}

func (s *InputSystem) Update(w *ecs.World) {
	if s == nil || s.Source == nil || w == nil {
		return
	}
	_, player, ok := Player(w)
	if !ok {
		return
	}
	player.Controller.SetInput(s.Source.Sample())
}

// KeyboardSource reads the keyboard and the first standard gamepad.
type KeyboardSource struct{}

func (KeyboardSource) Sample() core.Input {
	const stickDeadzone = 0.2

	in := core.Input{
		Up:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:   ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:   ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Dash:   inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyK),
		Slide:  inpututil.IsKeyJustPressed(ebiten.KeyC) || inpututil.IsKeyJustPressed(ebiten.KeyL),
		Attack: inpututil.IsKeyJustPressed(ebiten.KeyJ) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
	if in.Left {
		in.Move -= 1
	}
	if in.Right {
		in.Move += 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(x) > stickDeadzone {
			in.Move = x
			in.Left = x < 0
			in.Right = x > 0
		}
		if math.Abs(y) > stickDeadzone {
			in.Up = in.Up || y < 0
			in.Down = in.Down || y > 0
		}
		in.Jump = in.Jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.Attack = in.Attack || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		in.Dash = in.Dash || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		in.Slide = in.Slide || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
	}
	return in
}
