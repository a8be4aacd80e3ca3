package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/gunhands/ecs"
	"github.com/milk9111/gunhands/ecs/component"
)

// InputSystem samples the hardware once per tick into Input components.
// Left/right mouse buttons drive the left/right hand triggers; swap is
// Q/E while Shift is held; drops are Z/X.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	const stickDeadzone = 0.2

	fireLeft := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	fireRight := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	swapModifier := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	swapLeft := inpututil.IsKeyJustPressed(ebiten.KeyQ)
	swapRight := inpututil.IsKeyJustPressed(ebiten.KeyE)
	dropLeft := inpututil.IsKeyJustPressed(ebiten.KeyZ)
	dropRight := inpututil.IsKeyJustPressed(ebiten.KeyX)
	pause := inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	mx, my := ebiten.CursorPosition()
	aimX := float64(mx)
	aimY := float64(my)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]

		fireLeft = fireLeft || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopLeft)
		fireRight = fireRight || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopRight)
		swapModifier = swapModifier || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		swapLeft = swapLeft || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		swapRight = swapRight || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftRight)
		pause = pause || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			aimX = rx
			aimY = ry
		}
	}

	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, input *component.Input) {
		input.FireLeftHeld = fireLeft
		input.FireRightHeld = fireRight
		input.SwapModifierHeld = swapModifier
		input.SwapLeftPressed = swapLeft
		input.SwapRightPressed = swapRight
		input.DropLeftPressed = dropLeft
		input.DropRightPressed = dropRight
		input.PausePressed = pause
		input.AimX = aimX
		input.AimY = aimY
	})
}
