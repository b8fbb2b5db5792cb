package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dungeon/config"
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
	"github.com/milk9111/dungeon/input"
)

type InputSystem struct {
	source  input.Source
	binding *input.GamepadBinding
	keys    config.Keybindings
	gamepad config.GamepadConfig

	cursorX, cursorY int
	cursorSeen       bool
}

func NewInputSystem(source input.Source, binding *input.GamepadBinding, keys config.Keybindings, gamepad config.GamepadConfig) *InputSystem {
	return &InputSystem{
		source:  source,
		binding: binding,
		keys:    keys,
		gamepad: gamepad,
	}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil || i.source == nil {
		return
	}
	src := i.source

	var moveX, moveY, aimX, aimY float64
	interact := src.IsKeyJustPressed(i.keys.Interact)

	if id, ok := i.binding.ID(); ok {
		lx := src.GamepadAxis(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := src.GamepadAxis(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > i.gamepad.Deadzone {
			moveX, moveY = lx, ly
		}
		rx := src.GamepadAxis(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := src.GamepadAxis(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > i.gamepad.Deadzone {
			aimX, aimY = rx, ry
		}
		interact = interact || src.IsGamepadButtonJustPressed(id, i.gamepad.Interact.Standard())
	}

	if src.IsKeyPressed(i.keys.Up) {
		moveY -= 1
	}
	if src.IsKeyPressed(i.keys.Down) {
		moveY += 1
	}
	if src.IsKeyPressed(i.keys.Left) {
		moveX -= 1
	}
	if src.IsKeyPressed(i.keys.Right) {
		moveX += 1
	}

	scroll := 0
	if src.IsKeyJustPressed(i.keys.LogScrollUp) {
		scroll--
	}
	if src.IsKeyJustPressed(i.keys.LogScrollDown) {
		scroll++
	}
	if _, wy := src.Wheel(); wy > 0 {
		scroll--
	} else if wy < 0 {
		scroll++
	}

	cx, cy := src.CursorPosition()
	moved := !i.cursorSeen || cx != i.cursorX || cy != i.cursorY
	i.cursorX, i.cursorY, i.cursorSeen = cx, cy, true

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		in.MoveX = moveX
		in.MoveY = moveY
		in.InteractPressed = interact
		in.AimX = aimX
		in.AimY = aimY
		in.CursorX = float64(cx)
		in.CursorY = float64(cy)
		in.CursorMoved = moved
		in.LogScroll = scroll
	})
}
