package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source is the device layer the input systems sample each frame.
type Source interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
	IsGamepadButtonJustPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool
	GamepadAxis(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64
	JustConnectedGamepads() []ebiten.GamepadID
	IsGamepadJustDisconnected(id ebiten.GamepadID) bool
	CursorPosition() (int, int)
	Wheel() (float64, float64)
}

// EbitenSource reads the live devices through ebiten.
type EbitenSource struct{}

func (EbitenSource) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (EbitenSource) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (EbitenSource) IsGamepadButtonJustPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return inpututil.IsStandardGamepadButtonJustPressed(id, button)
}

func (EbitenSource) GamepadAxis(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, axis)
}

func (EbitenSource) JustConnectedGamepads() []ebiten.GamepadID {
	return inpututil.AppendJustConnectedGamepadIDs(nil)
}

func (EbitenSource) IsGamepadJustDisconnected(id ebiten.GamepadID) bool {
	return inpututil.IsGamepadJustDisconnected(id)
}

func (EbitenSource) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (EbitenSource) Wheel() (float64, float64) {
	return ebiten.Wheel()
}
