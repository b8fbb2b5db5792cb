package input

import "github.com/hajimehoshi/ebiten/v2"

// GamepadEventKind identifies gamepad hot-plug events.
type GamepadEventKind string

const (
	GamepadConnected    GamepadEventKind = "connected"
	GamepadDisconnected GamepadEventKind = "disconnected"
)

// GamepadEvent is emitted when a gamepad is plugged in or removed.
type GamepadEvent struct {
	Kind GamepadEventKind
	ID   ebiten.GamepadID
}

// GamepadBinding tracks the single gamepad the player is using. It is owned
// by the game and handed to the systems that read input; only the gamepad
// system changes it.
type GamepadBinding struct {
	id    ebiten.GamepadID
	bound bool
}

// ID returns the bound gamepad, if any.
func (b *GamepadBinding) ID() (ebiten.GamepadID, bool) {
	if b == nil || !b.bound {
		return 0, false
	}
	return b.id, true
}

// Apply updates the binding for a hot-plug event and reports whether the
// binding changed. The first connected gamepad is kept until it disconnects.
func (b *GamepadBinding) Apply(evt GamepadEvent) bool {
	if b == nil {
		return false
	}
	switch evt.Kind {
	case GamepadConnected:
		if b.bound {
			return false
		}
		b.id = evt.ID
		b.bound = true
		return true
	case GamepadDisconnected:
		if !b.bound || b.id != evt.ID {
			return false
		}
		b.id = 0
		b.bound = false
		return true
	}
	return false
}
