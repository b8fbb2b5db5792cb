package config

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// GamepadButton is a standard gamepad button that decodes from a name.
// Both layout names ("south") and ebiten names ("RightBottom") are accepted.
type GamepadButton ebiten.StandardGamepadButton

var gamepadButtonNames = map[string]ebiten.StandardGamepadButton{
	"south":            ebiten.StandardGamepadButtonRightBottom,
	"east":             ebiten.StandardGamepadButtonRightRight,
	"west":             ebiten.StandardGamepadButtonRightLeft,
	"north":            ebiten.StandardGamepadButtonRightTop,
	"rightbottom":      ebiten.StandardGamepadButtonRightBottom,
	"rightright":       ebiten.StandardGamepadButtonRightRight,
	"rightleft":        ebiten.StandardGamepadButtonRightLeft,
	"righttop":         ebiten.StandardGamepadButtonRightTop,
	"frontbottomleft":  ebiten.StandardGamepadButtonFrontBottomLeft,
	"frontbottomright": ebiten.StandardGamepadButtonFrontBottomRight,
	"fronttopleft":     ebiten.StandardGamepadButtonFrontTopLeft,
	"fronttopright":    ebiten.StandardGamepadButtonFrontTopRight,
	"centerleft":       ebiten.StandardGamepadButtonCenterLeft,
	"centerright":      ebiten.StandardGamepadButtonCenterRight,
}

// ParseGamepadButton looks a button up by name, case-insensitively.
func ParseGamepadButton(name string) (GamepadButton, error) {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(name))
	b, ok := gamepadButtonNames[key]
	if !ok {
		return 0, fmt.Errorf("unknown gamepad button %q", name)
	}
	return GamepadButton(b), nil
}

func (b *GamepadButton) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("gamepad button must be a string")
	}
	parsed, err := ParseGamepadButton(value.Value)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Standard returns the ebiten button.
func (b GamepadButton) Standard() ebiten.StandardGamepadButton {
	return ebiten.StandardGamepadButton(b)
}
