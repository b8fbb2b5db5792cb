package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dungeon/logging"
	"gopkg.in/yaml.v3"
)

// Config is the game's runtime configuration. Every field has a default, so
// an absent or partial config file is valid.
type Config struct {
	Window  WindowConfig   `yaml:"window"`
	Level   string         `yaml:"level"`
	Keys    Keybindings    `yaml:"keys"`
	Gamepad GamepadConfig  `yaml:"gamepad"`
	Player  PlayerConfig   `yaml:"player"`
	Camera  CameraConfig   `yaml:"camera"`
	Log     GameLogConfig  `yaml:"game_log"`
	Logging logging.Config `yaml:"logging"`
	Locale  LocaleConfig   `yaml:"locale"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Keybindings use ebiten key names ("E", "ArrowUp", "PageDown").
type Keybindings struct {
	Interact      ebiten.Key `yaml:"interact"`
	Up            ebiten.Key `yaml:"up"`
	Down          ebiten.Key `yaml:"down"`
	Left          ebiten.Key `yaml:"left"`
	Right         ebiten.Key `yaml:"right"`
	LogScrollUp   ebiten.Key `yaml:"log_scroll_up"`
	LogScrollDown ebiten.Key `yaml:"log_scroll_down"`
	Reload        ebiten.Key `yaml:"reload"`
}

type GamepadConfig struct {
	Interact GamepadButton `yaml:"interact"`
	Deadzone float64       `yaml:"deadzone"`
}

type PlayerConfig struct {
	MoveSpeed float64 `yaml:"move_speed"`
}

type CameraConfig struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

type GameLogConfig struct {
	Capacity int `yaml:"capacity"`
	Visible  int `yaml:"visible"`
}

type LocaleConfig struct {
	Dir      string `yaml:"dir"`
	Language string `yaml:"language"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{Title: "dungeon", Width: 1280, Height: 720},
		Level:  "dungeon.json",
		Keys: Keybindings{
			Interact:      ebiten.KeyE,
			Up:            ebiten.KeyW,
			Down:          ebiten.KeyS,
			Left:          ebiten.KeyA,
			Right:         ebiten.KeyD,
			LogScrollUp:   ebiten.KeyPageUp,
			LogScrollDown: ebiten.KeyPageDown,
			Reload:        ebiten.KeyF5,
		},
		Gamepad: GamepadConfig{
			Interact: GamepadButton(ebiten.StandardGamepadButtonRightBottom),
			Deadzone: 0.2,
		},
		Player:  PlayerConfig{MoveSpeed: 70},
		Camera:  CameraConfig{Zoom: 1 / 0.35, Smoothness: 0.15},
		Log:     GameLogConfig{Capacity: 100, Visible: 5},
		Logging: logging.Config{Level: "info", Format: "console"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if strings.TrimSpace(c.Level) == "" {
		errs = append(errs, errors.New("level must not be empty"))
	}
	if c.Player.MoveSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player.move_speed must be positive, got %v", c.Player.MoveSpeed))
	}
	if c.Camera.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("camera.zoom must be positive, got %v", c.Camera.Zoom))
	}
	if c.Log.Capacity <= 0 || c.Log.Visible <= 0 {
		errs = append(errs, fmt.Errorf("game_log capacity and visible must be positive, got %d/%d", c.Log.Capacity, c.Log.Visible))
	}
	if c.Gamepad.Deadzone < 0 || c.Gamepad.Deadzone >= 1 {
		errs = append(errs, fmt.Errorf("gamepad.deadzone must be in [0,1), got %v", c.Gamepad.Deadzone))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w", errors.Join(errs...))
}
