package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Keys.Interact != ebiten.KeyE {
		t.Fatalf("default interact key = %v, want E", cfg.Keys.Interact)
	}
	if cfg.Gamepad.Interact.Standard() != ebiten.StandardGamepadButtonRightBottom {
		t.Fatalf("default gamepad interact = %v", cfg.Gamepad.Interact)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		check   func(t *testing.T, cfg Config)
		wantErr string
	}{
		{
			name: "partial_keeps_defaults",
			yaml: "level: test.json\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Level != "test.json" {
					t.Fatalf("level = %q", cfg.Level)
				}
				if cfg.Player.MoveSpeed != 70 {
					t.Fatalf("move speed = %v, want default 70", cfg.Player.MoveSpeed)
				}
			},
		},
		{
			name: "gamepad_button_by_layout_name",
			yaml: "gamepad:\n  interact: East\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Gamepad.Interact.Standard() != ebiten.StandardGamepadButtonRightRight {
					t.Fatalf("interact = %v", cfg.Gamepad.Interact)
				}
			},
		},
		{
			name: "logging_section",
			yaml: "logging:\n  level: debug\n  format: json\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
					t.Fatalf("logging = %+v", cfg.Logging)
				}
			},
		},
		{
			name:    "unknown_gamepad_button",
			yaml:    "gamepad:\n  interact: turbo\n",
			wantErr: "unknown gamepad button",
		},
		{
			name:    "non_positive_speed",
			yaml:    "player:\n  move_speed: 0\n",
			wantErr: "move_speed",
		},
		{
			name:    "bad_log_size",
			yaml:    "game_log:\n  visible: -1\n",
			wantErr: "game_log",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.yaml))
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("err = %v, want containing %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			tc.check(t, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty_path_defaults", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Level != Default().Level {
			t.Fatalf("level = %q", cfg.Level)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "game.yaml")
		if err := os.WriteFile(path, []byte("camera:\n  zoom: 2\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Camera.Zoom != 2 {
			t.Fatalf("zoom = %v", cfg.Camera.Zoom)
		}
	})

	t.Run("missing_file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}

func TestParseGamepadButton(t *testing.T) {
	for _, name := range []string{"south", "South", "right_bottom", "RightBottom"} {
		b, err := ParseGamepadButton(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if b.Standard() != ebiten.StandardGamepadButtonRightBottom {
			t.Fatalf("%s: got %v", name, b)
		}
	}
}
