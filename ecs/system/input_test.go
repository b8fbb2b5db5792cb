package system

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dungeon/config"
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
	"github.com/milk9111/dungeon/input"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeSource struct {
	held        map[ebiten.Key]bool
	justPressed map[ebiten.Key]bool
	buttons     map[ebiten.StandardGamepadButton]bool
	axes        map[ebiten.StandardGamepadAxis]float64

	connected    []ebiten.GamepadID
	disconnected map[ebiten.GamepadID]bool

	cursorX, cursorY int
	wheelY           float64
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		held:         make(map[ebiten.Key]bool),
		justPressed:  make(map[ebiten.Key]bool),
		buttons:      make(map[ebiten.StandardGamepadButton]bool),
		axes:         make(map[ebiten.StandardGamepadAxis]float64),
		disconnected: make(map[ebiten.GamepadID]bool),
	}
}

func (f *fakeSource) IsKeyPressed(key ebiten.Key) bool     { return f.held[key] }
func (f *fakeSource) IsKeyJustPressed(key ebiten.Key) bool { return f.justPressed[key] }

func (f *fakeSource) IsGamepadButtonJustPressed(_ ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return f.buttons[button]
}

func (f *fakeSource) GamepadAxis(_ ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	return f.axes[axis]
}

func (f *fakeSource) JustConnectedGamepads() []ebiten.GamepadID { return f.connected }

func (f *fakeSource) IsGamepadJustDisconnected(id ebiten.GamepadID) bool {
	return f.disconnected[id]
}

func (f *fakeSource) CursorPosition() (int, int) { return f.cursorX, f.cursorY }
func (f *fakeSource) Wheel() (float64, float64) { return 0, f.wheelY }

// reset clears the edge-triggered state between frames.
func (f *fakeSource) reset() {
	clear(f.justPressed)
	clear(f.buttons)
	clear(f.disconnected)
	f.connected = nil
	f.wheelY = 0
}

func newInputWorld(t *testing.T) (*ecs.World, *component.Input) {
	t.Helper()
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	in := &component.Input{}
	mustAdd(t, ecs.Add(w, e, component.InputComponent.Kind(), in))
	return w, in
}

func TestInputSystemKeyboard(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name     string
		held     []ebiten.Key
		pressed  []ebiten.Key
		wheel    float64
		moveX    float64
		moveY    float64
		interact bool
		scroll   int
	}{
		{name: "idle"},
		{name: "up_left", held: []ebiten.Key{ebiten.KeyW, ebiten.KeyA}, moveX: -1, moveY: -1},
		{name: "opposites_cancel", held: []ebiten.Key{ebiten.KeyA, ebiten.KeyD}, moveX: 0},
		{name: "interact_edge", pressed: []ebiten.Key{ebiten.KeyE}, interact: true},
		{name: "held_interact_is_not_an_edge", held: []ebiten.Key{ebiten.KeyE}},
		{name: "page_up", pressed: []ebiten.Key{ebiten.KeyPageUp}, scroll: -1},
		{name: "wheel_down", wheel: -1, scroll: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, in := newInputWorld(t)
			src := newFakeSource()
			for _, k := range tc.held {
				src.held[k] = true
			}
			for _, k := range tc.pressed {
				src.justPressed[k] = true
			}
			src.wheelY = tc.wheel

			NewInputSystem(src, &input.GamepadBinding{}, cfg.Keys, cfg.Gamepad).Update(w)

			if in.MoveX != tc.moveX || in.MoveY != tc.moveY {
				t.Fatalf("move = (%v,%v), want (%v,%v)", in.MoveX, in.MoveY, tc.moveX, tc.moveY)
			}
			if in.InteractPressed != tc.interact {
				t.Fatalf("interact = %v, want %v", in.InteractPressed, tc.interact)
			}
			if in.LogScroll != tc.scroll {
				t.Fatalf("scroll = %d, want %d", in.LogScroll, tc.scroll)
			}
		})
	}
}

func TestInputSystemGamepad(t *testing.T) {
	cfg := config.Default()
	w, in := newInputWorld(t)
	src := newFakeSource()
	binding := &input.GamepadBinding{}
	sys := NewInputSystem(src, binding, cfg.Keys, cfg.Gamepad)

	// Unbound pads are ignored.
	src.buttons[ebiten.StandardGamepadButtonRightBottom] = true
	src.axes[ebiten.StandardGamepadAxisLeftStickHorizontal] = 1
	sys.Update(w)
	if in.InteractPressed || in.MoveX != 0 {
		t.Fatalf("unbound gamepad produced input: %+v", in)
	}

	binding.Apply(input.GamepadEvent{Kind: input.GamepadConnected, ID: 3})
	sys.Update(w)
	if !in.InteractPressed {
		t.Fatal("bound gamepad button should interact")
	}
	if in.MoveX != 1 {
		t.Fatalf("moveX = %v, want 1", in.MoveX)
	}

	// Inside the deadzone the stick is ignored.
	src.reset()
	src.axes[ebiten.StandardGamepadAxisLeftStickHorizontal] = cfg.Gamepad.Deadzone / 2
	src.axes[ebiten.StandardGamepadAxisRightStickVertical] = -0.9
	sys.Update(w)
	if in.MoveX != 0 || in.InteractPressed {
		t.Fatalf("expected no movement and no interact, got %+v", in)
	}
	if in.AimY != -0.9 {
		t.Fatalf("aimY = %v, want -0.9", in.AimY)
	}
}

func TestInputSystemCursorMoved(t *testing.T) {
	cfg := config.Default()
	w, in := newInputWorld(t)
	src := newFakeSource()
	sys := NewInputSystem(src, nil, cfg.Keys, cfg.Gamepad)

	sys.Update(w)
	if !in.CursorMoved {
		t.Fatal("first sample counts as a move")
	}
	sys.Update(w)
	if in.CursorMoved {
		t.Fatal("cursor did not move")
	}
	src.cursorX, src.cursorY = 10, 20
	sys.Update(w)
	if !in.CursorMoved || in.CursorX != 10 || in.CursorY != 20 {
		t.Fatalf("cursor = %+v", in)
	}
}

func TestGamepadSystemHotPlug(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	w := ecs.NewWorld()
	src := newFakeSource()
	binding := &input.GamepadBinding{}
	sys := NewGamepadSystem(src, binding, zap.New(core))

	src.connected = []ebiten.GamepadID{1, 2}
	sys.Update(w)
	if id, ok := binding.ID(); !ok || id != 1 {
		t.Fatalf("binding = %v,%v, want 1", id, ok)
	}
	msgs := ecs.Events[ecs.LogMessage](w)
	if len(msgs) != 1 || msgs[0].Text != "Gamepad connected." {
		t.Fatalf("log messages = %+v", msgs)
	}
	ecs.EndFrame(w)

	// The second pad is ignored while the first is bound.
	src.reset()
	src.disconnected[2] = true
	sys.Update(w)
	if id, ok := binding.ID(); !ok || id != 1 {
		t.Fatalf("binding changed to %v,%v", id, ok)
	}
	ecs.EndFrame(w)

	src.reset()
	src.disconnected[1] = true
	sys.Update(w)
	if _, ok := binding.ID(); ok {
		t.Fatal("binding should be cleared")
	}
	msgs = ecs.Events[ecs.LogMessage](w)
	if len(msgs) != 1 || msgs[0].Text != "Gamepad disconnected." {
		t.Fatalf("log messages = %+v", msgs)
	}
	ecs.EndFrame(w)

	if n := logs.FilterMessage("gamepad bound").Len(); n != 1 {
		t.Fatalf("bound logged %d times", n)
	}
	if n := logs.FilterMessage("gamepad unbound").Len(); n != 1 {
		t.Fatalf("unbound logged %d times", n)
	}
}

func TestGamepadSystemHandlesEmittedEvents(t *testing.T) {
	w := ecs.NewWorld()
	binding := &input.GamepadBinding{}
	sys := NewGamepadSystem(nil, binding, nil)

	ecs.Emit(w, input.GamepadEvent{Kind: input.GamepadConnected, ID: 4})
	sys.Update(w)
	if id, ok := binding.ID(); !ok || id != 4 {
		t.Fatalf("binding = %v,%v, want 4", id, ok)
	}
}

func TestMovementSystem(t *testing.T) {
	tests := []struct {
		name      string
		moveX     float64
		moveY     float64
		wantSpeed float64
		wantXSign float64
		wantYSign float64
	}{
		{name: "still", wantSpeed: 0},
		{name: "right", moveX: 1, wantSpeed: 70, wantXSign: 1},
		{name: "diagonal", moveX: -1, moveY: 1, wantSpeed: 70, wantXSign: -1, wantYSign: 1},
		{name: "half_stick", moveY: -0.5, wantSpeed: 70, wantYSign: -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			v := &component.Velocity{}
			mustAdd(t, ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: 70}))
			mustAdd(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{MoveX: tc.moveX, MoveY: tc.moveY}))
			mustAdd(t, ecs.Add(w, e, component.VelocityComponent.Kind(), v))

			NewMovementSystem().Update(w)

			if got := math.Hypot(v.X, v.Y); math.Abs(got-tc.wantSpeed) > 1e-9 {
				t.Fatalf("speed = %v, want %v", got, tc.wantSpeed)
			}
			if sign(v.X) != tc.wantXSign || sign(v.Y) != tc.wantYSign {
				t.Fatalf("velocity = %+v", v)
			}
		})
	}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func TestReloadSystem(t *testing.T) {
	w := ecs.NewWorld()
	src := newFakeSource()
	sys := NewReloadSystem(src, ebiten.KeyF5)

	sys.Update(w)
	if _, ok := PendingReload(w); ok {
		t.Fatal("no reload without the key")
	}

	src.justPressed[ebiten.KeyF5] = true
	sys.Update(w)
	RequestReload(w, "watch")
	req, ok := PendingReload(w)
	if !ok || req.Reason != "key" {
		t.Fatalf("reload request = %+v, ok=%v", req, ok)
	}
	if n := len(ecs.Query(w, component.ReloadRequestComponent.Kind())); n != 1 {
		t.Fatalf("expected one request, got %d", n)
	}
}
