package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/input"
	"github.com/milk9111/dungeon/locale"
	"github.com/milk9111/dungeon/logging"
	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"
)

// GamepadSystem detects gamepad hot-plugging and keeps the player's binding
// up to date. Hot-plug edges from the source are queued as GamepadEvents, so
// events emitted by other code in the same frame are handled too.
type GamepadSystem struct {
	source    input.Source
	binding   *input.GamepadBinding
	connected mapset.Set[ebiten.GamepadID]
	logger    *zap.Logger
}

func NewGamepadSystem(source input.Source, binding *input.GamepadBinding, logger *zap.Logger) *GamepadSystem {
	return &GamepadSystem{
		source:    source,
		binding:   binding,
		connected: mapset.New[ebiten.GamepadID](),
		logger:    logging.OrNop(logger),
	}
}

func (s *GamepadSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.poll(w)

	for _, evt := range ecs.Events[input.GamepadEvent](w) {
		if !s.binding.Apply(evt) {
			continue
		}
		switch evt.Kind {
		case input.GamepadConnected:
			s.logger.Info("gamepad bound", zap.Int("id", int(evt.ID)))
			logLine(w, locale.Get("Gamepad connected."))
		case input.GamepadDisconnected:
			s.logger.Info("gamepad unbound", zap.Int("id", int(evt.ID)))
			logLine(w, locale.Get("Gamepad disconnected."))
		}
	}
}

func (s *GamepadSystem) poll(w *ecs.World) {
	if s.source == nil {
		return
	}
	var gone []ebiten.GamepadID
	s.connected.Each(func(id ebiten.GamepadID) {
		if s.source.IsGamepadJustDisconnected(id) {
			gone = append(gone, id)
		}
	})
	for _, id := range gone {
		s.connected.Remove(id)
		ecs.Emit(w, input.GamepadEvent{Kind: input.GamepadDisconnected, ID: id})
	}
	for _, id := range s.source.JustConnectedGamepads() {
		s.connected.Put(id)
		ecs.Emit(w, input.GamepadEvent{Kind: input.GamepadConnected, ID: id})
	}
}
