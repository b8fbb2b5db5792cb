package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
	"github.com/milk9111/dungeon/input"
)

// ReloadSystem requests a level reload when the reload key is pressed.
type ReloadSystem struct {
	source input.Source
	key    ebiten.Key
}

func NewReloadSystem(source input.Source, key ebiten.Key) *ReloadSystem {
	return &ReloadSystem{source: source, key: key}
}

func (s *ReloadSystem) Update(w *ecs.World) {
	if s == nil || s.source == nil || !s.source.IsKeyJustPressed(s.key) {
		return
	}
	RequestReload(w, "key")
}

// RequestReload asks the game to rebuild the world after this frame. Repeated
// requests in one frame collapse into one.
func RequestReload(w *ecs.World, reason string) {
	if _, ok := ecs.First(w, component.ReloadRequestComponent.Kind()); ok {
		return
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{Reason: reason})
}

// PendingReload returns the reload request of this frame, if any.
func PendingReload(w *ecs.World) (*component.ReloadRequest, bool) {
	e, ok := ecs.First(w, component.ReloadRequestComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.ReloadRequestComponent.Kind())
}

// ClearReload drops any pending reload request.
func ClearReload(w *ecs.World) {
	for _, e := range ecs.Query(w, component.ReloadRequestComponent.Kind()) {
		ecs.DestroyEntity(w, e)
	}
}
