package system

import (
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
	"github.com/milk9111/dungeon/locale"
	"github.com/milk9111/dungeon/logging"
	"go.uber.org/zap"
)

const (
	defaultBlockerSize = 32.0

	promptOpen  = "[E] Open"
	promptClose = "[E] Close"
)

// DoorInteractionSystem toggles every interactable door on the interact edge.
type DoorInteractionSystem struct{}

func NewDoorInteractionSystem() *DoorInteractionSystem {
	return &DoorInteractionSystem{}
}

func (s *DoorInteractionSystem) Update(w *ecs.World) {
	in, ok := frameInput(w)
	if !ok || !in.InteractPressed {
		return
	}
	ecs.ForEach2(w, component.DoorComponent.Kind(), component.InteractableComponent.Kind(), func(_ ecs.Entity, door *component.Door, _ *component.Interactable) {
		interact(door)
	})
}

func interact(target component.Interaction) {
	target.Interact()
}

// DoorSyncSystem brings a door's sprite frame, blocking collider and the
// interaction prompt in line with its state.
type DoorSyncSystem struct {
	logger *zap.Logger
}

func NewDoorSyncSystem(logger *zap.Logger) *DoorSyncSystem {
	return &DoorSyncSystem{logger: logging.OrNop(logger)}
}

func (s *DoorSyncSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.DoorComponent.Kind(), func(e ecs.Entity, door *component.Door) {
		rt, ok := ecs.Get(w, e, component.DoorRuntimeComponent.Kind())
		if !ok {
			rt = &component.DoorRuntime{}
			if err := ecs.Add(w, e, component.DoorRuntimeComponent.Kind(), rt); err != nil {
				return
			}
		}

		changed := !rt.Observed || rt.WasOpen != door.IsOpen
		if changed {
			s.present(w, e, door, rt)
			if rt.Observed {
				s.announce(w, e, door)
			}
			rt.Observed = true
			rt.WasOpen = door.IsOpen
		}

		interactable := ecs.Has(w, e, component.InteractableComponent.Kind())
		if interactable && (changed || !rt.WasInteractable) {
			setPrompt(w, doorPrompt(door))
		}
		rt.WasInteractable = interactable
	})
}

func (s *DoorSyncSystem) present(w *ecs.World, e ecs.Entity, door *component.Door, rt *component.DoorRuntime) {
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		if door.IsOpen {
			sprite.Frame = component.DoorFrameOpen
		} else {
			sprite.Frame = component.DoorFrameClosed
		}
	}

	blockers := blockingChildren(w, e)
	if door.IsOpen {
		for _, child := range blockers {
			ecs.RemoveChild(w, e, child)
			ecs.DestroyRecursive(w, child)
		}
		return
	}
	if len(blockers) > 0 {
		return
	}
	if err := spawnBlocker(w, e, rt); err != nil {
		s.logger.Warn("door: spawn blocking collider", zap.Stringer("door", e), zap.Error(err))
	}
}

func (s *DoorSyncSystem) announce(w *ecs.World, e ecs.Entity, door *component.Door) {
	if door.IsOpen {
		logLine(w, locale.Get("The door opens."))
	} else {
		logLine(w, locale.Get("The door closes."))
	}
	s.logger.Debug("door toggled", zap.Stringer("door", e), zap.Bool("open", door.IsOpen))
}

func doorPrompt(door *component.Door) string {
	if door.IsOpen {
		return locale.Get(promptClose)
	}
	return locale.Get(promptOpen)
}

// BlockingChildren returns the solid colliders owned by a door.
func BlockingChildren(w *ecs.World, door ecs.Entity) []ecs.Entity {
	return blockingChildren(w, door)
}

func blockingChildren(w *ecs.World, door ecs.Entity) []ecs.Entity {
	var out []ecs.Entity
	for _, child := range ecs.ChildrenOf(w, door) {
		if ecs.Has(w, child, component.BlockingColliderComponent.Kind()) {
			out = append(out, child)
		}
	}
	return out
}

func spawnBlocker(w *ecs.World, door ecs.Entity, rt *component.DoorRuntime) error {
	width, height := rt.BlockerWidth, rt.BlockerHeight
	if width <= 0 {
		width = defaultBlockerSize
	}
	if height <= 0 {
		height = defaultBlockerSize
	}

	x, y := 0.0, 0.0
	if t, ok := ecs.Get(w, door, component.TransformComponent.Kind()); ok {
		x, y = t.X, t.Y
	}

	child := ecs.CreateEntity(w)
	if err := ecs.Add(w, child, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		ecs.DestroyEntity(w, child)
		return err
	}
	if err := ecs.Add(w, child, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: width, Height: height, Static: true}); err != nil {
		ecs.DestroyEntity(w, child)
		return err
	}
	if err := ecs.Add(w, child, component.BlockingColliderComponent.Kind(), &component.BlockingCollider{}); err != nil {
		ecs.DestroyEntity(w, child)
		return err
	}
	if err := ecs.AddChild(w, door, child); err != nil {
		ecs.DestroyEntity(w, child)
		return err
	}
	return nil
}
