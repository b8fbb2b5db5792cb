package system

import (
	"math"

	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
)

// CursorIndicatorSystem keeps the indicator on its parent and turns it
// towards the right stick or, failing that, the mouse cursor.
type CursorIndicatorSystem struct{}

func NewCursorIndicatorSystem() *CursorIndicatorSystem {
	return &CursorIndicatorSystem{}
}

func (s *CursorIndicatorSystem) Update(w *ecs.World) {
	in, hasInput := frameInput(w)

	ecs.ForEach2(w, component.CursorIndicatorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ind *component.CursorIndicator, t *component.Transform) {
		pivotX, pivotY := t.X, t.Y
		if p, ok := ecs.Get(w, e, ecs.ParentComponent.Kind()); ok {
			if pt, ok := ecs.Get(w, p.Entity, component.TransformComponent.Kind()); ok {
				pivotX, pivotY = pt.X, pt.Y
			}
		}

		if hasInput {
			switch {
			case in.AimX != 0 || in.AimY != 0:
				t.Rotation = math.Atan2(in.AimY, in.AimX)
			case in.CursorMoved:
				cx, cy := ScreenToWorld(w, in.CursorX, in.CursorY)
				t.Rotation = math.Atan2(cy-pivotY, cx-pivotX)
			}
		}

		t.X = pivotX + math.Cos(t.Rotation)*ind.Radius
		t.Y = pivotY + math.Sin(t.Rotation)*ind.Radius
	})
}
