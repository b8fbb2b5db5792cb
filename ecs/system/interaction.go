package system

import (
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
	"github.com/zyedidia/generic/mapset"
)

// InteractionSystem turns sensor overlaps with an interactor into the
// Interactable marker on the other entity.
type InteractionSystem struct{}

func NewInteractionSystem() *InteractionSystem {
	return &InteractionSystem{}
}

func (s *InteractionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	events := ecs.Events[ecs.CollisionEvent](w)
	if len(events) == 0 {
		return
	}

	interactors := mapset.New[ecs.Entity]()
	ecs.ForEach(w, component.InteractorComponent.Kind(), func(e ecs.Entity, _ *component.Interactor) {
		interactors.Put(e)
	})

	for _, evt := range events {
		for _, e := range [2]ecs.Entity{evt.A, evt.B} {
			if interactors.Has(e) || !ecs.IsAlive(w, e) {
				continue
			}
			switch evt.Kind {
			case ecs.CollisionBegin:
				if !ecs.Has(w, e, component.InteractableComponent.Kind()) {
					_ = ecs.Add(w, e, component.InteractableComponent.Kind(), &component.Interactable{})
				}
			case ecs.CollisionEnd:
				ecs.Remove(w, e, component.InteractableComponent.Kind())
			}
		}
		// Any separation hides the prompt, even if another object is still in
		// range. The next change on that object shows it again.
		if evt.Kind == ecs.CollisionEnd {
			setPrompt(w, "")
		}
	}
}
