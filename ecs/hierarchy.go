package ecs

import "github.com/milk9111/dungeon/ecs/component"

// Parent points a child entity at its owner.
type Parent struct {
	Entity Entity
}

// Children lists the entities owned by a parent, in insertion order.
type Children struct {
	Entities []Entity
}

var (
	ParentComponent   = component.NewComponent[Parent]()
	ChildrenComponent = component.NewComponent[Children]()
)

// AddChild attaches child to parent, detaching it from any previous parent.
func AddChild(w *World, parent, child Entity) error {
	if !IsAlive(w, parent) || !IsAlive(w, child) {
		return component.ErrEntityNotAlive
	}
	if old, ok := Get(w, child, ParentComponent.Kind()); ok && old.Entity != parent {
		RemoveChild(w, old.Entity, child)
	}
	children, ok := Get(w, parent, ChildrenComponent.Kind())
	if !ok {
		children = &Children{}
	}
	for _, c := range children.Entities {
		if c == child {
			return nil
		}
	}
	children.Entities = append(children.Entities, child)
	if err := Add(w, parent, ChildrenComponent.Kind(), children); err != nil {
		return err
	}
	return Add(w, child, ParentComponent.Kind(), &Parent{Entity: parent})
}

// RemoveChild detaches child from parent without destroying it.
func RemoveChild(w *World, parent, child Entity) bool {
	children, ok := Get(w, parent, ChildrenComponent.Kind())
	if !ok {
		return false
	}
	removed := false
	kept := children.Entities[:0]
	for _, c := range children.Entities {
		if c == child {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	children.Entities = kept
	if len(kept) == 0 {
		Remove(w, parent, ChildrenComponent.Kind())
	}
	if p, ok := Get(w, child, ParentComponent.Kind()); ok && p.Entity == parent {
		Remove(w, child, ParentComponent.Kind())
	}
	return removed
}

// ChildrenOf returns a copy of parent's live children.
func ChildrenOf(w *World, parent Entity) []Entity {
	children, ok := Get(w, parent, ChildrenComponent.Kind())
	if !ok {
		return nil
	}
	out := make([]Entity, 0, len(children.Entities))
	for _, c := range children.Entities {
		if IsAlive(w, c) {
			out = append(out, c)
		}
	}
	return out
}

// DestroyRecursive destroys e and everything it owns.
func DestroyRecursive(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	for _, c := range ChildrenOf(w, e) {
		DestroyRecursive(w, c)
	}
	if p, ok := Get(w, e, ParentComponent.Kind()); ok {
		RemoveChild(w, p.Entity, e)
	}
	return DestroyEntity(w, e)
}
