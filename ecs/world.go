package ecs

import "github.com/milk9111/dungeon/ecs/component"

// World owns entities, their components and the per-frame event queues.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
	events   map[eventKey]eventBuffer
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]componentStore),
		events: make(map[eventKey]eventBuffer),
	}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and invalidates the handle.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity { return CreateEntity(w) }

// DestroyEntity removes an entity and all of its components.
func (w *World) DestroyEntity(e Entity) bool { return DestroyEntity(w, e) }

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool { return IsAlive(w, e) }

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if store, ok := w.stores[kind.ID()]; ok {
		typed, _ := store.(*sparseSet[T])
		return typed
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]componentStore)
	}
	store := &sparseSet[T]{}
	w.stores[kind.ID()] = store
	return store
}
