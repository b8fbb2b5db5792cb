package ecs

import "github.com/milk9111/dungeon/ecs/component"

// KindID is satisfied by every component.ComponentKind.
type KindID interface {
	ID() component.ComponentID
}

// Query returns the entities holding every listed component kind.
func Query(w *World, kinds ...KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]componentStore, 0, len(kinds))
	for _, k := range kinds {
		store, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		stores = append(stores, store)
	}

	var out []Entity
	for _, e := range smallest(stores...).entities() {
		match := true
		for _, store := range stores {
			if !store.has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// Query returns the entities holding every listed component kind.
func (w *World) Query(kinds ...KindID) []Entity { return Query(w, kinds...) }

// smallest picks the store with the fewest entities to drive an intersection.
func smallest(stores ...componentStore) componentStore {
	var best componentStore
	bestLen := -1
	for _, s := range stores {
		n := s.size()
		if bestLen < 0 || n < bestLen {
			best = s
			bestLen = n
		}
	}
	return best
}
