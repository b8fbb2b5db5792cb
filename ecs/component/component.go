// Package component holds the plain data attached to entities and the typed
// kinds the ecs package stores them under.
package component

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Errors returned by ecs.Add and ecs.AddChild.
var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID indexes a world's component stores. Zero is never handed out.
type ComponentID uint32

var lastID atomic.Uint32

// ComponentKind ties a store id to the Go type kept in it. The zero value is
// invalid and rejected by ecs.Add.
type ComponentKind[T any] struct {
	id ComponentID
}

// NewComponentKind allocates a fresh kind. Two calls for the same T yield
// two independent stores.
func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(lastID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

func (k ComponentKind[T]) String() string {
	var zero T
	return fmt.Sprintf("%T#%d", zero, k.id)
}

// ComponentHandle is the package-level declaration of a component, e.g.
// DoorComponent. Systems call Kind() to reach its store.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
