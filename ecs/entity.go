package ecs

import "fmt"

// Entity is a handle into a World. The low 32 bits hold the slot id and the
// high 32 bits the slot's generation, so a handle kept after its entity was
// destroyed never matches the slot's next occupant.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

const idBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<idBits | uint64(id))
}

func (e Entity) id() entityID { return entityID(e & (1<<idBits - 1)) }

func (e Entity) generation() generation { return generation(e >> idBits) }

// String renders the handle as id:generation, which is what log lines show.
func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.id(), e.generation())
}

// Valid reports whether e could refer to an entity at all. It says nothing
// about whether that entity is still alive.
func (e Entity) Valid() bool {
	return e.id() != 0
}
