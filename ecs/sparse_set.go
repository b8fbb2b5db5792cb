package ecs

// componentStore is the type-erased view the world uses for bookkeeping.
type componentStore interface {
	remove(e Entity) bool
	has(e Entity) bool
	size() int
	entities() []Entity
}

// sparseSet stores one component type densely, indexed by entity id.
type sparseSet[T any] struct {
	dense  []Entity
	values []*T
	sparse []int // id-1 -> dense index+1, 0 when absent
}

func (s *sparseSet[T]) index(e Entity) (int, bool) {
	id := int(e.id())
	if id <= 0 || id > len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id-1] - 1
	if idx < 0 || s.dense[idx] != e {
		return 0, false
	}
	return idx, true
}

func (s *sparseSet[T]) has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

func (s *sparseSet[T]) get(e Entity) (*T, bool) {
	idx, ok := s.index(e)
	if !ok {
		return nil, false
	}
	return s.values[idx], true
}

func (s *sparseSet[T]) set(e Entity, v *T) {
	if idx, ok := s.index(e); ok {
		s.values[idx] = v
		return
	}
	id := int(e.id())
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, 0)
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense)
}

func (s *sparseSet[T]) remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	moved := s.dense[last]

	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[moved.id()-1] = idx + 1

	s.dense = s.dense[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	s.sparse[e.id()-1] = 0
	return true
}

func (s *sparseSet[T]) size() int { return len(s.dense) }

// entities returns a copy so callers may mutate the set while iterating.
func (s *sparseSet[T]) entities() []Entity {
	out := make([]Entity, len(s.dense))
	copy(out, s.dense)
	return out
}
