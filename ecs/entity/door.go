package entity

import (
	"fmt"

	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
)

// NewDoorAt builds a door centred on (x, y). Its blocking collider is added
// by the door sync system on the first frame.
func NewDoorAt(w *ecs.World, x, y float64, isOpen bool) (ecs.Entity, error) {
	door, err := BuildEntity(w, "door.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, door, x, y, 0); err != nil {
		return 0, fmt.Errorf("door: override transform: %w", err)
	}
	d, ok := ecs.Get(w, door, component.DoorComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("door: prefab has no door component")
	}
	d.IsOpen = isOpen
	return door, nil
}
