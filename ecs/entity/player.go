package entity

import (
	"fmt"

	"github.com/milk9111/dungeon/ecs"
)

// NewPlayerAt builds the player and its cursor indicator child.
func NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	player, err := BuildEntity(w, "player.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, player, x, y, 0); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}

	indicator, err := BuildEntity(w, "cursor_indicator.yaml")
	if err != nil {
		return 0, fmt.Errorf("player: cursor indicator: %w", err)
	}
	if err := SetEntityTransform(w, indicator, x, y, 0); err != nil {
		return 0, fmt.Errorf("player: cursor indicator transform: %w", err)
	}
	if err := ecs.AddChild(w, player, indicator); err != nil {
		return 0, fmt.Errorf("player: attach cursor indicator: %w", err)
	}
	return player, nil
}
