package entity

import "github.com/milk9111/dungeon/ecs"

// NewInteractiveText builds the prompt that shows what the interact key does.
func NewInteractiveText(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "interactive_text.yaml")
}

// NewGameLog builds the scrolling message log.
func NewGameLog(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "game_log.yaml")
}
