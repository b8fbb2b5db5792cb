package system

import (
	"github.com/milk9111/dungeon/common"
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
)

// MovementSystem converts the player's input direction into a velocity of
// constant speed, so diagonals are no faster than straight lines.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.VelocityComponent.Kind(), func(_ ecs.Entity, p *component.Player, in *component.Input, v *component.Velocity) {
		dx, dy := common.Normalize(in.MoveX, in.MoveY)
		v.X = dx * p.MoveSpeed
		v.Y = dy * p.MoveSpeed
	})
}
