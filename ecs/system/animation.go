package system

import (
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
)

// AnimationSystem walks character sprites through their frames while they
// move. Idle characters keep their current frame.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.CharacterAnimationComponent.Kind(), component.VelocityComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, anim *component.CharacterAnimation, v *component.Velocity, sprite *component.Sprite) {
		if v.X == 0 && v.Y == 0 {
			anim.State = component.AnimationIdle
			return
		}
		anim.State = component.AnimationMoving

		anim.Timer++
		if anim.FrameTicks > 0 && anim.Timer < anim.FrameTicks {
			return
		}
		anim.Timer = 0
		if sprite.Frame >= anim.Last || sprite.Frame < anim.First {
			sprite.Frame = anim.First
		} else {
			sprite.Frame++
		}
	})
}
