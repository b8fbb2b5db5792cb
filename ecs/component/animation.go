package component

type AnimationState int

const (
	AnimationIdle AnimationState = iota
	AnimationMoving
)

// CharacterAnimation cycles sprite frames First..Last while the entity moves.
type CharacterAnimation struct {
	State      AnimationState
	FrameTicks int
	Timer      int
	First      int
	Last       int
}

var CharacterAnimationComponent = NewComponent[CharacterAnimation]()
