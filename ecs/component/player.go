package component

// Player holds the tunables of the controllable character.
type Player struct {
	MoveSpeed float64
}

var PlayerComponent = NewComponent[Player]()
