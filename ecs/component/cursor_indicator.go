package component

// CursorIndicator orbits its parent and points towards the aim direction.
type CursorIndicator struct {
	Radius float64
}

var CursorIndicatorComponent = NewComponent[CursorIndicator]()
