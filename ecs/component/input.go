package component

// Input stores the input state sampled for the current frame.
type Input struct {
	MoveX float64
	MoveY float64

	InteractPressed bool

	AimX float64
	AimY float64

	CursorX     float64
	CursorY     float64
	CursorMoved bool

	// LogScroll is the number of lines to scroll the game log this frame;
	// negative scrolls towards older lines.
	LogScroll int
}

var InputComponent = NewComponent[Input]()
