package component

// GameLog is the scrolling on-screen message log. Scroll is the index of the
// first visible line.
type GameLog struct {
	Lines    []string
	Capacity int
	Visible  int
	Scroll   int
	Dirty    bool
}

var GameLogComponent = NewComponent[GameLog]()
