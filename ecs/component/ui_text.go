package component

import "image/color"

// UIText is a text element drawn by the UI layer. A nil Color uses the UI
// default.
type UIText struct {
	Value string
	Color color.Color
}

var UITextComponent = NewComponent[UIText]()
