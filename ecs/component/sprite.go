package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws one frame of a sheet. Image is resolved lazily from ImagePath
// by the render system, so gameplay code only ever touches Frame.
type Sprite struct {
	Image     *ebiten.Image
	ImagePath string
	FrameW    int
	FrameH    int
	Frame     int
	OriginX   float64
	OriginY   float64
	Hidden    bool
}

// FrameRect returns the source rectangle of the current frame, or the full
// image when the sprite is not a sheet.
func (s *Sprite) FrameRect() image.Rectangle {
	if s == nil || s.Image == nil {
		return image.Rectangle{}
	}
	bounds := s.Image.Bounds()
	if s.FrameW <= 0 || s.FrameH <= 0 {
		return bounds
	}
	cols := bounds.Dx() / s.FrameW
	if cols <= 0 {
		return bounds
	}
	x := (s.Frame % cols) * s.FrameW
	y := (s.Frame / cols) * s.FrameH
	return image.Rect(x, y, x+s.FrameW, y+s.FrameH).Add(bounds.Min)
}

var SpriteComponent = NewComponent[Sprite]()
