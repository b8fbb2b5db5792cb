package entity

import (
	"fmt"

	"github.com/milk9111/dungeon/assets"
	"github.com/milk9111/dungeon/prefabs"
)

// spriteFrameSize returns the size of one frame, reading the image header
// when the prefab does not give a frame size.
func spriteFrameSize(spec prefabs.SpriteComponentSpec) (int, int, error) {
	if spec.FrameW > 0 && spec.FrameH > 0 {
		return spec.FrameW, spec.FrameH, nil
	}
	if spec.Image == "" {
		return 0, 0, nil
	}
	w, h, err := assets.ImageSize(spec.Image)
	if err != nil {
		return 0, 0, fmt.Errorf("sprite size %q: %w", spec.Image, err)
	}
	return w, h, nil
}
