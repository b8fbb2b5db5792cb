package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dungeon/assets"
)

// LoadImage loads an image from the embedded assets or the filesystem and
// caches it by key.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	img, err := loadImageFromAssetsOrFS(key)
	if err != nil {
		return nil, err
	}
	RegisterImage(key, img)
	return img, nil
}

func loadImageFromAssetsOrFS(path string) (*ebiten.Image, error) {
	if img, err := assets.LoadImage(path); err == nil {
		return img, nil
	}
	for _, p := range []string{path, filepath.Join("assets", path)} {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if im, _, err := image.Decode(bytes.NewReader(b)); err == nil {
			return ebiten.NewImageFromImage(im), nil
		}
	}
	return nil, fmt.Errorf("render: load image %s", path)
}
