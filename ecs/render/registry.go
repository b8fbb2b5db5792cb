package render

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	mu     sync.RWMutex
	images = map[string]*ebiten.Image{}
)

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	mu.Lock()
	images[key] = img
	mu.Unlock()
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	mu.RLock()
	defer mu.RUnlock()
	return images[key]
}

// Reset drops every cached image so the next lookup reloads from disk.
func Reset() {
	mu.Lock()
	clear(images)
	mu.Unlock()
}
