package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
	"github.com/milk9111/dungeon/ecs/render"
	"github.com/milk9111/dungeon/logging"
	"go.uber.org/zap"
)

type RenderSystem struct {
	logger *zap.Logger
	// missing remembers images that failed to load so they are reported once.
	missing map[string]bool
}

func NewRenderSystem(logger *zap.Logger) *RenderSystem {
	return &RenderSystem{logger: logging.OrNop(logger), missing: make(map[string]bool)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	camX, camY, zoom := cameraView(w)

	entities := ecs.Query(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := renderLayer(w, entities[i]), renderLayer(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if t == nil || s == nil || s.Hidden || !r.resolve(s) {
			continue
		}

		img := s.Image
		if rect := s.FrameRect(); !rect.Empty() && rect != img.Bounds() {
			if sub, ok := img.SubImage(rect).(*ebiten.Image); ok {
				img = sub
			}
		}

		sx, sy := t.ScaleX, t.ScaleY
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(t.X-camX, t.Y-camY)
		op.GeoM.Scale(zoom, zoom)
		screen.DrawImage(img, op)
	}
}

// resolve loads the sprite's image on first use.
func (r *RenderSystem) resolve(s *component.Sprite) bool {
	if s.Image != nil {
		return true
	}
	if s.ImagePath == "" || r.missing[s.ImagePath] {
		return false
	}
	img, err := render.LoadImage(s.ImagePath)
	if err != nil {
		r.missing[s.ImagePath] = true
		r.logger.Warn("render: missing image", zap.String("path", s.ImagePath), zap.Error(err))
		return false
	}
	s.Image = img
	return true
}

func renderLayer(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}

// cameraView returns the camera's top-left world position and zoom.
func cameraView(w *ecs.World) (float64, float64, float64) {
	camX, camY, zoom := 0.0, 0.0, 1.0
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return camX, camY, zoom
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		camX, camY = t.X, t.Y
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && cam.Zoom > 0 {
		zoom = cam.Zoom
	}
	return camX, camY, zoom
}
