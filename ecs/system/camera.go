package system

import (
	"github.com/milk9111/dungeon/common"
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
)

// CameraSystem moves the camera so the player stays centred on screen. The
// camera transform is the world position of the top-left screen corner.
type CameraSystem struct {
	viewW, viewH float64
	snapped      map[ecs.Entity]bool
}

func NewCameraSystem(viewW, viewH float64) *CameraSystem {
	if viewW <= 0 || viewH <= 0 {
		viewW, viewH = common.BaseWidth, common.BaseHeight
	}
	return &CameraSystem{viewW: viewW, viewH: viewH, snapped: make(map[ecs.Entity]bool)}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, cam *component.Camera, t *component.Transform) {
		zoom := cam.Zoom
		if zoom <= 0 {
			zoom = 1
		}
		goalX := target.X - cs.viewW/(2*zoom)
		goalY := target.Y - cs.viewH/(2*zoom)

		if !cs.snapped[e] || cam.Smoothness <= 0 || cam.Smoothness >= 1 {
			t.X, t.Y = goalX, goalY
			cs.snapped[e] = true
			return
		}
		t.X = common.Lerp(t.X, goalX, cam.Smoothness)
		t.Y = common.Lerp(t.Y, goalY, cam.Smoothness)
	})
}

// ScreenToWorld converts a screen position to world coordinates through the
// first camera in the world.
func ScreenToWorld(w *ecs.World, sx, sy float64) (float64, float64) {
	camX, camY, zoom := cameraView(w)
	return camX + sx/zoom, camY + sy/zoom
}
