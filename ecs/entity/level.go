package entity

import (
	"fmt"
	"strings"

	"github.com/milk9111/dungeon/common"
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
	"github.com/milk9111/dungeon/levels"
)

// Overrides replace prefab tunables with configured values. Zero fields keep
// the prefab's value.
type Overrides struct {
	MoveSpeed        float64
	CameraZoom       float64
	CameraSmoothness float64
	LogCapacity      int
	LogVisible       int
}

// LoadedLevel lists the notable entities of a loaded level.
type LoadedLevel struct {
	Player   ecs.Entity
	Camera   ecs.Entity
	Prompt   ecs.Entity
	Log      ecs.Entity
	Doors    []ecs.Entity
	Warnings []string
}

// LoadLevelToWorld fills an empty world with the level's tiles, colliders,
// entities and the UI text entities.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level, ov Overrides) (*LoadedLevel, error) {
	if world == nil || lvl == nil {
		return nil, fmt.Errorf("level: world and level are required")
	}
	out := &LoadedLevel{}
	tileSize := common.TileSize

	boundsEntity := ecs.CreateEntity(world)
	if err := ecs.Add(world, boundsEntity, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:    float64(lvl.Width) * tileSize,
		Height:   float64(lvl.Height) * tileSize,
		TileSize: tileSize,
	}); err != nil {
		return nil, err
	}

	for layerIdx, layer := range lvl.Layers {
		if err := addTileLayer(world, lvl, layerIdx, layer, tileSize); err != nil {
			return nil, fmt.Errorf("level: layer %d: %w", layerIdx, err)
		}
		if layerIdx < len(lvl.LayerMeta) && lvl.LayerMeta[layerIdx].Physics {
			if err := addMergedTileColliders(world, layer, lvl.Width, lvl.Height, tileSize); err != nil {
				return nil, fmt.Errorf("level: layer %d colliders: %w", layerIdx, err)
			}
		}
	}

	for i, ent := range lvl.Entities {
		x, y := float64(ent.X), float64(ent.Y)
		switch strings.ToLower(ent.Type) {
		case "player":
			e, err := NewPlayerAt(world, x, y)
			if err != nil {
				return nil, fmt.Errorf("level: entity %d: %w", i, err)
			}
			out.Player = e
		case "camera":
			e, err := NewCameraAt(world, x, y)
			if err != nil {
				return nil, fmt.Errorf("level: entity %d: %w", i, err)
			}
			out.Camera = e
		case "door":
			isOpen, present, ok := ent.BoolProp("is_open")
			if present && !ok {
				out.Warnings = append(out.Warnings, fmt.Sprintf("door %d at (%d,%d): is_open is %T, treating as closed", i, ent.X, ent.Y, ent.Props["is_open"]))
			}
			e, err := NewDoorAt(world, x, y, isOpen && ok)
			if err != nil {
				return nil, fmt.Errorf("level: entity %d: %w", i, err)
			}
			out.Doors = append(out.Doors, e)
		default:
			out.Warnings = append(out.Warnings, fmt.Sprintf("entity %d: unknown type %q", i, ent.Type))
		}
	}

	prompt, err := NewInteractiveText(world)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	out.Prompt = prompt
	logEntity, err := NewGameLog(world)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	out.Log = logEntity

	applyOverrides(world, out, ov)
	return out, nil
}

func applyOverrides(world *ecs.World, out *LoadedLevel, ov Overrides) {
	if p, ok := ecs.Get(world, out.Player, component.PlayerComponent.Kind()); ok && ov.MoveSpeed > 0 {
		p.MoveSpeed = ov.MoveSpeed
	}
	if c, ok := ecs.Get(world, out.Camera, component.CameraComponent.Kind()); ok {
		if ov.CameraZoom > 0 {
			c.Zoom = ov.CameraZoom
		}
		if ov.CameraSmoothness > 0 {
			c.Smoothness = ov.CameraSmoothness
		}
	}
	if l, ok := ecs.Get(world, out.Log, component.GameLogComponent.Kind()); ok {
		if ov.LogCapacity > 0 {
			l.Capacity = ov.LogCapacity
		}
		if ov.LogVisible > 0 {
			l.Visible = ov.LogVisible
		}
	}
}

func addTileLayer(world *ecs.World, lvl *levels.Level, layerIdx int, layer []int, tileSize float64) error {
	var usage []*levels.TileInfo
	if layerIdx < len(lvl.TilesetUsage) {
		usage = lvl.TilesetUsage[layerIdx]
	}
	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			tileIdx := y*lvl.Width + x
			if tileIdx >= len(layer) || layer[tileIdx] <= 0 || tileIdx >= len(usage) {
				continue
			}
			tileInfo := usage[tileIdx]
			if tileInfo == nil || tileInfo.Path == "" {
				continue
			}
			tileW, tileH := tileInfo.TileW, tileInfo.TileH
			if tileW <= 0 {
				tileW = int(tileSize)
			}
			if tileH <= 0 {
				tileH = int(tileSize)
			}

			e := ecs.CreateEntity(world)
			if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{
				X:      float64(x) * tileSize,
				Y:      float64(y) * tileSize,
				ScaleX: 1,
				ScaleY: 1,
			}); err != nil {
				return err
			}
			if err := ecs.Add(world, e, component.SpriteComponent.Kind(), &component.Sprite{
				ImagePath: tileInfo.Path,
				FrameW:    tileW,
				FrameH:    tileH,
				Frame:     tileInfo.Index,
			}); err != nil {
				return err
			}
			if err := ecs.Add(world, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layerIdx}); err != nil {
				return err
			}
			if layerIdx == 0 {
				if err := ecs.Add(world, e, component.GroundTagComponent.Kind(), &component.GroundTag{}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// addMergedTileColliders covers the solid tiles of a layer with as few
// rectangles as possible, growing each one right and then down.
func addMergedTileColliders(world *ecs.World, layer []int, width, height int, tileSize float64) error {
	for _, r := range mergeTileRects(layer, width, height) {
		e := ecs.CreateEntity(world)
		if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{
			X:      float64(r.x) * tileSize,
			Y:      float64(r.y) * tileSize,
			ScaleX: 1,
			ScaleY: 1,
		}); err != nil {
			return err
		}
		if err := ecs.Add(world, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Width:        float64(r.w) * tileSize,
			Height:       float64(r.h) * tileSize,
			Static:       true,
			AlignTopLeft: true,
		}); err != nil {
			return err
		}
	}
	return nil
}

type tileRect struct {
	x, y, w, h int
}

func mergeTileRects(layer []int, width, height int) []tileRect {
	if width <= 0 || height <= 0 {
		return nil
	}
	visited := make([]bool, width*height)
	solid := func(x, y int) bool {
		idx := y*width + x
		return idx < len(layer) && !visited[idx] && layer[idx] > 0
	}

	var rects []tileRect
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !solid(x, y) {
				continue
			}
			w := 0
			for x2 := x; x2 < width && solid(x2, y); x2++ {
				w++
			}
			h := 1
			for y2 := y + 1; y2 < height; y2++ {
				rowOK := true
				for x2 := x; x2 < x+w; x2++ {
					if !solid(x2, y2) {
						rowOK = false
						break
					}
				}
				if !rowOK {
					break
				}
				h++
			}
			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					visited[yy*width+xx] = true
				}
			}
			rects = append(rects, tileRect{x: x, y: y, w: w, h: h})
		}
	}
	return rects
}

// UnloadLevel destroys every entity in the world.
func UnloadLevel(world *ecs.World) {
	for _, e := range ecs.Entities(world) {
		ecs.DestroyEntity(world, e)
	}
}
