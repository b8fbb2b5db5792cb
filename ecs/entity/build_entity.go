package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/dungeon/common"
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
	"github.com/milk9111/dungeon/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":          addPlayerTag,
	"camera_tag":          addCameraTag,
	"player":              addPlayer,
	"interactor":          addInteractor,
	"input":               addInput,
	"transform":           addTransform,
	"velocity":            addVelocity,
	"sprite":              addSprite,
	"render_layer":        addRenderLayer,
	"camera":              addCamera,
	"physics_body":        addPhysicsBody,
	"character_animation": addCharacterAnimation,
	"door":                addDoor,
	"door_runtime":        addDoorRuntime,
	"cursor_indicator":    addCursorIndicator,
	"interactive_prompt":  addInteractivePrompt,
	"ui_text":             addUIText,
	"game_log":            addGameLog,
}

// Components that read others during construction come later.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"player",
	"interactor",
	"input",
	"transform",
	"velocity",
	"sprite",
	"render_layer",
	"camera",
	"physics_body",
	"character_animation",
	"door",
	"door_runtime",
	"cursor_indicator",
	"interactive_prompt",
	"ui_text",
	"game_log",
}

// BuildEntity creates an entity from a YAML prefab. On error nothing is left
// in the world.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	build := func(name string, raw any) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, raw, ctx); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		return nil
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := build(name, raw); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
		delete(remaining, name)
	}

	names := make([]string, 0, len(remaining))
	for name := range remaining {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := build(name, remaining[name]); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addInteractor(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InteractorComponent.Kind(), &component.Interactor{})
}

func addInteractivePrompt(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InteractivePromptComponent.Kind(), &component.InteractivePrompt{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addVelocity(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: spec.MoveSpeed})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

// addSprite records the image path only; the render system loads it on first
// draw, so building entities never touches the GPU.
func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	sprite := component.Sprite{
		ImagePath: spec.Image,
		FrameW:    spec.FrameW,
		FrameH:    spec.FrameH,
		Frame:     spec.Frame,
		OriginX:   spec.OriginX,
		OriginY:   spec.OriginY,
	}
	if spec.CenterOrigin && sprite.OriginX == 0 && sprite.OriginY == 0 {
		fw, fh, err := spriteFrameSize(spec)
		if err != nil {
			return err
		}
		sprite.OriginX = float64(fw) / 2
		sprite.OriginY = float64(fh) / 2
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom <= 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Zoom:       spec.Zoom,
		Smoothness: spec.Smoothness,
	})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if spec.Radius <= 0 {
		if spec.Width <= 0 {
			spec.Width = common.TileSize
		}
		if spec.Height <= 0 {
			spec.Height = common.TileSize
		}
	}
	if !spec.Static && spec.Mass == 0 {
		spec.Mass = 1
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:        spec.Width,
		Height:       spec.Height,
		Radius:       spec.Radius,
		Mass:         spec.Mass,
		Friction:     spec.Friction,
		Elasticity:   spec.Elasticity,
		Static:       spec.Static,
		Sensor:       spec.Sensor,
		AlignTopLeft: spec.AlignTopLeft,
		OffsetX:      spec.OffsetX,
		OffsetY:      spec.OffsetY,
	})
}

type characterAnimationSpec = prefabs.CharacterAnimationComponentSpec

func addCharacterAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[characterAnimationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode character animation spec: %w", err)
	}
	if spec.Last < spec.First {
		return fmt.Errorf("character animation: last frame %d before first %d", spec.Last, spec.First)
	}
	ticks := int(spec.FrameSeconds*common.TPS + 0.5)
	if ticks <= 0 {
		ticks = 1
	}
	return ecs.Add(w, e, component.CharacterAnimationComponent.Kind(), &component.CharacterAnimation{
		State:      component.AnimationIdle,
		FrameTicks: ticks,
		First:      spec.First,
		Last:       spec.Last,
	})
}

type doorSpec = prefabs.DoorComponentSpec

func addDoor(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[doorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode door spec: %w", err)
	}
	return ecs.Add(w, e, component.DoorComponent.Kind(), &component.Door{IsOpen: spec.IsOpen})
}

type doorRuntimeSpec = prefabs.DoorRuntimeComponentSpec

func addDoorRuntime(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[doorRuntimeSpec](raw)
	if err != nil {
		return fmt.Errorf("decode door runtime spec: %w", err)
	}
	return ecs.Add(w, e, component.DoorRuntimeComponent.Kind(), &component.DoorRuntime{
		BlockerWidth:  spec.BlockerWidth,
		BlockerHeight: spec.BlockerHeight,
	})
}

type cursorIndicatorSpec = prefabs.CursorIndicatorComponentSpec

func addCursorIndicator(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cursorIndicatorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode cursor indicator spec: %w", err)
	}
	return ecs.Add(w, e, component.CursorIndicatorComponent.Kind(), &component.CursorIndicator{Radius: spec.Radius})
}

type uiTextSpec = prefabs.UITextComponentSpec

func addUIText(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[uiTextSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ui text spec: %w", err)
	}
	text := &component.UIText{Value: spec.Value}
	if spec.Color != nil {
		text.Color = spec.Color.Color
	}
	return ecs.Add(w, e, component.UITextComponent.Kind(), text)
}

type gameLogSpec = prefabs.GameLogComponentSpec

func addGameLog(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[gameLogSpec](raw)
	if err != nil {
		return fmt.Errorf("decode game log spec: %w", err)
	}
	if spec.Capacity <= 0 {
		spec.Capacity = 100
	}
	if spec.Visible <= 0 {
		spec.Visible = 5
	}
	return ecs.Add(w, e, component.GameLogComponent.Kind(), &component.GameLog{
		Capacity: spec.Capacity,
		Visible:  spec.Visible,
	})
}
