package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PlayerComponentSpec struct {
	MoveSpeed float64 `yaml:"move_speed"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Image        string  `yaml:"image"`
	FrameW       int     `yaml:"frame_w"`
	FrameH       int     `yaml:"frame_h"`
	Frame        int     `yaml:"frame"`
	OriginX      float64 `yaml:"origin_x"`
	OriginY      float64 `yaml:"origin_y"`
	CenterOrigin bool    `yaml:"center_origin"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type CameraComponentSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

type PhysicsBodyComponentSpec struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Radius       float64 `yaml:"radius"`
	Mass         float64 `yaml:"mass"`
	Friction     float64 `yaml:"friction"`
	Elasticity   float64 `yaml:"elasticity"`
	Static       bool    `yaml:"static"`
	Sensor       bool    `yaml:"sensor"`
	AlignTopLeft bool    `yaml:"align_top_left"`
	OffsetX      float64 `yaml:"offset_x"`
	OffsetY      float64 `yaml:"offset_y"`
}

type DoorComponentSpec struct {
	IsOpen bool `yaml:"is_open"`
}

type DoorRuntimeComponentSpec struct {
	BlockerWidth  float64 `yaml:"blocker_width"`
	BlockerHeight float64 `yaml:"blocker_height"`
}

type CursorIndicatorComponentSpec struct {
	Radius float64 `yaml:"radius"`
}

type CharacterAnimationComponentSpec struct {
	FrameSeconds float64 `yaml:"frame_seconds"`
	First        int     `yaml:"first"`
	Last         int     `yaml:"last"`
}

type GameLogComponentSpec struct {
	Capacity int `yaml:"capacity"`
	Visible  int `yaml:"visible"`
}

type UITextComponentSpec struct {
	Value string     `yaml:"value"`
	Color *YAMLColor `yaml:"color"`
}
