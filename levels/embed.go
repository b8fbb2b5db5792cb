package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Dir is where levels are read from before falling back to the embedded
// copies, so edited files are picked up by a reload.
const Dir = "levels"

type Level struct {
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	Layers       [][]int       `json:"layers"`
	TilesetUsage [][]*TileInfo `json:"tileset_usage"`
	LayerMeta    []LayerMeta   `json:"layer_meta,omitempty"`
	Entities     []Entity      `json:"entities,omitempty"`
}

type LayerMeta struct {
	Physics bool `json:"physics"`
}

// Entity is a placed object. X and Y are the world position of its centre.
type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

type TileInfo struct {
	Path  string `json:"path"`
	Index int    `json:"index"`
	TileW int    `json:"tile_w"`
	TileH int    `json:"tile_h"`
}

// BoolProp looks up a boolean property. present reports whether the key
// exists at all; ok whether it also held a bool.
func (e Entity) BoolProp(key string) (value, present, ok bool) {
	raw, present := e.Props[key]
	if !present {
		return false, false, false
	}
	v, ok := raw.(bool)
	return v, true, ok
}

// Load reads a level from Dir, or from the embedded levels when the file is
// not on disk.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean)))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
		if err != nil {
			return nil, fmt.Errorf("levels: read %q: %w", name, err)
		}
	}
	return Parse(data)
}

// LoadLevelFromFS reads a level from the embedded levels only.
func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, cleanLevelPath(name))
	if err != nil {
		return nil, fmt.Errorf("levels: read level: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Validate checks that every layer covers the whole grid.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("levels: invalid size %dx%d", l.Width, l.Height)
	}
	cells := l.Width * l.Height
	for i, layer := range l.Layers {
		if len(layer) != cells {
			return fmt.Errorf("levels: layer %d has %d cells, want %d", i, len(layer), cells)
		}
		if i < len(l.TilesetUsage) && l.TilesetUsage[i] != nil && len(l.TilesetUsage[i]) != cells {
			return fmt.Errorf("levels: tileset usage %d has %d cells, want %d", i, len(l.TilesetUsage[i]), cells)
		}
	}
	return nil
}

// Names lists the embedded levels.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

func cleanLevelPath(name string) string {
	s := strings.TrimPrefix(filepath.ToSlash(name), Dir+"/")
	if !strings.HasSuffix(s, ".json") {
		s += ".json"
	}
	return s
}
