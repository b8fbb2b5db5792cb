package component

// LevelBounds stores the world-space size of the loaded level and the tile
// size it was authored with.
type LevelBounds struct {
	Width    float64
	Height   float64
	TileSize float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
