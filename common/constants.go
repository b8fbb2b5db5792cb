package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
	TileSize   = 32.0
	TPS        = 60
)
