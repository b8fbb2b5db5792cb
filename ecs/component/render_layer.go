package component

// RenderLayer orders drawing; lower layers are drawn first.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
