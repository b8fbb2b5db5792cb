package component

const (
	DoorFrameClosed = 0
	DoorFrameOpen   = 1
)

// Door is a two-state door toggled by the interact input.
type Door struct {
	IsOpen bool
}

func (d *Door) Interact() {
	d.IsOpen = !d.IsOpen
}

var DoorComponent = NewComponent[Door]()

// DoorRuntime caches what the presentation sync last observed so it only
// reacts to changes.
type DoorRuntime struct {
	Observed        bool
	WasOpen         bool
	WasInteractable bool
	// BlockerWidth and BlockerHeight size the solid child collider of a
	// closed door.
	BlockerWidth  float64
	BlockerHeight float64
}

var DoorRuntimeComponent = NewComponent[DoorRuntime]()

// BlockingCollider marks the solid child collider owned by a closed door.
type BlockingCollider struct{}

var BlockingColliderComponent = NewComponent[BlockingCollider]()
