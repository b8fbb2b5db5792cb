package component

// Camera follows the player. Zoom scales world pixels to screen pixels and
// Smoothness is the per-tick lerp factor towards the target.
type Camera struct {
	Zoom       float64
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
