package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type GroundTag struct{}

var GroundTagComponent = NewComponent[GroundTag]()
