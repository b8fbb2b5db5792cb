package component

// ReloadRequest asks the game loop to rebuild the world from the level file
// once the current frame has finished.
type ReloadRequest struct {
	Reason string
}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
