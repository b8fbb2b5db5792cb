package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
type PhysicsBody struct {
	Body         *cp.Body
	Shape        *cp.Shape
	Width        float64
	Height       float64
	Radius       float64
	Mass         float64
	Friction     float64
	Elasticity   float64
	OffsetX      float64
	OffsetY      float64
	Static       bool
	Sensor       bool
	AlignTopLeft bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// Velocity is the desired linear velocity of a dynamic body, in pixels per
// second. The physics system pushes it into the body before each step.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
