package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dungeon/common"
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeInteractor
	collisionTypeSensor
)

const physicsStep = 1.0 / common.TPS

// PhysicsSystem mirrors PhysicsBody components into a top-down Chipmunk
// space and reports interactor/sensor overlaps as collision events.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	// world is only set while Update runs; collision callbacks use it.
	world *ecs.World

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = newSpace()
		ps.handlersReady = false
	}
	ps.world = w
	defer func() { ps.world = nil }()

	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ps.syncEntities(w)
	ps.syncWorldBounds(w)
	ps.pushVelocities(w)

	ps.space.Step(physicsStep)

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}
	handler := ps.space.NewCollisionHandler(collisionTypeInteractor, collisionTypeSensor)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		if sys, ok := userData.(*PhysicsSystem); ok {
			sys.emitCollision(arb, ecs.CollisionBegin)
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) {
		if sys, ok := userData.(*PhysicsSystem); ok {
			sys.emitCollision(arb, ecs.CollisionEnd)
		}
	}
	ps.handlersReady = true
}

func (ps *PhysicsSystem) emitCollision(arb *cp.Arbiter, kind ecs.CollisionEventKind) {
	if ps.world == nil {
		return
	}
	shapeA, shapeB := arb.Shapes()
	a, okA := ps.shapes[shapeA]
	b, okB := ps.shapes[shapeB]
	if !okA || !okB {
		return
	}
	ecs.Emit(ps.world, ecs.CollisionEvent{
		Kind:   kind,
		A:      a,
		B:      b,
		Sensor: shapeA.Sensor() || shapeB.Sensor(),
	})
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if info := ps.entities[e]; info != nil {
			if bodyComp.Body == nil && !info.static {
				bodyComp.Body = info.body
			}
			return
		}

		info := ps.createBodyInfo(transform, bodyComp, ecs.Has(w, e, component.InteractorComponent.Kind()))
		if info == nil {
			return
		}
		ps.entities[e] = info
		for _, shape := range info.shapes {
			ps.shapes[shape] = e
		}
		if !info.static {
			bodyComp.Body = info.body
		}
		if len(info.shapes) > 0 {
			bodyComp.Shape = info.shapes[0]
		}
	})
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, interactor bool) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	radius := bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		width = common.TileSize
		height = common.TileSize
	}

	sizeW, sizeH := width, height
	if radius > 0 {
		sizeW = radius * 2
		sizeH = radius * 2
	}

	topLeftX := transform.X + bodyComp.OffsetX
	topLeftY := transform.Y + bodyComp.OffsetY
	if !bodyComp.AlignTopLeft {
		topLeftX -= sizeW / 2
		topLeftY -= sizeH / 2
	}
	centerX := topLeftX + sizeW/2
	centerY := topLeftY + sizeH/2

	collisionType := collisionTypeSolid
	switch {
	case interactor:
		collisionType = collisionTypeInteractor
	case bodyComp.Sensor:
		collisionType = collisionTypeSensor
	}

	info := &bodyInfo{static: bodyComp.Static}

	var shape *cp.Shape
	if bodyComp.Static {
		info.body = ps.space.StaticBody
		if radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, radius, cp.Vector{X: centerX, Y: centerY})
		} else {
			bb := cp.BB{L: topLeftX, B: topLeftY, R: topLeftX + sizeW, T: topLeftY + sizeH}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
	} else {
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		// Infinite moment keeps characters upright.
		body := cp.NewBody(mass, cp.INFINITY)
		body.SetPosition(cp.Vector{X: centerX, Y: centerY})
		ps.space.AddBody(body)
		info.body = body
		if radius > 0 {
			shape = cp.NewCircle(body, radius, cp.Vector{})
		} else {
			shape = cp.NewBox(body, width, height, 0)
		}
	}

	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetSensor(bodyComp.Sensor)
	shape.SetCollisionType(collisionType)
	ps.space.AddShape(shape)
	info.shapes = []*cp.Shape{shape}
	return info
}

func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	boundsEntity, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[boundsEntity]; exists {
		return
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
	if !ok || bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	worldW, worldH := bounds.Width, bounds.Height
	segments := [][2]cp.Vector{
		{{X: 0, Y: 0}, {X: worldW, Y: 0}},
		{{X: 0, Y: worldH}, {X: worldW, Y: worldH}},
		{{X: 0, Y: 0}, {X: 0, Y: worldH}},
		{{X: worldW, Y: 0}, {X: worldW, Y: worldH}},
	}

	info := &bodyInfo{static: true, body: ps.space.StaticBody}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg[0], seg[1], 1)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
	}
	ps.entities[boundsEntity] = info
}

func (ps *PhysicsSystem) pushVelocities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.VelocityComponent.Kind(), func(_ ecs.Entity, bodyComp *component.PhysicsBody, v *component.Velocity) {
		if bodyComp.Static || bodyComp.Body == nil {
			return
		}
		bodyComp.Body.SetVelocityVector(cp.Vector{X: v.X, Y: v.Y})
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Static || bodyComp.Body == nil {
			return
		}
		pos := bodyComp.Body.Position()
		if bodyComp.AlignTopLeft {
			transform.X = pos.X - bodyComp.Width/2 - bodyComp.OffsetX
			transform.Y = pos.Y - bodyComp.Height/2 - bodyComp.OffsetY
		} else {
			transform.X = pos.X - bodyComp.OffsetX
			transform.Y = pos.Y - bodyComp.OffsetY
		}
	})
}

// cleanupEntities removes the shapes of entities that died or lost their
// PhysicsBody. Removing a shape that still overlaps a sensor fires its
// separate callback, so proximity is ended for destroyed objects too.
func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && (ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) || ecs.Has(w, e, component.LevelBoundsComponent.Kind())) {
			continue
		}
		for _, shape := range info.shapes {
			ps.space.RemoveShape(shape)
			delete(ps.shapes, shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
