package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/gunhands/common"
	"github.com/milk9111/gunhands/ecs"
	"github.com/milk9111/gunhands/ecs/component"
)

const (
	collisionTypeItem cp.CollisionType = iota + 1
	collisionTypeProjectile
	collisionTypeSolid
)

const worldGravity = 600.0

// PhysicsSystem owns the Chipmunk space. It registers PhysicsBody
// components as bodies/shapes, steps the space once per fixed tick, and
// syncs body positions back to transforms. The loadout system detaches
// and reattaches item bodies through the ColliderToggle methods.
type PhysicsSystem struct {
	space  *cp.Space
	bodies map[ecs.Entity]*component.PhysicsBody
}

func NewPhysicsSystem() *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: worldGravity})
	return &PhysicsSystem{
		space:  space,
		bodies: make(map[ecs.Entity]*component.PhysicsBody),
	}
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

	ps.syncEntities(w)
	ps.space.Step(common.FixedTimeStep)
	ps.syncTransforms(w)
}

// syncEntities registers new physics bodies and removes dead ones.
func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	seen := make(map[ecs.Entity]struct{})
	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		seen[e] = struct{}{}
		if _, ok := ps.bodies[e]; !ok {
			ps.register(e, body, t)
		}
	})
	for e, body := range ps.bodies {
		if _, ok := seen[e]; ok {
			continue
		}
		ps.detach(body)
		delete(ps.bodies, e)
	}
}

func (ps *PhysicsSystem) register(e ecs.Entity, bodyComp *component.PhysicsBody, t *component.Transform) {
	var body *cp.Body
	switch {
	case bodyComp.Static:
		body = cp.NewStaticBody()
	case bodyComp.Disabled:
		body = cp.NewKinematicBody()
	default:
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		moment := cp.MomentForBox(mass, bodyComp.Width, bodyComp.Height)
		if bodyComp.Radius > 0 {
			moment = cp.MomentForCircle(mass, 0, bodyComp.Radius, cp.Vector{})
		}
		body = cp.NewBody(mass, moment)
	}
	body.SetPosition(cp.Vector{X: t.X, Y: t.Y})

	var shape *cp.Shape
	if bodyComp.Radius > 0 {
		shape = cp.NewCircle(body, bodyComp.Radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, bodyComp.Width, bodyComp.Height, 0)
	}
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	if bodyComp.Group != 0 {
		shape.SetFilter(cp.NewShapeFilter(bodyComp.Group, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES))
	}

	ps.space.AddBody(body)
	if !bodyComp.Disabled {
		ps.space.AddShape(shape)
	}

	bodyComp.Body = body
	bodyComp.Shape = shape
	if bodyComp.PendingImpulseX != 0 || bodyComp.PendingImpulseY != 0 {
		body.ApplyImpulseAtLocalPoint(cp.Vector{X: bodyComp.PendingImpulseX, Y: bodyComp.PendingImpulseY}, cp.Vector{})
		bodyComp.PendingImpulseX = 0
		bodyComp.PendingImpulseY = 0
	}
	ps.bodies[e] = bodyComp
}

func (ps *PhysicsSystem) detach(bodyComp *component.PhysicsBody) {
	if bodyComp == nil {
		return
	}
	if bodyComp.Shape != nil && ps.space.ContainsShape(bodyComp.Shape) {
		ps.space.RemoveShape(bodyComp.Shape)
	}
	if bodyComp.Body != nil && ps.space.ContainsBody(bodyComp.Body) {
		ps.space.RemoveBody(bodyComp.Body)
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(_ ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body.Body == nil || body.Disabled {
			return
		}
		pos := body.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
		t.Rotation = body.Body.Angle()
	})
}

// DisablePhysics detaches an equipped item from the space: kinematic
// body, colliders out, velocity zeroed. The item stops responding to
// gravity and contacts while carried.
func (ps *PhysicsSystem) DisablePhysics(w *ecs.World, e ecs.Entity) {
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	if !ok {
		return
	}
	body.Disabled = true
	if body.Body != nil {
		body.Body.SetVelocity(0, 0)
		body.Body.SetAngularVelocity(0)
		if body.Body.GetType() != cp.BODY_KINEMATIC {
			body.Body.SetType(cp.BODY_KINEMATIC)
		}
	}
	if body.Shape != nil && ps.space.ContainsShape(body.Shape) {
		ps.space.RemoveShape(body.Shape)
	}
}

// EnablePhysics reattaches a dropped item: dynamic body, colliders in,
// velocity zeroed so the drop starts at rest.
func (ps *PhysicsSystem) EnablePhysics(w *ecs.World, e ecs.Entity) {
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	if !ok {
		return
	}
	body.Disabled = false
	if body.Body != nil {
		if body.Body.GetType() != cp.BODY_DYNAMIC {
			body.Body.SetType(cp.BODY_DYNAMIC)
		}
		body.Body.SetVelocity(0, 0)
		body.Body.SetAngularVelocity(0)
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
			body.Body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
		}
	}
	if body.Shape != nil && !ps.space.ContainsShape(body.Shape) {
		ps.space.AddShape(body.Shape)
	}
}
