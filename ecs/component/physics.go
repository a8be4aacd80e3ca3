package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Group carries the owner-exclusion collision filter group; bodies and
// projectiles sharing a nonzero group never collide with each other.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Width      float64
	Height     float64
	Radius     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	Group      uint
	Static     bool

	// Disabled marks the body as detached from the space (kinematic, no
	// colliders). The loadout system flips this when items are equipped
	// or dropped; the physics system applies it.
	Disabled bool

	// PendingImpulseX/Y hold a launch impulse requested before the body
	// was registered with the space. Applied once on registration.
	PendingImpulseX float64
	PendingImpulseY float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
