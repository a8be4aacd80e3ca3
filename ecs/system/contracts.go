package system

import (
	"github.com/milk9111/gunhands/ecs"
	"github.com/milk9111/gunhands/ecs/component"
)

// Animator state names for the hand rigs.
const (
	HandStateIdle  = component.HandStateIdle
	HandStateReady = component.HandStateReady
)

// AnimatorQuery reports whether a side's animator is in a named state.
type AnimatorQuery interface {
	InState(w *ecs.World, side component.Side, state string) bool
}

// AnimatorTrigger forces a side's animator into a named state.
type AnimatorTrigger interface {
	SetTrigger(w *ecs.World, side component.Side, state string)
}

// ShootingReset aborts any in-progress fire state for a side. Called
// alongside a forced Idle so a half-held trigger doesn't carry over.
type ShootingReset interface {
	ResetShooting(w *ecs.World, side component.Side)
}

// ColliderToggle detaches or reattaches an entity's physics interactions.
type ColliderToggle interface {
	DisablePhysics(w *ecs.World, e ecs.Entity)
	EnablePhysics(w *ecs.World, e ecs.Entity)
}

// ProjectileSpawner creates and launches pellet entities. The owner's
// collider group is excluded from collisions with the spawned pellet.
type ProjectileSpawner interface {
	Spawn(w *ecs.World, owner ecs.Entity, x, y, angle float64, kind string) ecs.Entity
	Launch(w *ecs.World, p ecs.Entity, force float64)
}
