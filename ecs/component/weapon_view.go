package component

// WeaponView is the per-side rendering and fire-control facade. It is
// bound to at most one WeaponStats at a time, always the stats of the
// front item in the side's loadout. Only the loadout system writes the
// binding.
type WeaponView struct {
	Side  Side
	Stats *WeaponStats

	// Owner is the equipped item entity the binding came from (raw
	// entity value). Projectiles spawned through the view exclude the
	// owner's collider group.
	Owner uint64

	// SlotIDs lists the entities whose sprites receive the active item's
	// material (raw entity values; components cannot import ecs).
	SlotIDs []uint64

	// ClipCached is set once the view's audio slot has been pointed at
	// the bound stats' clip.
	ClipCached bool
}

var WeaponViewComponent = NewComponent[WeaponView]()
