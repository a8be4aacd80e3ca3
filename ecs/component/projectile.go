package component

// Projectile marks a live pellet entity.
type Projectile struct {
	Owner      uint64
	Kind       string
	AgeFrames  int
	LifeFrames int
}

var ProjectileComponent = NewComponent[Projectile]()
