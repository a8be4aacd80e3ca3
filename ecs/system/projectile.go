package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/gunhands/ecs"
	"github.com/milk9111/gunhands/ecs/component"
)

const (
	projectileRadius     = 3.0
	projectileMass       = 0.2
	projectileLifeFrames = 3 * 60
)

// WorldSpawner is the ProjectileSpawner backed by the ECS and the
// physics space. Spawned pellets inherit the owner's collision filter
// group so they never collide with the weapon that fired them.
type WorldSpawner struct{}

func NewWorldSpawner() *WorldSpawner {
	return &WorldSpawner{}
}

func (sp *WorldSpawner) Spawn(w *ecs.World, owner ecs.Entity, x, y, angle float64, kind string) ecs.Entity {
	if w == nil {
		return 0
	}

	var group uint
	if ownerBody, ok := ecs.Get(w, owner, component.PhysicsBodyComponent); ok {
		group = ownerBody.Group
	}

	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1, Rotation: angle})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Radius: projectileRadius,
		Mass:   projectileMass,
		Group:  group,
	})
	_ = ecs.Add(w, e, component.SpriteComponent, &component.Sprite{})
	_ = ecs.Add(w, e, component.ProjectileComponent, &component.Projectile{
		Owner:      uint64(owner),
		Kind:       kind,
		LifeFrames: projectileLifeFrames,
	})
	return e
}

func (sp *WorldSpawner) Launch(w *ecs.World, p ecs.Entity, force float64) {
	body, ok := ecs.Get(w, p, component.PhysicsBodyComponent)
	if !ok {
		return
	}
	t, ok := ecs.Get(w, p, component.TransformComponent)
	if !ok {
		return
	}
	if body.Body == nil {
		// Body not registered with the space yet; the physics system
		// picks the impulse up from PendingImpulse on registration.
		body.PendingImpulseX = math.Cos(t.Rotation) * force
		body.PendingImpulseY = math.Sin(t.Rotation) * force
		return
	}
	body.Body.ApplyImpulseAtLocalPoint(cp.Vector{X: math.Cos(t.Rotation) * force, Y: math.Sin(t.Rotation) * force}, cp.Vector{})
}

// ProjectileSystem ages pellets and despawns them when their lifetime
// expires or they leave the arena.
type ProjectileSystem struct {
	ArenaWidth  float64
	ArenaHeight float64
}

func NewProjectileSystem(arenaWidth, arenaHeight float64) *ProjectileSystem {
	return &ProjectileSystem{ArenaWidth: arenaWidth, ArenaHeight: arenaHeight}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.ProjectileComponent, component.TransformComponent, func(e ecs.Entity, p *component.Projectile, t *component.Transform) {
		p.AgeFrames++
		if p.LifeFrames > 0 && p.AgeFrames >= p.LifeFrames {
			w.DestroyEntity(e)
			return
		}
		if s.ArenaWidth > 0 && (t.X < -s.ArenaWidth || t.X > 2*s.ArenaWidth) {
			w.DestroyEntity(e)
			return
		}
		if s.ArenaHeight > 0 && (t.Y < -s.ArenaHeight || t.Y > 2*s.ArenaHeight) {
			w.DestroyEntity(e)
		}
	})
}
