package system

import (
	"testing"

	"github.com/milk9111/gunhands/ecs"
	"github.com/milk9111/gunhands/ecs/component"
)

func newPellet(t *testing.T, w *ecs.World, x, y float64, lifeFrames int) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}))
	mustAdd(t, ecs.Add(w, e, component.ProjectileComponent, &component.Projectile{LifeFrames: lifeFrames}))
	return e
}

func TestProjectileSystemLifetime(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewProjectileSystem(1280, 720)

	p := newPellet(t, w, 100, 100, 3)

	sys.Update(w)
	sys.Update(w)
	if !w.IsAlive(p) {
		t.Fatalf("pellet should survive until its lifetime elapses")
	}
	sys.Update(w)
	if w.IsAlive(p) {
		t.Fatalf("pellet should despawn after its lifetime")
	}
}

func TestProjectileSystemOutOfArena(t *testing.T) {
	cases := []struct {
		name string
		x, y float64
		dead bool
	}{
		{"inside", 100, 100, false},
		{"far_left", -2000, 100, true},
		{"far_right", 4000, 100, true},
		{"far_down", 100, 3000, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			sys := NewProjectileSystem(1280, 720)
			p := newPellet(t, w, c.x, c.y, 0)

			sys.Update(w)
			if w.IsAlive(p) == c.dead {
				t.Fatalf("alive=%v, want dead=%v", w.IsAlive(p), c.dead)
			}
		})
	}
}

func TestWorldSpawnerInheritsOwnerGroup(t *testing.T) {
	w := ecs.NewWorld()
	sp := NewWorldSpawner()

	owner := w.CreateEntity()
	mustAdd(t, ecs.Add(w, owner, component.PhysicsBodyComponent, &component.PhysicsBody{Group: 42}))

	p := sp.Spawn(w, owner, 10, 20, 0.5, "sidearm")
	if !p.Valid() {
		t.Fatalf("spawn should return a live entity")
	}

	body, ok := ecs.Get(w, p, component.PhysicsBodyComponent)
	if !ok || body.Group != 42 {
		t.Fatalf("pellet should inherit the owner's collider group, got %+v", body)
	}
	proj, _ := ecs.Get(w, p, component.ProjectileComponent)
	if proj.Owner != uint64(owner) || proj.Kind != "sidearm" {
		t.Fatalf("projectile record mismatch: %+v", proj)
	}

	// launching before physics registration parks the impulse
	sp.Launch(w, p, 100)
	if body.PendingImpulseX == 0 {
		t.Fatalf("launch before registration should record a pending impulse")
	}
}
