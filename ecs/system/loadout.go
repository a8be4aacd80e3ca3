package system

import (
	"math"

	"github.com/milk9111/gunhands/common"
	"github.com/milk9111/gunhands/ecs"
	"github.com/milk9111/gunhands/ecs/component"
)

const pickupRadius = 28.0

// LoadoutSystem is the hand inventory manager. It owns the per-side item
// queues (front = active), performs swap/drop/pickup, and is the only
// writer of the per-side weapon view bindings.
type LoadoutSystem struct {
	sides map[component.Side]*common.Deque[ecs.Entity]

	animQuery   AnimatorQuery
	animTrigger AnimatorTrigger
	shootReset  ShootingReset
	physics     ColliderToggle

	initializing bool
}

func NewLoadoutSystem(animQuery AnimatorQuery, animTrigger AnimatorTrigger, shootReset ShootingReset, physics ColliderToggle) *LoadoutSystem {
	return &LoadoutSystem{
		sides:       make(map[component.Side]*common.Deque[ecs.Entity]),
		animQuery:   animQuery,
		animTrigger: animTrigger,
		shootReset:  shootReset,
		physics:     physics,
	}
}

func (s *LoadoutSystem) queue(side component.Side) *common.Deque[ecs.Entity] {
	q, ok := s.sides[side]
	if !ok {
		q = &common.Deque[ecs.Entity]{}
		s.sides[side] = q
	}
	return q
}

// BuildInitial runs fn with startup-initialization semantics: AddItem
// calls made inside it skip the forced-Idle animation reset.
func (s *LoadoutSystem) BuildInitial(fn func()) {
	if s == nil || fn == nil {
		return
	}
	s.initializing = true
	fn()
	s.initializing = false
}

// AddItem equips an item on its side, at the front of the queue. Adding
// a second item of a kind already equipped on that side is a no-op; the
// first-equipped item of a kind wins until explicitly removed. The
// return value reports whether the item was equipped.
func (s *LoadoutSystem) AddItem(w *ecs.World, item ecs.Entity) bool {
	hand, ok := ecs.Get(w, item, component.HandComponent)
	if !ok {
		return false
	}
	q := s.queue(hand.Side)
	if q.Contains(item) {
		return false
	}
	for _, other := range q.Items() {
		oh, ok := ecs.Get(w, other, component.HandComponent)
		if ok && oh.Kind == hand.Kind {
			return false
		}
	}

	q.PushFront(item)
	if s.physics != nil {
		s.physics.DisablePhysics(w, item)
	}
	s.parkInPool(w, item)
	s.ActivateCurrent(w, hand.Side)

	if !s.initializing {
		if s.animQuery == nil || !s.animQuery.InState(w, hand.Side, HandStateIdle) {
			if s.animTrigger != nil {
				s.animTrigger.SetTrigger(w, hand.Side, HandStateIdle)
			}
			if s.shootReset != nil {
				s.shootReset.ResetShooting(w, hand.Side)
			}
		}
	}
	return true
}

// RemoveItem drops an item from its side. Removing an item that isn't
// equipped is a no-op. A weapon-change notification fires for the side
// whether or not the active binding changed.
func (s *LoadoutSystem) RemoveItem(w *ecs.World, item ecs.Entity) bool {
	hand, ok := ecs.Get(w, item, component.HandComponent)
	if !ok {
		return false
	}
	q := s.queue(hand.Side)
	if !q.Remove(item) {
		return false
	}

	if s.physics != nil {
		s.physics.EnablePhysics(w, item)
	}
	s.releaseAtDropPoint(w, item)

	front, hasFront := q.Front()
	_, view, hasView := viewEntity(w, hand.Side)
	switch {
	case !hasFront:
		s.clearView(w, hand.Side)
		s.notifyChange(w, hand.Side)
	case hasView && view.Stats != frontStats(w, front):
		s.ActivateCurrent(w, hand.Side)
	default:
		s.notifyChange(w, hand.Side)
	}
	return true
}

// Swap rotates the side's front item to the back and activates the new
// front. With zero or one item equipped it is a no-op.
func (s *LoadoutSystem) Swap(w *ecs.World, side component.Side) {
	q := s.queue(side)
	if q.Len() < 2 {
		return
	}
	q.Rotate()
	s.ActivateCurrent(w, side)
}

// ActivateCurrent binds the side's weapon view to the front item's
// stats, enables the view renderer, applies the item material across
// every sprite slot, and fires a weapon-change notification.
func (s *LoadoutSystem) ActivateCurrent(w *ecs.World, side component.Side) {
	front, ok := s.queue(side).Front()
	if !ok {
		return
	}
	viewEnt, view, ok := viewEntity(w, side)
	if !ok {
		return
	}

	stats, _ := ecs.Get(w, front, component.WeaponStatsComponent)
	bindViewStats(w, viewEnt, view, stats)
	view.Owner = uint64(front)

	if sprite, ok := ecs.Get(w, viewEnt, component.SpriteComponent); ok {
		sprite.Disabled = false
	}
	if stats != nil {
		applyViewMaterial(w, view, stats.Material)
	}
	s.notifyChange(w, side)
}

// Current returns the active item for a side.
func (s *LoadoutSystem) Current(side component.Side) (ecs.Entity, bool) {
	return s.queue(side).Front()
}

// Items returns the side's equipped items in queue order.
func (s *LoadoutSystem) Items(side component.Side) []ecs.Entity {
	return s.queue(side).Items()
}

// Update consumes the tick's sampled input: swap edges (modifier held)
// dispatch at most one Swap per side per tick, drop edges remove the
// active item, and loose items near the player are picked up.
func (s *LoadoutSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, player, component.InputComponent)
	if !ok {
		return
	}

	for _, side := range component.Sides {
		if input.SwapModifierHeld && input.SwapPressed(side) {
			s.Swap(w, side)
		}
		if input.DropPressed(side) {
			if front, ok := s.Current(side); ok {
				s.RemoveItem(w, front)
			}
		}
	}

	s.collectNearby(w, player)
}

func (s *LoadoutSystem) collectNearby(w *ecs.World, player ecs.Entity) {
	pt, ok := ecs.Get(w, player, component.TransformComponent)
	if !ok {
		return
	}
	ecs.ForEach2(w, component.HandComponent, component.TransformComponent, func(e ecs.Entity, _ *component.Hand, t *component.Transform) {
		if s.equipped(e) {
			return
		}
		if math.Hypot(t.X-pt.X, t.Y-pt.Y) > pickupRadius {
			return
		}
		s.AddItem(w, e)
	})
}

func (s *LoadoutSystem) equipped(e ecs.Entity) bool {
	for _, q := range s.sides {
		if q.Contains(e) {
			return true
		}
	}
	return false
}

// parkInPool re-parents an equipped item into the pooled holding
// transform and zeroes its local transform.
func (s *LoadoutSystem) parkInPool(w *ecs.World, item ecs.Entity) {
	t, ok := ecs.Get(w, item, component.TransformComponent)
	if !ok {
		return
	}
	if pool, found := w.First(component.PoolTagComponent.Kind()); found {
		if pt, ok := ecs.Get(w, pool, component.TransformComponent); ok {
			t.X = pt.X
			t.Y = pt.Y
		}
	}
	t.Rotation = 0
	t.ScaleX = 1
	t.ScaleY = 1
}

// releaseAtDropPoint moves a dropped item to the drop spawn point.
func (s *LoadoutSystem) releaseAtDropPoint(w *ecs.World, item ecs.Entity) {
	t, ok := ecs.Get(w, item, component.TransformComponent)
	if !ok {
		return
	}
	if dp, found := w.First(component.DropPointTagComponent.Kind()); found {
		if dt, ok := ecs.Get(w, dp, component.TransformComponent); ok {
			t.X = dt.X
			t.Y = dt.Y
		}
	}
	t.Rotation = 0
}

func (s *LoadoutSystem) clearView(w *ecs.World, side component.Side) {
	viewEnt, view, ok := viewEntity(w, side)
	if !ok {
		return
	}
	bindViewStats(w, viewEnt, view, nil)
	view.Owner = 0
	if sprite, ok := ecs.Get(w, viewEnt, component.SpriteComponent); ok {
		sprite.Disabled = true
		sprite.Image = nil
	}
}

func (s *LoadoutSystem) notifyChange(w *ecs.World, side component.Side) {
	w.Events().Push(ecs.Event{Type: ecs.EventWeaponChanged, Data: ecs.WeaponChanged{Side: side}})
}

func frontStats(w *ecs.World, item ecs.Entity) *component.WeaponStats {
	stats, ok := ecs.Get(w, item, component.WeaponStatsComponent)
	if !ok {
		return nil
	}
	return stats
}
