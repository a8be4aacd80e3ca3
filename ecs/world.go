package ecs

import "github.com/milk9111/gunhands/ecs/component"

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// World owns entities, component storage, and the event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes all components and invalidates the handle.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(int(e.id()))
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.alive()
}

func (w *World) store(id component.ComponentID) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent inserts or replaces a component value for an entity.
func (w *World) AddComponent(e Entity, kind component.Kind, v any) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if kind == nil || kind.KindID() == 0 {
		return component.ErrInvalidComponentKind
	}
	w.store(kind.KindID()).Set(int(e.id()), v)
	return nil
}

// GetComponent returns the stored component value for an entity.
func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	if w == nil || kind == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	s, ok := w.stores[kind.KindID()]
	if !ok {
		return nil, false
	}
	v := s.Get(int(e.id()))
	if v == nil {
		return nil, false
	}
	return v, true
}

// HasComponent reports whether the entity has the component.
func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	_, ok := w.GetComponent(e, kind)
	return ok
}

// RemoveComponent deletes the component from the entity if present.
func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	if w == nil || kind == nil || !w.entities.isAlive(e) {
		return false
	}
	s, ok := w.stores[kind.KindID()]
	if !ok {
		return false
	}
	return s.Remove(int(e.id()))
}

// Query returns the entities holding every listed component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	// iterate the smallest store
	var base *SparseSet
	for _, k := range kinds {
		s, ok := w.stores[k.KindID()]
		if !ok {
			return nil
		}
		if base == nil || s.Len() < base.Len() {
			base = s
		}
	}
	out := make([]Entity, 0, base.Len())
	for _, id := range append([]int(nil), base.Entities()...) {
		match := true
		for _, k := range kinds {
			if !w.stores[k.KindID()].Has(id) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		e := makeEntity(entityID(id), w.entities.gen[id-1])
		if w.entities.isAlive(e) {
			out = append(out, e)
		}
	}
	return out
}

// First returns an arbitrary entity holding the component kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
