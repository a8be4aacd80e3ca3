package ecs

import "github.com/milk9111/gunhands/ecs/component"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	// EventWeaponChanged fires whenever a side's active weapon binding
	// changes, or a hand-mounted weapon fires.
	EventWeaponChanged = "weapon_changed"
)

// WeaponChanged is the payload for EventWeaponChanged.
type WeaponChanged struct {
	Side component.Side
}

// EventQueue is a simple FIFO queue drained once per tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
