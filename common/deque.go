package common

// Deque is an ordered collection with queue semantics: index 0 is the
// front (active) element. Rotate moves the front to the back.
type Deque[T comparable] struct {
	items []T
}

// PushFront inserts v at the front.
func (d *Deque[T]) PushFront(v T) {
	d.items = append([]T{v}, d.items...)
}

// PushBack appends v at the back.
func (d *Deque[T]) PushBack(v T) {
	d.items = append(d.items, v)
}

// Front returns the front element.
func (d *Deque[T]) Front() (T, bool) {
	var zero T
	if d == nil || len(d.items) == 0 {
		return zero, false
	}
	return d.items[0], true
}

// Rotate moves the front element to the back. No-op with fewer than two
// elements.
func (d *Deque[T]) Rotate() {
	if d == nil || len(d.items) < 2 {
		return
	}
	front := d.items[0]
	copy(d.items, d.items[1:])
	d.items[len(d.items)-1] = front
}

// Remove deletes the first occurrence of v, preserving order. Returns
// false if v is absent.
func (d *Deque[T]) Remove(v T) bool {
	if d == nil {
		return false
	}
	for i, item := range d.items {
		if item == v {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether v is present.
func (d *Deque[T]) Contains(v T) bool {
	if d == nil {
		return false
	}
	for _, item := range d.items {
		if item == v {
			return true
		}
	}
	return false
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}

// Items returns a copy of the elements in order.
func (d *Deque[T]) Items() []T {
	if d == nil || len(d.items) == 0 {
		return nil
	}
	return append([]T(nil), d.items...)
}
