package core

import "iter"

// Arena is a fixed-capacity pool of entities. Slots are allocated once and
// tagged live or free; spawning into a full arena is refused.
type Arena[T any] struct {
	slots []T
	live  []bool
	count int
}

// NewArena allocates an arena with room for capacity entities.
func NewArena[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena[T]{
		slots: make([]T, capacity),
		live:  make([]bool, capacity),
	}
}

// Spawn stores v in the first free slot. ok is false when the arena is full.
func (a *Arena[T]) Spawn(v T) (slot int, ok bool) {
	if a.count == len(a.slots) {
		return -1, false
	}
	for i, used := range a.live {
		if !used {
			a.slots[i] = v
			a.live[i] = true
			a.count++
			return i, true
		}
	}
	return -1, false
}

// Despawn frees a slot. Freeing a free or unknown slot does nothing.
func (a *Arena[T]) Despawn(slot int) {
	if slot < 0 || slot >= len(a.live) || !a.live[slot] {
		return
	}
	var zero T
	a.slots[slot] = zero
	a.live[slot] = false
	a.count--
}

// Get returns the entity in a live slot.
func (a *Arena[T]) Get(slot int) (*T, bool) {
	if slot < 0 || slot >= len(a.live) || !a.live[slot] {
		return nil, false
	}
	return &a.slots[slot], true
}

// All iterates live slots in slot order. Despawning during iteration is allowed.
func (a *Arena[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range a.slots {
			if !a.live[i] {
				continue
			}
			if !yield(i, &a.slots[i]) {
				return
			}
		}
	}
}

// Len returns the number of live entities.
func (a *Arena[T]) Len() int {
	return a.count
}

// Cap returns the fixed capacity.
func (a *Arena[T]) Cap() int {
	return len(a.slots)
}

// Full reports whether a Spawn would be refused.
func (a *Arena[T]) Full() bool {
	return a.count == len(a.slots)
}

// Reset frees every slot without reallocating.
func (a *Arena[T]) Reset() {
	var zero T
	for i := range a.slots {
		a.slots[i] = zero
		a.live[i] = false
	}
	a.count = 0
}
