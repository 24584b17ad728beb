// SPDX-License-Identifier: MIT
//
// File: arena.go
// Role: Arena-with-free-list storage: insert, remove, lookup and ordered enumeration.
// Determinism:
//   - Handles() and All() enumerate live handles in ascending order.
//   - Reuse order of freed handles is an implementation detail (LIFO today).

package arena

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// Handle identifies a payload inside one Arena.
type Handle int

// Invalid is never issued by Insert. Use it as the "no handle" marker.
const Invalid Handle = -1

// Arena maps handles to payloads of type T and recycles freed handles.
// The zero value is not usable; construct with New.
type Arena[T any] struct {
	slots []T            // slot h holds the payload of handle h when live
	live  *bitset.BitSet // occupancy bits, one per issued handle
	free  []Handle       // freed handles awaiting reuse
	count int            // number of live handles
}

// New returns an empty Arena with room for capacity payloads before the
// backing array grows. A negative capacity is treated as zero.
func New[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Arena[T]{
		slots: make([]T, 0, capacity),
		live:  bitset.New(uint(capacity)),
	}
}

// Insert stores v and returns its handle.
// A freed handle is reused when one is available; otherwise the arena grows
// by one slot and the new trailing handle is returned.
// Complexity: O(1) amortized.
func (a *Arena[T]) Insert(v T) Handle {
	var h Handle
	if n := len(a.free); n > 0 {
		h = a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[h] = v
	} else {
		h = Handle(len(a.slots))
		a.slots = append(a.slots, v)
	}
	a.live.Set(uint(h))
	a.count++

	return h
}

// Remove detaches the payload stored under h and frees h for reuse.
// It reports false, and changes nothing, when h is not live.
// Complexity: O(1).
func (a *Arena[T]) Remove(h Handle) (T, bool) {
	var zero T
	if !a.Contains(h) {
		return zero, false
	}
	v := a.slots[h]
	a.slots[h] = zero // drop references held by the payload
	a.live.Clear(uint(h))
	a.free = append(a.free, h)
	a.count--

	return v, true
}

// Contains reports whether h is currently live.
func (a *Arena[T]) Contains(h Handle) bool {
	if h < 0 || int(h) >= len(a.slots) {
		return false
	}

	return a.live.Test(uint(h))
}

// Get returns a copy of the payload stored under h.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	if !a.Contains(h) {
		var zero T
		return zero, false
	}

	return a.slots[h], true
}

// Ref returns a pointer to the payload stored under h for in-place updates.
// The pointer is invalidated by the next Insert that grows the arena.
func (a *Arena[T]) Ref(h Handle) (*T, bool) {
	if !a.Contains(h) {
		return nil, false
	}

	return &a.slots[h], true
}

// Len returns the number of live handles.
func (a *Arena[T]) Len() int { return a.count }

// Span returns one past the highest handle ever issued since the last Clear.
// Every live handle h satisfies 0 <= h < Span().
func (a *Arena[T]) Span() int { return len(a.slots) }

// Dense reports whether the live handles are exactly 0..Len()-1.
// Freed handles above the highest live one do not count as holes.
// Complexity: O((Span-Len)/64).
func (a *Arena[T]) Dense() bool {
	// Len distinct live handles fit in 0..Len()-1 iff none is >= Len().
	_, beyond := a.live.NextSet(uint(a.count))

	return !beyond
}

// Handles returns all live handles in ascending order.
// Complexity: O(Span/64 + Len).
func (a *Arena[T]) Handles() []Handle {
	out := make([]Handle, 0, a.count)
	for i, ok := a.live.NextSet(0); ok; i, ok = a.live.NextSet(i + 1) {
		out = append(out, Handle(i))
	}

	return out
}

// All yields every live (handle, payload) pair in ascending handle order.
// The arena must not be mutated while iterating.
func (a *Arena[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for i, ok := a.live.NextSet(0); ok; i, ok = a.live.NextSet(i + 1) {
			if !yield(Handle(i), a.slots[i]) {
				return
			}
		}
	}
}

// Clone returns an independent copy that issues the same handles in the
// same order as a would. Payloads are copied by assignment.
// Complexity: O(Span).
func (a *Arena[T]) Clone() *Arena[T] {
	out := &Arena[T]{
		slots: make([]T, len(a.slots), cap(a.slots)),
		live:  a.live.Clone(),
		free:  make([]Handle, len(a.free)),
		count: a.count,
	}
	copy(out.slots, a.slots)
	copy(out.free, a.free)

	return out
}

// Clear removes every payload and restarts the handle sequence at zero.
// Allocated capacity is retained.
func (a *Arena[T]) Clear() {
	clear(a.slots)
	a.slots = a.slots[:0]
	a.live.ClearAll()
	a.free = a.free[:0]
	a.count = 0
}
