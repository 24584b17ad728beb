// SPDX-License-Identifier: MIT
package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablegraph/arena"
)

func TestArena_InsertAssignsSequentialHandles(t *testing.T) {
	a := arena.New[string](0)
	assert.Equal(t, arena.Handle(0), a.Insert("a"))
	assert.Equal(t, arena.Handle(1), a.Insert("b"))
	assert.Equal(t, arena.Handle(2), a.Insert("c"))
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 3, a.Span())
	assert.True(t, a.Dense())
}

func TestArena_RemoveReturnsPayload(t *testing.T) {
	a := arena.New[string](4)
	h := a.Insert("x")

	v, ok := a.Remove(h)
	require.True(t, ok)
	assert.Equal(t, "x", v)
	assert.False(t, a.Contains(h))
	assert.Equal(t, 0, a.Len())

	// Second removal signals absence and leaves state untouched.
	v, ok = a.Remove(h)
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.Equal(t, 0, a.Len())
}

func TestArena_RemoveUnknownHandles(t *testing.T) {
	a := arena.New[int](0)
	a.Insert(7)

	for _, h := range []arena.Handle{arena.Invalid, -42, 1, 100} {
		_, ok := a.Remove(h)
		assert.False(t, ok, "Remove(%d)", h)
		assert.False(t, a.Contains(h), "Contains(%d)", h)
		_, ok = a.Get(h)
		assert.False(t, ok, "Get(%d)", h)
		p, ok := a.Ref(h)
		assert.False(t, ok, "Ref(%d)", h)
		assert.Nil(t, p)
	}
	assert.Equal(t, 1, a.Len())
}

func TestArena_FreedHandleIsReused(t *testing.T) {
	a := arena.New[int](0)
	for i := 0; i < 5; i++ {
		a.Insert(i)
	}
	_, ok := a.Remove(2)
	require.True(t, ok)
	assert.False(t, a.Dense())

	h := a.Insert(99)
	assert.Equal(t, arena.Handle(2), h, "the only freed handle must be reused before growing")
	assert.Equal(t, 5, a.Span())
	assert.True(t, a.Dense())

	v, ok := a.Get(h)
	require.True(t, ok)
	assert.Equal(t, 99, v)
}

func TestArena_DenseIgnoresTrailingFreeHandles(t *testing.T) {
	a := arena.New[string](0)
	assert.True(t, a.Dense(), "empty arena")
	for _, v := range []string{"a", "b", "c"} {
		a.Insert(v)
	}

	_, ok := a.Remove(2)
	require.True(t, ok)
	assert.True(t, a.Dense(), "handles 0,1 remain")
	assert.Equal(t, []arena.Handle{0, 1}, a.Handles())

	_, ok = a.Remove(0)
	require.True(t, ok)
	assert.False(t, a.Dense(), "handle 1 alone leaves a hole at 0")

	_, ok = a.Remove(1)
	require.True(t, ok)
	assert.True(t, a.Dense(), "nothing live")
}

func TestArena_ReusedHandlesNeverCollide(t *testing.T) {
	a := arena.New[int](0)
	for i := 0; i < 16; i++ {
		a.Insert(i)
	}
	for _, h := range []arena.Handle{3, 7, 11, 0} {
		_, ok := a.Remove(h)
		require.True(t, ok)
	}

	seen := make(map[arena.Handle]bool)
	for _, h := range a.Handles() {
		seen[h] = true
	}
	for i := 0; i < 10; i++ {
		h := a.Insert(100 + i)
		assert.False(t, seen[h], "handle %d issued while live", h)
		seen[h] = true
	}
	assert.Equal(t, 22, a.Len())
	assert.Equal(t, 22, len(seen))
}

func TestArena_RefUpdatesInPlace(t *testing.T) {
	type payload struct{ n int }
	a := arena.New[payload](0)
	h := a.Insert(payload{n: 1})

	p, ok := a.Ref(h)
	require.True(t, ok)
	p.n = 42

	v, _ := a.Get(h)
	assert.Equal(t, 42, v.n)
}

func TestArena_HandlesAscending(t *testing.T) {
	a := arena.New[string](0)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		a.Insert(s)
	}
	a.Remove(1)
	a.Remove(3)

	assert.Equal(t, []arena.Handle{0, 2, 4}, a.Handles())

	var hs []arena.Handle
	var vs []string
	for h, v := range a.All() {
		hs = append(hs, h)
		vs = append(vs, v)
	}
	assert.Equal(t, []arena.Handle{0, 2, 4}, hs)
	assert.Equal(t, []string{"a", "c", "e"}, vs)
}

func TestArena_AllStopsEarly(t *testing.T) {
	a := arena.New[int](0)
	for i := 0; i < 10; i++ {
		a.Insert(i)
	}
	n := 0
	for range a.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestArena_Clear(t *testing.T) {
	a := arena.New[int](0)
	a.Insert(1)
	a.Insert(2)
	a.Remove(0)

	a.Clear()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, a.Span())
	assert.Empty(t, a.Handles())
	assert.Equal(t, arena.Handle(0), a.Insert(5))
}

func TestArena_NegativeCapacity(t *testing.T) {
	a := arena.New[int](-3)
	assert.Equal(t, arena.Handle(0), a.Insert(1))
}

func TestArena_CloneIsIndependent(t *testing.T) {
	a := arena.New[int](0)
	for i := 0; i < 4; i++ {
		a.Insert(i * 10)
	}
	a.Remove(1)

	c := a.Clone()
	assert.Equal(t, a.Handles(), c.Handles())
	assert.Equal(t, a.Len(), c.Len())

	// Both copies recycle the same freed handle.
	assert.Equal(t, a.Insert(7), c.Insert(7))

	c.Remove(0)
	assert.True(t, a.Contains(0), "mutating the clone must not touch the source")
	v, _ := a.Get(0)
	assert.Equal(t, 0, v)
}
