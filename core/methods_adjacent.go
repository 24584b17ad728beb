// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency queries (FindEdges family, Neighbors) and the sorted
//       incidence-list helpers they rely on.
//
// Determinism:
//   - Every query returns edge handles in strictly ascending order.

package core

import (
	"slices"

	"github.com/katalvlaran/stablegraph/arena"
)

// FindEdges returns the handles of every edge joining head to tail, in
// ascending order. In an undirected graph edges joining tail to head match
// too. The result is nil when nothing matches or either node is missing.
func (g *Graph[N, E]) FindEdges(head, tail Handle) []Handle {
	return g.FindNEdges(0, head, tail)
}

// FindEdge returns the lowest handle of an edge joining head to tail
// (either way round when undirected).
func (g *Graph[N, E]) FindEdge(head, tail Handle) (Handle, bool) {
	found := g.FindNEdges(1, head, tail)
	if len(found) == 0 {
		return arena.Invalid, false
	}

	return found[0], true
}

// FindNEdges returns the first n handles FindEdges would return; n == 0
// means no limit. Scanning stops as soon as n matches have been collected.
//
// Implementation:
//   - A directed match head→tail is looked up in the shorter of head.out and
//     tail.in; both are sorted, so matches come out ascending.
//   - Undirected graphs merge the head→tail and tail→head match streams,
//     emitting a handle present in both (a self-loop) once.
//
// Complexity: O(min(deg(head), deg(tail))) per direction, less when n is small.
func (g *Graph[N, E]) FindNEdges(n int, head, tail Handle) []Handle {
	if n < 0 || !g.nodes.Contains(head) || !g.nodes.Contains(tail) {
		return nil
	}

	fwd := g.pairCursor(head, tail)
	if g.directed {
		var out []Handle
		for h, ok := fwd.next(); ok; h, ok = fwd.next() {
			out = append(out, h)
			if len(out) == n {
				break
			}
		}
		return out
	}

	return mergeCursors(fwd, g.pairCursor(tail, head), n)
}

// Neighbors returns the edges leaving node h in ascending handle order.
//
// Directed graphs report edges whose head is h. Undirected graphs report
// every incident edge, oriented so that Head == h; a self-loop appears once.
func (g *Graph[N, E]) Neighbors(h Handle) ([]Edge[E], error) {
	n, ok := g.nodes.Get(h)
	if !ok {
		return nil, ErrNodeNotFound
	}

	handles := n.out
	if !g.directed {
		handles = mergeUnique(n.out, n.in)
	}
	out := make([]Edge[E], 0, len(handles))
	for _, eh := range handles {
		out = append(out, g.orientedEdge(eh, h))
	}

	return out, nil
}

// orientedEdge returns edge eh as seen from endpoint from: Head is from.
func (g *Graph[N, E]) orientedEdge(eh, from Handle) Edge[E] {
	e, _ := g.edges.Get(eh)
	out := Edge[E]{Handle: eh, Head: e.head, Tail: e.tail, Weight: e.weight}
	if e.head != from {
		out.Head, out.Tail = e.tail, e.head
	}

	return out
}

// pairCursor returns a cursor over edges head→tail, scanning whichever of
// head.out or tail.in is shorter.
func (g *Graph[N, E]) pairCursor(head, tail Handle) *cursor {
	hn, _ := g.nodes.Get(head)
	tn, _ := g.nodes.Get(tail)
	list := hn.out
	if len(tn.in) < len(list) {
		list = tn.in
	}

	return &cursor{
		list: list,
		keep: func(eh Handle) bool {
			e, _ := g.edges.Get(eh)
			return e.head == head && e.tail == tail
		},
	}
}

// cursor walks a sorted handle list, skipping handles keep rejects.
type cursor struct {
	list []Handle
	i    int
	keep func(Handle) bool
}

func (c *cursor) next() (Handle, bool) {
	for c.i < len(c.list) {
		h := c.list[c.i]
		c.i++
		if c.keep(h) {
			return h, true
		}
	}

	return arena.Invalid, false
}

// mergeCursors merges two ascending cursors into one ascending slice without
// duplicates, stopping after n items (n == 0: no limit).
func mergeCursors(a, b *cursor, n int) []Handle {
	var out []Handle
	x, okX := a.next()
	y, okY := b.next()
	for (okX || okY) && (n == 0 || len(out) < n) {
		switch {
		case okX && (!okY || x < y):
			out = append(out, x)
			x, okX = a.next()
		case okY && (!okX || y < x):
			out = append(out, y)
			y, okY = b.next()
		default: // x == y
			out = append(out, x)
			x, okX = a.next()
			y, okY = b.next()
		}
	}

	return out
}

// mergeUnique merges two ascending lists into a fresh ascending list,
// keeping one copy of handles present in both.
func mergeUnique(a, b []Handle) []Handle {
	out := make([]Handle, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case b[j] < a[i]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}

// insertSorted inserts h into the ascending list s.
func insertSorted(s []Handle, h Handle) []Handle {
	i, _ := slices.BinarySearch(s, h)

	return slices.Insert(s, i, h)
}

// removeSorted deletes h from the ascending list s if present.
func removeSorted(s []Handle, h Handle) []Handle {
	i, found := slices.BinarySearch(s, h)
	if !found {
		return s
	}

	return slices.Delete(s, i, i+1)
}
