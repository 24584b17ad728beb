// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & lookups: AddEdge/RemoveEdge/Edge/Edges/HasEdge.
//
// Determinism:
//   - Edges() returns handles in ascending order.
//   - Per-node incidence lists stay sorted, so neighbor and find queries
//     never need to sort.

package core

import (
	"fmt"

	"github.com/katalvlaran/stablegraph/arena"
)

// AddEdge creates an edge head→tail carrying weight w and returns its handle.
//
// Steps:
//  1. Reject when head or tail is not a live node (ErrInvalidEndpoint).
//  2. Store the edge in the edge arena.
//  3. Insert its handle into head.out and tail.in, keeping both sorted.
//
// Self-loops (head == tail) and parallel edges are accepted.
// On error the graph is unchanged.
// Complexity: O(deg(head) + deg(tail)) for the sorted inserts.
func (g *Graph[N, E]) AddEdge(w E, head, tail Handle) (Handle, error) {
	if !g.nodes.Contains(head) {
		g.logger.Debug().Int("head", int(head)).Msg("rejected edge: head not found")
		return arena.Invalid, fmt.Errorf("%w: head %d", ErrInvalidEndpoint, head)
	}
	if !g.nodes.Contains(tail) {
		g.logger.Debug().Int("tail", int(tail)).Msg("rejected edge: tail not found")
		return arena.Invalid, fmt.Errorf("%w: tail %d", ErrInvalidEndpoint, tail)
	}

	eh := g.edges.Insert(edgeSlot[E]{weight: w, head: head, tail: tail})

	hn, _ := g.nodes.Ref(head)
	hn.out = insertSorted(hn.out, eh)
	tn, _ := g.nodes.Ref(tail)
	tn.in = insertSorted(tn.in, eh)

	return eh, nil
}

// RemoveEdge removes edge h and returns its weight.
// It reports false, and changes nothing, when h is not a live edge.
// Complexity: O(deg(head) + deg(tail)).
func (g *Graph[N, E]) RemoveEdge(h Handle) (E, bool) {
	e, ok := g.edges.Remove(h)
	if !ok {
		var zero E
		return zero, false
	}
	if hn, ok := g.nodes.Ref(e.head); ok {
		hn.out = removeSorted(hn.out, h)
	}
	if tn, ok := g.nodes.Ref(e.tail); ok {
		tn.in = removeSorted(tn.in, h)
	}

	return e.weight, true
}

// Edge returns a snapshot of edge h.
func (g *Graph[N, E]) Edge(h Handle) (Edge[E], bool) {
	e, ok := g.edges.Get(h)
	if !ok {
		return Edge[E]{Handle: arena.Invalid, Head: arena.Invalid, Tail: arena.Invalid}, false
	}

	return Edge[E]{Handle: h, Head: e.head, Tail: e.tail, Weight: e.weight}, true
}

// HasEdge reports whether at least one edge joins head to tail
// (either way round when the graph is undirected).
func (g *Graph[N, E]) HasEdge(head, tail Handle) bool {
	_, ok := g.FindEdge(head, tail)

	return ok
}

// Edges returns all live edge handles in ascending order.
// Complexity: O(EdgeSpan/64 + E).
func (g *Graph[N, E]) Edges() []Handle { return g.edges.Handles() }
