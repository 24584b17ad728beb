// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
//
// Determinism:
//   - Clone preserves every node and edge handle and the free-handle pools,
//     so the clone hands out the same next handles as the source.

package core

import "slices"

// Clone returns an independent copy of g with identical handles.
// Node and edge payloads are copied by assignment (shallow for pointers,
// maps and slices inside N or E).
// Complexity: O(NodeSpan + EdgeSpan + E).
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	out := &Graph[N, E]{
		directed: g.directed,
		logger:   g.logger,
		nodes:    g.nodes.Clone(),
		edges:    g.edges.Clone(),
	}
	for _, h := range out.nodes.Handles() {
		n, _ := out.nodes.Ref(h)
		n.out = slices.Clone(n.out)
		n.in = slices.Clone(n.in)
	}

	return out
}

// Clear removes all nodes and edges and restarts both handle sequences at
// zero. Directedness and the logger are preserved.
func (g *Graph[N, E]) Clear() {
	g.edges.Clear()
	g.nodes.Clear()
}
