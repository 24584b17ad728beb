// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters: configuration flags, counts and a Stats snapshot.

package core

// Directed reports the construction-time directedness.
func (g *Graph[N, E]) Directed() bool { return g.directed }

// NodeCount returns the number of live nodes.
// Complexity: O(1).
func (g *Graph[N, E]) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of live edges.
// Complexity: O(1).
func (g *Graph[N, E]) EdgeCount() int { return g.edges.Len() }

// Dense reports whether the live node handles are exactly 0..NodeCount()-1,
// which is required for View.
func (g *Graph[N, E]) Dense() bool { return g.nodes.Dense() }

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Directed  bool
	NodeCount int
	EdgeCount int
	SelfLoops int
	NodeSpan  int // one past the highest node handle issued
	EdgeSpan  int // one past the highest edge handle issued
	Dense     bool
}

// Stats returns a GraphStats snapshot.
// Complexity: O(E) to count self-loops.
func (g *Graph[N, E]) Stats() GraphStats {
	st := GraphStats{
		Directed:  g.directed,
		NodeCount: g.nodes.Len(),
		EdgeCount: g.edges.Len(),
		NodeSpan:  g.nodes.Span(),
		EdgeSpan:  g.edges.Span(),
		Dense:     g.nodes.Dense(),
	}
	for _, e := range g.edges.All() {
		if e.head == e.tail {
			st.SelfLoops++
		}
	}

	return st
}
