// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns handles in ascending order.

package core

// AddNode stores a node carrying weight w and returns its handle.
// It always succeeds. The handle may be one freed by an earlier RemoveNode.
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddNode(w N) Handle {
	return g.nodes.Insert(nodeSlot[N]{weight: w})
}

// RemoveNode removes the node h and every edge whose head or tail is h,
// returning the node's weight. It reports false, and changes nothing, when
// h is not a live node.
//
// Steps:
//  1. Snapshot the incident edge handles (out ∪ in; a self-loop is listed once).
//  2. Remove each edge, detaching it from the opposite endpoint.
//  3. Release the node handle.
//
// Complexity: O(Σ deg) over the removed edges' endpoints.
func (g *Graph[N, E]) RemoveNode(h Handle) (N, bool) {
	n, ok := g.nodes.Get(h)
	if !ok {
		var zero N
		return zero, false
	}

	incident := mergeUnique(n.out, n.in)
	for _, eh := range incident {
		g.RemoveEdge(eh)
	}
	g.nodes.Remove(h)

	if len(incident) > 0 {
		g.logger.Debug().
			Int("node", int(h)).
			Int("edges", len(incident)).
			Msg("cascaded edge removal")
	}

	return n.weight, true
}

// HasNode reports whether h is a live node handle.
func (g *Graph[N, E]) HasNode(h Handle) bool { return g.nodes.Contains(h) }

// Node returns the weight of node h.
func (g *Graph[N, E]) Node(h Handle) (N, bool) {
	n, ok := g.nodes.Get(h)

	return n.weight, ok
}

// Nodes returns all live node handles in ascending order.
// Complexity: O(NodeSpan/64 + V).
func (g *Graph[N, E]) Nodes() []Handle { return g.nodes.Handles() }

// Degree returns the number of edges entering and leaving node h.
//
// A self-loop counts once in each direction. For undirected graphs in+out
// is the classic degree with loops counted twice.
func (g *Graph[N, E]) Degree(h Handle) (in, out int, err error) {
	n, ok := g.nodes.Get(h)
	if !ok {
		return 0, 0, ErrNodeNotFound
	}

	return len(n.in), len(n.out), nil
}
