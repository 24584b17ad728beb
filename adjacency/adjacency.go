// SPDX-License-Identifier: MIT

// Package adjacency defines the minimal capability a graph representation
// must offer to be consumed by shortest-path algorithms, together with List,
// a plain array-of-adjacency-lists implementation.
//
// A provider exposes NodeCount and, for each node u in 0..NodeCount()-1, the
// sequence of outgoing edges of u. Every edge reports its Target node and its
// Weight. Nothing else about the provider is visible to consumers.
//
// Node numbering must be dense: every target returned by Adjacencies lies in
// 0..NodeCount()-1. Containers whose handles may have holes must be projected
// into a dense form first (see core.Project).
package adjacency

import (
	"errors"
	"iter"

	"golang.org/x/exp/constraints"
)

// ErrNodeOutOfRange indicates a node index outside 0..NodeCount()-1.
var ErrNodeOutOfRange = errors.New("adjacency: node index out of range")

// Weight is the set of edge cost types accepted by shortest-path consumers.
// The zero value is the additive identity (zero cost). Floating-point
// weights must not be NaN, since consumers rely on a total order.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Edge is one outgoing edge as seen by a consumer.
type Edge[W Weight] interface {
	// Target is the node index the edge leads to.
	Target() int
	// Weight is the cost of traversing the edge.
	Weight() W
}

// Graph is the adjacency capability.
type Graph[W Weight] interface {
	// NodeCount returns the number of nodes, numbered 0..NodeCount()-1.
	NodeCount() int
	// Adjacencies yields the outgoing edges of node u. A yielded Edge may
	// be reused by the provider and must not be kept past the next step.
	Adjacencies(u int) iter.Seq[Edge[W]]
}

// IsNaN reports whether w is a floating-point NaN. Always false for integers.
func IsNaN[W Weight](w W) bool {
	return w != w
}
