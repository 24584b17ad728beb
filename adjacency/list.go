// SPDX-License-Identifier: MIT
//
// File: list.go
// Role: Array-of-adjacency-lists provider of the Graph capability.

package adjacency

import (
	"fmt"
	"iter"
)

// Arc is a stored outgoing edge: destination index and cost.
type Arc[W Weight] struct {
	To   int
	Cost W
}

// Target implements Edge.
func (a *Arc[W]) Target() int { return a.To }

// Weight implements Edge.
func (a *Arc[W]) Weight() W { return a.Cost }

// List is a directed weighted graph stored as one arc slice per node.
// Nodes are numbered 0..NodeCount()-1 and are never removed, so the
// numbering is always dense.
type List[W Weight] struct {
	arcs  [][]Arc[W]
	count int
}

// NewList returns a List with n isolated nodes. A negative n is treated as zero.
func NewList[W Weight](n int) *List[W] {
	if n < 0 {
		n = 0
	}

	return &List[W]{arcs: make([][]Arc[W], n)}
}

// AddNode appends an isolated node and returns its index.
func (l *List[W]) AddNode() int {
	l.arcs = append(l.arcs, nil)

	return len(l.arcs) - 1
}

// AddArc appends the directed arc from→to with cost w.
// Parallel arcs and self-loops are kept as given.
func (l *List[W]) AddArc(from, to int, w W) error {
	if from < 0 || from >= len(l.arcs) {
		return fmt.Errorf("%w: from=%d", ErrNodeOutOfRange, from)
	}
	if to < 0 || to >= len(l.arcs) {
		return fmt.Errorf("%w: to=%d", ErrNodeOutOfRange, to)
	}
	l.arcs[from] = append(l.arcs[from], Arc[W]{To: to, Cost: w})
	l.count++

	return nil
}

// NodeCount implements Graph.
func (l *List[W]) NodeCount() int { return len(l.arcs) }

// ArcCount returns the number of stored arcs.
func (l *List[W]) ArcCount() int { return l.count }

// Arcs returns the arcs leaving u in insertion order. The slice is owned
// by the List and must not be modified.
func (l *List[W]) Arcs(u int) []Arc[W] {
	if u < 0 || u >= len(l.arcs) {
		return nil
	}

	return l.arcs[u]
}

// Adjacencies implements Graph. An out-of-range u yields nothing.
func (l *List[W]) Adjacencies(u int) iter.Seq[Edge[W]] {
	return func(yield func(Edge[W]) bool) {
		if u < 0 || u >= len(l.arcs) {
			return
		}
		out := l.arcs[u]
		for i := range out {
			if !yield(&out[i]) {
				return
			}
		}
	}
}
