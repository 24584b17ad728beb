// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Adjacency capability providers backed by a Graph.
//   - View:    zero-copy, requires dense node handles.
//   - Project: dense copy for graphs with handle holes.

package core

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/stablegraph/adjacency"
)

// View exposes g through the adjacency.Graph capability without copying.
// Node handles are used directly as node indices, so they must be dense
// (g.Dense()); otherwise View returns ErrSparseHandles and the caller should
// use Project.
//
// Directed graphs yield the edges whose head is u. Undirected graphs yield
// every edge incident to u with Target set to the opposite endpoint; a
// self-loop is yielded once.
//
// The view reads g live. Removing a node afterwards may leave holes that
// the view does not detect until a consumer sees an out-of-range target.
func View[N any, W adjacency.Weight](g *Graph[N, W]) (adjacency.Graph[W], error) {
	if !g.nodes.Dense() {
		return nil, ErrSparseHandles
	}

	return &graphView[N, W]{g: g}, nil
}

// graphView adapts a dense Graph to adjacency.Graph.
type graphView[N any, W adjacency.Weight] struct {
	g *Graph[N, W]
}

func (v *graphView[N, W]) NodeCount() int { return v.g.nodes.Len() }

// Adjacencies yields the edges leaving u. One Arc is reused for the whole
// iteration, so a yielded Edge is valid only until the next step.
func (v *graphView[N, W]) Adjacencies(u int) iter.Seq[adjacency.Edge[W]] {
	return func(yield func(adjacency.Edge[W]) bool) {
		from := Handle(u)
		n, ok := v.g.nodes.Get(from)
		if !ok {
			return
		}
		arc := new(adjacency.Arc[W])
		emit := func(eh Handle) bool {
			e, _ := v.g.edges.Get(eh)
			arc.To, arc.Cost = int(e.tail), e.weight
			if e.head != from {
				arc.To = int(e.head)
			}
			return yield(arc)
		}

		if v.g.directed {
			for _, eh := range n.out {
				if !emit(eh) {
					return
				}
			}
			return
		}

		// Merge the sorted out and in lists; a self-loop sits in both.
		out, in := n.out, n.in
		i, j := 0, 0
		for i < len(out) || j < len(in) {
			var eh Handle
			switch {
			case j == len(in) || (i < len(out) && out[i] < in[j]):
				eh = out[i]
				i++
			case i == len(out) || in[j] < out[i]:
				eh = in[j]
				j++
			default:
				eh = out[i]
				i++
				j++
			}
			if !emit(eh) {
				return
			}
		}
	}
}

// Project copies g into a dense adjacency.List, mapping each edge payload to
// a cost with cost. Node index i of the result corresponds to handles[i];
// handles is ascending.
//
// cost may be nil when E and W are the same type; the payload is then the
// cost. A nil cost for any other E panics.
//
// Undirected edges become two opposite arcs (one arc for a self-loop).
// Complexity: O(NodeSpan + V + E).
func Project[N, E any, W adjacency.Weight](g *Graph[N, E], cost func(E) W) (*adjacency.List[W], []Handle) {
	if cost == nil {
		cost = identityCost[E, W]()
	}
	handles := g.nodes.Handles()
	index := make([]int, g.nodes.Span())
	for i, h := range handles {
		index[h] = i
	}

	list := adjacency.NewList[W](len(handles))
	for _, e := range g.edges.All() {
		from, to := index[e.head], index[e.tail]
		w := cost(e.weight)
		// Indices come from live handles, so AddArc cannot fail.
		_ = list.AddArc(from, to, w)
		if !g.directed && from != to {
			_ = list.AddArc(to, from, w)
		}
	}

	return list, handles
}

// identityCost returns a cost func that passes an E through as W.
// It panics unless E is W.
func identityCost[E any, W adjacency.Weight]() func(E) W {
	var zero E
	if _, ok := any(zero).(W); !ok {
		var w W
		panic(fmt.Sprintf("core: Project needs a cost func to map %T edges to %T", zero, w))
	}

	return func(e E) W { return any(e).(W) }
}
