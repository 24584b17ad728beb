// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: Dijkstra's single-source shortest-path run over adjacency.Graph.
//
// The engine sees only NodeCount and per-node outgoing edges; it knows
// nothing about how the provider stores them.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is extracted from the frontier at most once per improvement.
//   - Each successful relaxation costs one removal and one insertion, O(log F).
//   - Space: O(V) for the table and the frontier (at most one entry per node).
//
// Notes on implementation choices:
//
//   - The frontier is an ordered set (B-tree) keyed by (distance, node). On
//     improvement the stale entry is removed, so the frontier never holds
//     duplicates and needs no "visited" filter.
//   - Weights are validated lazily, edge by edge: NaN and negative weights
//     abort the run with ErrNaNWeight / ErrNegativeWeight.
//   - Integer overflow of accumulated distances is not detected.

package dijkstra

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/stablegraph/adjacency"
)

// ShortestPaths computes shortest distances from source to every node of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. 0 <= source < g.NodeCount() (ErrSourceOutOfRange).
//  3. Every edge met during the run must have a target in range
//     (ErrTargetOutOfRange) and a weight that is neither NaN (ErrNaNWeight)
//     nor negative (ErrNegativeWeight).
//
// On success the returned Table is fresh and owned by the caller; the source
// distance is the zero value of W. On error the Table is nil.
//
// Options:
//
//   - WithPredecessors(): record predecessors for Table.PathTo.
//   - WithLogger(l):      emit a debug summary of the run.
func ShortestPaths[W adjacency.Weight](g adjacency.Graph[W], source int, opts ...Option) (*Table[W], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d, node count %d", ErrSourceOutOfRange, source, n)
	}

	r := &runner[W]{
		g:     g,
		n:     n,
		table: newTable[W](n, source, cfg.Predecessors),
		front: newFrontier[W](),
		log:   cfg.Logger,
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	r.log.Debug().
		Int("source", source).
		Int("nodes", n).
		Int("reached", r.table.ReachedCount()).
		Int("pops", r.pops).
		Int("relaxations", r.relaxations).
		Msg("shortest paths computed")

	return r.table, nil
}

// runner holds the mutable state for a single run.
type runner[W adjacency.Weight] struct {
	g     adjacency.Graph[W] // read-only for the duration of the run
	n     int                // g.NodeCount() snapshot
	table *Table[W]          // result under construction
	front *frontier[W]       // unsettled (distance, node) candidates
	log   zerolog.Logger

	pops        int
	relaxations int
}

// init seeds the table and frontier with the source at zero cost.
func (r *runner[W]) init() {
	var zero W
	s := r.table.source
	r.table.dist[s] = zero
	r.table.reached.Set(uint(s))
	r.front.push(zero, s)
}

// process repeatedly settles the closest frontier node and relaxes its
// outgoing edges until the frontier is empty.
func (r *runner[W]) process() error {
	for {
		next, ok := r.front.popMin()
		if !ok {
			return nil
		}
		r.pops++
		if err := r.relax(next.node, next.dist); err != nil {
			return err
		}
	}
}

// relax examines every edge leaving u, settled at distance du.
// A neighbour v is updated when it is unreached or the candidate distance
// is strictly smaller than its recorded one; its stale frontier entry, if
// any, is replaced.
func (r *runner[W]) relax(u int, du W) error {
	t := r.table
	for e := range r.g.Adjacencies(u) {
		v, c := e.Target(), e.Weight()
		if v < 0 || v >= r.n {
			return fmt.Errorf("%w: edge %d→%d, node count %d", ErrTargetOutOfRange, u, v, r.n)
		}
		if adjacency.IsNaN(c) {
			return fmt.Errorf("%w: edge %d→%d", ErrNaNWeight, u, v)
		}
		if c < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, u, v, c)
		}

		alt := du + c
		if t.reached.Test(uint(v)) {
			if alt >= t.dist[v] {
				continue
			}
			r.front.remove(t.dist[v], v)
		}

		t.dist[v] = alt
		t.reached.Set(uint(v))
		if t.prev != nil {
			t.prev[v] = u
		}
		r.front.push(alt, v)
		r.relaxations++
	}

	return nil
}
