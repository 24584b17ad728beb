// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths on any graph that
// satisfies adjacency.Graph, with non-negative edge weights.
//
// Overview:
//
//   - The engine depends only on the adjacency capability: NodeCount and,
//     per node, a sequence of edges exposing Target and Weight.
//   - adjacency.List and core.View / core.Project are ready-made providers.
//   - Each call returns a fresh Table; the engine keeps no state between calls.
//
// Frontier ordering:
//
//   - Unsettled nodes live in an ordered set keyed by (distance, node).
//   - Equal distances are told apart by node number, so two siblings reached
//     at the same cost are both kept and both settled.
//
// Error handling (sentinel errors, test with errors.Is):
//
//   - ErrNilGraph:          g is nil.
//   - ErrSourceOutOfRange:  source is not in 0..NodeCount()-1.
//   - ErrTargetOutOfRange:  an edge leads outside 0..NodeCount()-1.
//   - ErrNegativeWeight:    an edge weight is below zero.
//   - ErrNaNWeight:         an edge weight is NaN.
//   - ErrPredecessorsDisabled, ErrUnreachable, ErrNodeOutOfRange: Table.PathTo.
//
// Example:
//
//	g := adjacency.NewList[uint32](3)
//	_ = g.AddArc(0, 1, 4)
//	_ = g.AddArc(1, 2, 1)
//	t, err := dijkstra.ShortestPaths[uint32](g, 0, dijkstra.WithPredecessors())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, ok := t.Distance(2)   // 5, true
//	path, _ := t.PathTo(2)   // [0 1 2]
//
// Thread safety:
//
//   - The graph must not be mutated while ShortestPaths runs. Concurrent
//     calls on the same unmodified graph are safe if the provider's reads are.
package dijkstra
