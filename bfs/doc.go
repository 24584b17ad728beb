// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over the adjacency.Graph
// capability, returning hop-count distances, parent links and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Edge weights are ignored; use package dijkstra for weighted distances.
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds the search.
//
// Determinism
//
//	Neighbors are enqueued in the order the provider yields them. For
//	core.View that is ascending edge handle, so the visit sequence is
//	reproducible.
//
// Complexity (V = NodeCount, E = edges reachable from start)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS[int64](g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(node, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil            if g is nil.
//   - ErrStartOutOfRange     if start is not a node of g.
//   - ErrOptionViolation     for an invalid Option (e.g. negative MaxDepth).
//   - ErrNeighborOutOfRange  if an edge leads outside the node range.
//   - ctx.Err() on cancellation, and wrapped OnVisit errors.
package bfs
