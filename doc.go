// SPDX-License-Identifier: MIT

// Package stablegraph is an in-memory weighted graph with stable integer
// handles, plus shortest-path and traversal algorithms written against a
// minimal adjacency capability rather than a concrete container.
//
// Subpackages:
//
//	arena/     - handle-indexed store with free-list reuse of removed slots
//	core/      - Graph[N, E]: node/edge CRUD on two arenas, cascading removal,
//	             sorted per-node edge lists, directed or undirected
//	adjacency/ - the Graph[W] capability (NodeCount + Adjacencies) and List[W]
//	dijkstra/  - single-source shortest paths over adjacency.Graph
//	bfs/       - breadth-first traversal over adjacency.Graph
//
// Quick example:
//
//	g := core.NewDirected[string, int64]()
//	a, b := g.AddNode("a"), g.AddNode("b")
//	_, _ = g.AddEdge(3, a, b)
//	view, _ := core.View(g)
//	t, _ := dijkstra.ShortestPaths(view, int(a))
//	d, _ := t.Distance(int(b)) // 3
//
// Handles are stable for the life of the element they name. A removed
// handle may be handed out again by a later insert.
//
// None of the types are safe for concurrent mutation; callers synchronise.
package stablegraph
