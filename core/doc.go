// SPDX-License-Identifier: MIT

// Package core provides Graph, an in-memory weighted graph whose nodes and
// edges are addressed by small integer handles that are recycled after
// removal.
//
// Storage:
//
//   - Nodes and edges live in two separate arena.Arena stores.
//   - Each node keeps the handles of its outgoing (head == node) and incoming
//     (tail == node) edges in ascending order, so edge lookups between two
//     nodes cost O(min(deg)) and return sorted results without a sort.
//   - Handles are opaque keys. A removed handle may be handed out again by the
//     next Add call; never keep one across a removal you did not make.
//
// Configuration (GraphOption):
//
//	– WithDirected(bool)       directed or undirected (default undirected)
//	– WithCapacity(nodes,edges) preallocation hint
//	– WithLogger(zerolog.Logger) debug events; discarded by default
//
// Core methods:
//
//	// Node lifecycle
//	AddNode(w N) Handle                       // O(1) amortized
//	RemoveNode(h Handle) (N, bool)            // O(deg(h)·deg) cascading
//	HasNode(h Handle) bool                    // O(1)
//
//	// Edge lifecycle
//	AddEdge(w E, head, tail Handle) (Handle, error) // O(deg) sorted insert
//	RemoveEdge(h Handle) (E, bool)            // O(deg)
//
//	// Queries
//	FindEdges(head, tail Handle) []Handle     // ascending; undirected matches both ways
//	FindNEdges(n int, head, tail Handle) []Handle
//	FindEdge(head, tail Handle) (Handle, bool)
//	Neighbors(h Handle) ([]Edge[E], error)
//	NodeCount(), EdgeCount()                  // O(1)
//
//	// Capability providers for shortest-path engines
//	View(g) (adjacency.Graph[W], error)       // zero-copy, dense handles only
//	Project(g, cost) (*adjacency.List[W], []Handle)
//
// Absence is reported with a comma-ok bool (RemoveNode, RemoveEdge,
// FindEdge, Node, Edge). Precondition failures are errors: AddEdge with a
// dead endpoint returns ErrInvalidEndpoint and leaves the graph unchanged.
//
// Removing a node removes every edge that has it as head or tail, so an
// edge with a missing endpoint never exists.
//
// Graph is not safe for concurrent use.
package core
