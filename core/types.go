// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, GraphOption, sentinel errors and constructors.

package core

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/stablegraph/arena"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidEndpoint indicates AddEdge referenced a head or tail that is not a live node.
	ErrInvalidEndpoint = errors.New("core: invalid edge endpoint")

	// ErrNodeNotFound indicates a query referenced a node handle that is not live.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSparseHandles indicates the node handles are not exactly 0..NodeCount()-1,
	// so the graph cannot back an adjacency consumer without projection.
	ErrSparseHandles = errors.New("core: node handles are not dense")
)

// Handle identifies a node or an edge inside one Graph.
// Node and edge handles live in separate spaces; the same integer may name
// both a node and an edge.
type Handle = arena.Handle

// Edge is a read-only snapshot of a stored edge.
type Edge[E any] struct {
	// Handle is the edge's own handle.
	Handle Handle

	// Head is the node the edge starts from.
	Head Handle

	// Tail is the node the edge ends at.
	Tail Handle

	// Weight is the caller payload, typically the traversal cost.
	Weight E
}

// nodeSlot is the arena payload for a node.
// out and in hold edge handles sorted ascending.
type nodeSlot[N any] struct {
	weight N
	out    []Handle // edges with head == this node
	in     []Handle // edges with tail == this node
}

// edgeSlot is the arena payload for an edge.
type edgeSlot[E any] struct {
	weight E
	head   Handle
	tail   Handle
}

// config collects construction-time settings applied by GraphOption.
type config struct {
	directed bool
	nodeCap  int
	edgeCap  int
	logger   zerolog.Logger
}

// GraphOption configures a Graph at construction time.
type GraphOption func(c *config)

// WithDirected fixes the graph's directedness.
// In an undirected graph an edge (head, tail) also answers queries for (tail, head).
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}

// WithCapacity preallocates room for the given number of nodes and edges.
// Negative values are treated as zero.
func WithCapacity(nodes, edges int) GraphOption {
	return func(c *config) {
		c.nodeCap = max(nodes, 0)
		c.edgeCap = max(edges, 0)
	}
}

// WithLogger installs a logger for debug events (cascading deletions,
// rejected edges). The default logger discards everything.
func WithLogger(l zerolog.Logger) GraphOption {
	return func(c *config) { c.logger = l }
}

// Graph is a weighted graph whose nodes and edges are addressed by
// recyclable integer handles.
//
// N is the node payload type and E the edge payload type. Parallel edges and
// self-loops are always permitted. A Graph is not safe for concurrent use;
// callers that share one across goroutines must lock around it.
type Graph[N, E any] struct {
	directed bool
	logger   zerolog.Logger

	nodes *arena.Arena[nodeSlot[N]]
	edges *arena.Arena[edgeSlot[E]]
}

// NewGraph creates an empty Graph. By default the graph is undirected.
// Complexity: O(1) plus preallocation requested via WithCapacity.
func NewGraph[N, E any](opts ...GraphOption) *Graph[N, E] {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N, E]{
		directed: cfg.directed,
		logger:   cfg.logger,
		nodes:    arena.New[nodeSlot[N]](cfg.nodeCap),
		edges:    arena.New[edgeSlot[E]](cfg.edgeCap),
	}
}

// NewDirected creates an empty directed Graph.
// A WithDirected among opts is ignored.
func NewDirected[N, E any](opts ...GraphOption) *Graph[N, E] {
	return NewGraph[N, E](append(opts[:len(opts):len(opts)], WithDirected(true))...)
}

// NewUndirected creates an empty undirected Graph.
// A WithDirected among opts is ignored.
func NewUndirected[N, E any](opts ...GraphOption) *Graph[N, E] {
	return NewGraph[N, E](append(opts[:len(opts):len(opts)], WithDirected(false))...)
}
