// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: options, hooks, sentinel errors and the Result of a traversal.

package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when start is not in 0..NodeCount()-1.
	ErrStartOutOfRange = errors.New("bfs: start node out of range")

	// ErrNeighborOutOfRange is returned when an edge leads outside
	// 0..NodeCount()-1.
	ErrNeighborOutOfRange = errors.New("bfs: neighbor out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by Result.PathTo for nodes the search
	// did not reach.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, with its depth.
	OnEnqueue func(node, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(node, depth int)

	// OnVisit is called when visiting a node. A non-nil error aborts the
	// search and is returned wrapped.
	OnVisit func(node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor int) bool

	// Logger receives a debug summary per run. Discards by default.
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns background context, no-op hooks, no depth limit,
// no filtering and a silent logger.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(_, _ int) bool { return true },
		Logger:         zerolog.Nop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithLogger sets the logger used for the per-run debug summary.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Result holds the outcome of a traversal, indexed by node number.
//
//   - Order:  nodes in visit sequence.
//   - Depth:  hop count from the start; meaningful only for reached nodes.
//   - Parent: predecessor in the BFS tree; -1 for the start and unreached nodes.
type Result struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int

	reached *bitset.BitSet
}

func newResult(n, start int) *Result {
	r := &Result{
		Start:   start,
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		reached: bitset.New(uint(n)),
	}
	for i := range r.Parent {
		r.Parent[i] = -1
	}

	return r
}

// Reached reports whether v was enqueued during the search.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.reached.Test(uint(v))
}

// PathTo reconstructs the path from the start node to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	path := []int{dest}
	for cur := r.Parent[dest]; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
