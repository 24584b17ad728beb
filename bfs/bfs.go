// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: the breadth-first walker.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stablegraph/adjacency"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker[W adjacency.Weight] struct {
	graph adjacency.Graph[W]
	n     int
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start. Edge weights are
// ignored; depths are hop counts.
//
// Returns ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation,
// ErrNeighborOutOfRange, the context error on cancellation, or a wrapped
// OnVisit error. On error the partial Result is still returned when the
// search had started.
func BFS[W adjacency.Weight](g adjacency.Graph[W], start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start %d, node count %d", ErrStartOutOfRange, start, n)
	}

	w := &walker[W]{
		graph: g,
		n:     n,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res:   newResult(n, start),
	}
	w.enqueue(start, 0, -1)
	err := w.loop()

	o.Logger.Debug().
		Int("start", start).
		Int("nodes", n).
		Int("visited", len(w.res.Order)).
		Err(err).
		Msg("breadth-first search finished")

	return w.res, err
}

// enqueue marks v reached at depth d and appends it to the queue.
func (w *walker[W]) enqueue(v, d, parent int) {
	w.res.reached.Set(uint(v))
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{node: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[W]) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker[W]) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)

	return item
}

func (w *walker[W]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.node, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor in adjacency order.
func (w *walker[W]) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for e := range w.graph.Adjacencies(item.node) {
		v := e.Target()
		if v < 0 || v >= w.n {
			return fmt.Errorf("%w: edge %d→%d, node count %d", ErrNeighborOutOfRange, item.node, v, w.n)
		}
		if !w.opts.FilterNeighbor(item.node, v) {
			continue
		}
		if !w.res.reached.Test(uint(v)) {
			w.enqueue(v, next, item.node)
		}
	}

	return nil
}
