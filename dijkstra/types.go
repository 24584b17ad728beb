// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: result table, options and sentinel errors.

package dijkstra

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/stablegraph/adjacency"
)

// Sentinel errors returned by ShortestPaths and Table.
var (
	// ErrNilGraph indicates that a nil adjacency.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates a source outside 0..NodeCount()-1.
	ErrSourceOutOfRange = errors.New("dijkstra: source node out of range")

	// ErrTargetOutOfRange indicates an edge leading outside 0..NodeCount()-1,
	// i.e. the provider's node numbering is not dense.
	ErrTargetOutOfRange = errors.New("dijkstra: edge target out of range")

	// ErrNegativeWeight indicates that a negative edge weight was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNaNWeight indicates that a NaN edge weight was encountered.
	ErrNaNWeight = errors.New("dijkstra: NaN edge weight encountered")

	// ErrPredecessorsDisabled indicates a path query on a table computed
	// without WithPredecessors.
	ErrPredecessorsDisabled = errors.New("dijkstra: predecessors were not recorded")

	// ErrUnreachable indicates that no path from the source exists.
	ErrUnreachable = errors.New("dijkstra: node unreachable from source")

	// ErrNodeOutOfRange indicates a table query outside 0..Len()-1.
	ErrNodeOutOfRange = errors.New("dijkstra: node out of range")
)

// Options configures ShortestPaths.
//
// Predecessors – record the predecessor of every reached node so paths can
// be rebuilt with Table.PathTo.
// Logger       – receives one debug summary per run. Discards by default.
type Options struct {
	Predecessors bool
	Logger       zerolog.Logger
}

// Option is a functional option for ShortestPaths.
type Option func(*Options)

// WithPredecessors enables predecessor recording for path reconstruction.
func WithPredecessors() Option {
	return func(o *Options) { o.Predecessors = true }
}

// WithLogger sets the logger used for the per-run debug summary.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the configuration used when no Option is given:
// no predecessors, silent logger.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// Distance is one entry of a distance table.
// Value is meaningful only when Reached is true.
type Distance[W adjacency.Weight] struct {
	Value   W
	Reached bool
}

// noPredecessor marks the source and unreached nodes in Table.prev.
const noPredecessor = -1

// Table is the distance table produced by one ShortestPaths call.
// It is indexed by node number and owned by the caller.
type Table[W adjacency.Weight] struct {
	source  int
	dist    []W
	reached *bitset.BitSet
	prev    []int // nil unless WithPredecessors
}

func newTable[W adjacency.Weight](n, source int, withPrev bool) *Table[W] {
	t := &Table[W]{
		source:  source,
		dist:    make([]W, n),
		reached: bitset.New(uint(n)),
	}
	if withPrev {
		t.prev = make([]int, n)
		for i := range t.prev {
			t.prev[i] = noPredecessor
		}
	}

	return t
}

// Source returns the node the table was computed from.
func (t *Table[W]) Source() int { return t.source }

// Len returns the number of nodes covered by the table.
func (t *Table[W]) Len() int { return len(t.dist) }

// Distance returns the shortest distance from the source to v.
// The bool is false when v was not reached or is out of range.
func (t *Table[W]) Distance(v int) (W, bool) {
	if !t.Reached(v) {
		var zero W
		return zero, false
	}

	return t.dist[v], true
}

// Reached reports whether v is reachable from the source.
func (t *Table[W]) Reached(v int) bool {
	return v >= 0 && v < len(t.dist) && t.reached.Test(uint(v))
}

// ReachedCount returns how many nodes are reachable, the source included.
func (t *Table[W]) ReachedCount() int { return int(t.reached.Count()) }

// Entries returns the whole table as a fresh slice indexed by node.
func (t *Table[W]) Entries() []Distance[W] {
	out := make([]Distance[W], len(t.dist))
	for i, ok := t.reached.NextSet(0); ok && int(i) < len(t.dist); i, ok = t.reached.NextSet(i + 1) {
		out[i] = Distance[W]{Value: t.dist[i], Reached: true}
	}

	return out
}

// Predecessor returns the node preceding v on the recorded shortest path.
// The bool is false for the source, unreached nodes, out-of-range nodes,
// and tables computed without WithPredecessors.
func (t *Table[W]) Predecessor(v int) (int, bool) {
	if t.prev == nil || v < 0 || v >= len(t.prev) || t.prev[v] == noPredecessor {
		return noPredecessor, false
	}

	return t.prev[v], true
}

// PathTo returns the node sequence source…v of one shortest path.
//
// Errors:
//   - ErrPredecessorsDisabled if the table was computed without WithPredecessors.
//   - ErrNodeOutOfRange if v is outside 0..Len()-1.
//   - ErrUnreachable if v was not reached.
//
// Complexity: O(path length).
func (t *Table[W]) PathTo(v int) ([]int, error) {
	if t.prev == nil {
		return nil, ErrPredecessorsDisabled
	}
	if v < 0 || v >= len(t.dist) {
		return nil, fmt.Errorf("%w: %d", ErrNodeOutOfRange, v)
	}
	if !t.reached.Test(uint(v)) {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, v)
	}

	path := []int{v}
	for u := t.prev[v]; u != noPredecessor; u = t.prev[u] {
		path = append(path, u)
	}
	slices.Reverse(path)

	return path, nil
}
