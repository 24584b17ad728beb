// SPDX-License-Identifier: MIT
//
// File: frontier.go
// Role: Ordered-set frontier of (tentative distance, node) pairs.

package dijkstra

import (
	"github.com/tidwall/btree"

	"github.com/katalvlaran/stablegraph/adjacency"
)

// entry is a frontier member: a node and its tentative distance.
type entry[W adjacency.Weight] struct {
	dist W
	node int
}

// entryLess orders entries by distance, then by node.
// The node tie-break is load-bearing: the set treats entries that compare
// equal as one key, so ordering by distance alone would silently merge
// distinct nodes sitting at the same distance.
func entryLess[W adjacency.Weight](a, b entry[W]) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return a.node < b.node
}

// frontier supports extract-min and removal of an arbitrary entry,
// both in O(log F).
type frontier[W adjacency.Weight] struct {
	set *btree.BTreeG[entry[W]]
}

func newFrontier[W adjacency.Weight]() *frontier[W] {
	return &frontier[W]{
		set: btree.NewBTreeGOptions(entryLess[W], btree.Options{NoLocks: true}),
	}
}

// push inserts (d, v).
func (f *frontier[W]) push(d W, v int) {
	f.set.Set(entry[W]{dist: d, node: v})
}

// remove deletes (d, v) and reports whether it was present.
func (f *frontier[W]) remove(d W, v int) bool {
	_, ok := f.set.Delete(entry[W]{dist: d, node: v})

	return ok
}

// popMin removes and returns the smallest entry.
func (f *frontier[W]) popMin() (entry[W], bool) {
	return f.set.PopMin()
}

func (f *frontier[W]) len() int { return f.set.Len() }
