// SPDX-License-Identifier: MIT

package dijkstra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/btree"
)

func TestFrontier_EqualDistancesStayDistinct(t *testing.T) {
	f := newFrontier[int64]()
	f.push(5, 2)
	f.push(5, 1)
	f.push(3, 9)
	require.Equal(t, 3, f.len())

	var got []entry[int64]
	for f.len() > 0 {
		e, ok := f.popMin()
		require.True(t, ok)
		got = append(got, e)
	}
	assert.Equal(t, []entry[int64]{{3, 9}, {5, 1}, {5, 2}}, got)

	_, ok := f.popMin()
	assert.False(t, ok)
}

func TestFrontier_DistanceOnlyOrderingMergesNodes(t *testing.T) {
	// Documents why entryLess breaks ties by node.
	byDist := btree.NewBTreeGOptions(func(a, b entry[int64]) bool {
		return a.dist < b.dist
	}, btree.Options{NoLocks: true})
	byDist.Set(entry[int64]{dist: 5, node: 1})
	byDist.Set(entry[int64]{dist: 5, node: 2})
	assert.Equal(t, 1, byDist.Len())
}

func TestFrontier_Remove(t *testing.T) {
	f := newFrontier[float64]()
	f.push(1.5, 0)
	f.push(1.5, 1)

	assert.True(t, f.remove(1.5, 0))
	assert.False(t, f.remove(1.5, 0), "second removal is a no-op")
	assert.False(t, f.remove(2.0, 1), "distance is part of the key")
	assert.Equal(t, 1, f.len())

	e, ok := f.popMin()
	require.True(t, ok)
	assert.Equal(t, entry[float64]{dist: 1.5, node: 1}, e)
}
