// SPDX-License-Identifier: MIT

package bfs_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablegraph/adjacency"
	"github.com/katalvlaran/stablegraph/bfs"
	"github.com/katalvlaran/stablegraph/core"
)

// cycle returns the undirected 4-cycle 0–1–2–3–0 as a core view.
func cycle(t *testing.T) adjacency.Graph[int] {
	t.Helper()
	g := core.NewUndirected[int, int]()
	hs := make([]core.Handle, 4)
	for i := range hs {
		hs[i] = g.AddNode(i)
	}
	for i := range hs {
		_, err := g.AddEdge(1, hs[i], hs[(i+1)%4])
		require.NoError(t, err)
	}
	view, err := core.View(g)
	require.NoError(t, err)

	return view
}

// chain returns the directed path 0→1→…→n-1.
func chain(t *testing.T, n int) *adjacency.List[int] {
	t.Helper()
	g := adjacency.NewList[int](n)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddArc(i, i+1, 7))
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[int](nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := chain(t, 2)
	_, err = bfs.BFS[int](g, 2)
	assert.ErrorIs(t, err, bfs.ErrStartOutOfRange)
	_, err = bfs.BFS[int](g, -1)
	assert.ErrorIs(t, err, bfs.ErrStartOutOfRange)

	_, err = bfs.BFS[int](g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_SingleNode(t *testing.T) {
	res, err := bfs.BFS[int](adjacency.NewList[int](1), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.Equal(t, 0, res.Depth[0])
	assert.Equal(t, -1, res.Parent[0])
}

func TestBFS_CycleDepths(t *testing.T) {
	res, err := bfs.BFS(cycle(t), 0)
	require.NoError(t, err)

	// Edge handles ascend 0→1, 1→2, 2→3, 3→0; node 0 sees edges 0 and 3.
	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 1}, res.Depth)
	assert.Equal(t, []int{-1, 0, 1, 0}, res.Parent)
}

func TestBFS_DirectedOnlyForward(t *testing.T) {
	g := chain(t, 4)
	res, err := bfs.BFS[int](g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, res.Order)
	assert.False(t, res.Reached(0))
	assert.False(t, res.Reached(1))
	assert.False(t, res.Reached(99))
}

func TestBFS_MaxDepth(t *testing.T) {
	g := chain(t, 5)
	for _, tc := range []struct {
		depth int
		want  []int
	}{
		{1, []int{0, 1}},
		{3, []int{0, 1, 2, 3}},
		{0, []int{0, 1, 2, 3, 4}},
		{10, []int{0, 1, 2, 3, 4}},
	} {
		res, err := bfs.BFS[int](g, 0, bfs.WithMaxDepth(tc.depth))
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.Order, "MaxDepth(%d)", tc.depth)
	}
}

func TestBFS_FilterNeighbor(t *testing.T) {
	res, err := bfs.BFS(cycle(t), 0, bfs.WithFilterNeighbor(func(curr, nbr int) bool {
		return nbr != 3
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Equal(t, 2, res.Depth[2])
}

func TestBFS_Hooks(t *testing.T) {
	var enq, deq []int
	res, err := bfs.BFS[int](chain(t, 3), 0,
		bfs.WithOnEnqueue(func(node, _ int) { enq = append(enq, node) }),
		bfs.WithOnDequeue(func(node, _ int) { deq = append(deq, node) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, enq)
	assert.Equal(t, res.Order, deq)
}

func TestBFS_OnVisitAborts(t *testing.T) {
	stop := errors.New("stop here")
	res, err := bfs.BFS[int](chain(t, 5), 0, bfs.WithOnVisit(func(node, _ int) error {
		if node == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	require.NotNil(t, res)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS[int](chain(t, 3), 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_NeighborOutOfRange(t *testing.T) {
	g := core.NewDirected[int, int]()
	a, b, c := g.AddNode(0), g.AddNode(1), g.AddNode(2)
	_, err := g.AddEdge(1, a, c)
	require.NoError(t, err)
	view, err := core.View(g)
	require.NoError(t, err)

	// Removing b after taking the view leaves a hole the view cannot see.
	g.RemoveNode(b)
	_, err = bfs.BFS(view, int(a))
	assert.ErrorIs(t, err, bfs.ErrNeighborOutOfRange)
}

func TestResult_PathTo(t *testing.T) {
	res, err := bfs.BFS(cycle(t), 0)
	require.NoError(t, err)

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)

	path, err = res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)

	res, err = bfs.BFS[int](chain(t, 3), 1)
	require.NoError(t, err)
	_, err = res.PathTo(0)
	assert.ErrorIs(t, err, bfs.ErrNotReached)
}

func TestBFS_Logger(t *testing.T) {
	var buf bytes.Buffer
	_, err := bfs.BFS[int](chain(t, 3), 0, bfs.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"visited":3`)
}
