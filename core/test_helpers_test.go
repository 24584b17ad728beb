// SPDX-License-Identifier: MIT
// Package core_test contains fixtures and assertion helpers shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablegraph/core"
)

// Common weights used across core tests.
const (
	Weight1  int64 = 1
	Weight2  int64 = 2
	Weight3  int64 = 3
	Weight5  int64 = 5
	Weight8  int64 = 8
	Weight20 int64 = 20
)

// addNodes adds n nodes labelled "N0".."N{n-1}" and returns their handles.
func addNodes(t *testing.T, g *core.Graph[string, int64], n int) []core.Handle {
	t.Helper()
	labels := []string{"N0", "N1", "N2", "N3", "N4", "N5", "N6", "N7", "N8", "N9"}
	require.LessOrEqual(t, n, len(labels), "addNodes supports at most %d nodes", len(labels))

	out := make([]core.Handle, n)
	for i := 0; i < n; i++ {
		out[i] = g.AddNode(labels[i])
	}

	return out
}

// mustAddEdge adds head→tail with weight w and fails the test on error.
func mustAddEdge(t *testing.T, g *core.Graph[string, int64], w int64, head, tail core.Handle) core.Handle {
	t.Helper()
	h, err := g.AddEdge(w, head, tail)
	require.NoError(t, err, "AddEdge(%d, %d, %d)", w, head, tail)

	return h
}

// requireNoDanglingEdges asserts that every live edge has two live endpoints
// and that the removed node appears in none of them.
func requireNoDanglingEdges(t *testing.T, g *core.Graph[string, int64], removed core.Handle) {
	t.Helper()
	for _, eh := range g.Edges() {
		e, ok := g.Edge(eh)
		require.True(t, ok)
		require.True(t, g.HasNode(e.Head), "edge %d has dead head %d", eh, e.Head)
		require.True(t, g.HasNode(e.Tail), "edge %d has dead tail %d", eh, e.Tail)
		require.NotEqual(t, removed, e.Head, "edge %d still starts at removed node", eh)
		require.NotEqual(t, removed, e.Tail, "edge %d still ends at removed node", eh)
	}
}

// requireStrictlyAscending asserts hs is strictly increasing.
func requireStrictlyAscending(t *testing.T, hs []core.Handle, op string) {
	t.Helper()
	for i := 1; i < len(hs); i++ {
		require.Less(t, hs[i-1], hs[i], "%s: not strictly ascending at %d: %v", op, i, hs)
	}
}
