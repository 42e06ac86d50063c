package blockcut_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarmesh/blockcut"
	"github.com/katalvlaran/planarmesh/graphx"
)

func buildGraph(n int, pairs []graphx.EdgePair) *graphx.Graph {
	g := graphx.NewGraph(n)
	for i, p := range pairs {
		_ = g.AddEdge(graphx.EdgeID(i), p.U, p.V)
	}

	return g
}

// Two triangles sharing vertex 2: 0-1-2-0 and 2-3-4-2.
func TestTwoTrianglesOneCutVertex(t *testing.T) {
	g := buildGraph(5, []graphx.EdgePair{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0},
		{U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 2},
	})
	tree := blockcut.Build(g)

	cutNode, ok := tree.BCNode(2)
	require.True(t, ok)
	require.Equal(t, blockcut.CutNodeKind, tree.Type(cutNode))
	v, ok := tree.CutVertexOf(cutNode)
	require.True(t, ok)
	require.Equal(t, graphx.VertexID(2), v)

	b0, ok := tree.BCNode(0)
	require.True(t, ok)
	require.Equal(t, blockcut.BlockNodeKind, tree.Type(b0))

	b3, ok := tree.BCNode(3)
	require.True(t, ok)
	require.NotEqual(t, b0, b3)

	require.Equal(t, cutNode, tree.NCA(b0, b3))
}

func TestSingleBiconnectedBlockHasNoCutVertex(t *testing.T) {
	tree := blockcut.Build(buildGraph(4, graphx.Complete(4)))
	for v := graphx.VertexID(0); v < 4; v++ {
		x, ok := tree.BCNode(v)
		require.True(t, ok)
		require.Equal(t, blockcut.BlockNodeKind, tree.Type(x))
	}
}

func TestIsolatedVertexGetsOwnBlock(t *testing.T) {
	tree := blockcut.Build(buildGraph(3, []graphx.EdgePair{{U: 0, V: 1}}))
	x, ok := tree.BCNode(2)
	require.True(t, ok)
	require.Equal(t, blockcut.BlockNodeKind, tree.Type(x))
	require.Empty(t, tree.HEdges(x))
}

func TestSameComponent(t *testing.T) {
	g := buildGraph(6, []graphx.EdgePair{{U: 0, V: 1}, {U: 1, V: 2}, {U: 3, V: 4}})
	tree := blockcut.Build(g)
	require.True(t, tree.SameComponent(0, 2))
	require.False(t, tree.SameComponent(0, 3))
	require.False(t, tree.SameComponent(0, 5))
}

func TestRepVertexLocalIDs(t *testing.T) {
	tree := blockcut.Build(buildGraph(4, graphx.Complete(4)))
	x, ok := tree.BCNode(0)
	require.True(t, ok)
	seen := make(map[int]bool)
	for _, v := range tree.BlockVertices(x) {
		local, ok := tree.RepVertex(v, x)
		require.True(t, ok)
		require.False(t, seen[local])
		seen[local] = true
	}
	require.Len(t, seen, 4)
}
