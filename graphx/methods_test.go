package graphx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarmesh/graphx"
)

func TestAddRemoveEdge(t *testing.T) {
	g := graphx.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 0, 1))
	require.NoError(t, g.AddEdge(1, 1, 2))
	require.True(t, g.HasEdge(0))
	require.ElementsMatch(t, []graphx.VertexID{1}, g.Neighbors(0))

	require.ErrorIs(t, g.AddEdge(2, 5, 1), graphx.ErrOutOfRange)
	require.ErrorIs(t, g.AddEdge(3, 2, 2), graphx.ErrSelfLoop)
	require.ErrorIs(t, g.AddEdge(0, 2, 3), graphx.ErrDuplicateEdgeID)

	require.NoError(t, g.RemoveEdge(0))
	require.False(t, g.HasEdge(0))
	require.ErrorIs(t, g.RemoveEdge(0), graphx.ErrEdgeNotFound)
}

func TestMultiEdgesAllowed(t *testing.T) {
	g := graphx.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 0, 1))
	require.NoError(t, g.AddEdge(1, 0, 1))
	require.NoError(t, g.AddEdge(2, 0, 1))
	require.ElementsMatch(t, []graphx.EdgeID{0, 1, 2}, g.EdgesBetween(0, 1))
	require.Equal(t, 3, g.Degree(0))
}

func TestComponents(t *testing.T) {
	g := graphx.NewGraph(5)
	require.NoError(t, g.AddEdge(0, 0, 1))
	require.NoError(t, g.AddEdge(1, 2, 3))

	comp := g.Components()
	require.Equal(t, comp[0], comp[1])
	require.Equal(t, comp[2], comp[3])
	require.NotEqual(t, comp[0], comp[2])
	require.NotEqual(t, comp[0], comp[4])
	require.NotEqual(t, comp[2], comp[4])
}

func TestLoopsRejectedByDefault(t *testing.T) {
	g := graphx.NewGraph(1)
	require.ErrorIs(t, g.AddEdge(0, 0, 0), graphx.ErrSelfLoop)

	gl := graphx.NewGraph(1, graphx.WithLoops())
	require.NoError(t, gl.AddEdge(0, 0, 0))
}
