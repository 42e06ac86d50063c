package spqr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarmesh/graphx"
	"github.com/katalvlaran/planarmesh/spqr"
)

func edge(id int, u, v graphx.VertexID) graphx.Edge {
	return graphx.Edge{ID: graphx.EdgeID(id), U: u, V: v}
}

func TestTriangleIsSingleSNode(t *testing.T) {
	verts := []graphx.VertexID{0, 1, 2}
	edges := []graphx.Edge{edge(0, 0, 1), edge(1, 1, 2), edge(2, 2, 0)}
	tree, err := spqr.Build(verts, edges)
	require.NoError(t, err)
	require.Equal(t, 1, tree.NumNodes())
	require.Equal(t, spqr.STypeNode, tree.Type(tree.Root()))
}

func TestTripleBondIsSinglePNode(t *testing.T) {
	verts := []graphx.VertexID{0, 1}
	edges := []graphx.Edge{edge(0, 0, 1), edge(1, 0, 1), edge(2, 0, 1)}
	tree, err := spqr.Build(verts, edges)
	require.NoError(t, err)
	require.Equal(t, 1, tree.NumNodes())
	require.Equal(t, spqr.PTypeNode, tree.Type(tree.Root()))
	require.Len(t, tree.SkeletonEdges(tree.Root()), 3)
}

func TestK4IsSingleRNode(t *testing.T) {
	verts := []graphx.VertexID{0, 1, 2, 3}
	edges := []graphx.Edge{}
	id := 0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			edges = append(edges, edge(id, graphx.VertexID(i), graphx.VertexID(j)))
			id++
		}
	}
	tree, err := spqr.Build(verts, edges)
	require.NoError(t, err)
	require.Equal(t, 1, tree.NumNodes())
	require.Equal(t, spqr.RTypeNode, tree.Type(tree.Root()))

	for _, se := range tree.SkeletonEdges(tree.Root()) {
		left, right, ok := tree.FacesOfSkeletonEdge(tree.Root(), se.ID)
		require.True(t, ok)
		require.NotEqual(t, left, right)
	}
}

func TestThetaGraphIsPNodeWithSChildren(t *testing.T) {
	verts := []graphx.VertexID{0, 1, 2, 3}
	edges := []graphx.Edge{
		edge(0, 0, 1),
		edge(1, 0, 2), edge(2, 2, 1),
		edge(3, 0, 3), edge(4, 3, 1),
	}
	tree, err := spqr.Build(verts, edges)
	require.NoError(t, err)
	require.Equal(t, spqr.PTypeNode, tree.Type(tree.Root()))

	se := tree.SkeletonEdges(tree.Root())
	require.Len(t, se, 3)

	sChildren := 0
	for _, e := range se {
		if e.Virtual {
			require.Equal(t, spqr.STypeNode, tree.Type(e.Child))
			sChildren++
		}
	}
	require.Equal(t, 2, sChildren)
}
