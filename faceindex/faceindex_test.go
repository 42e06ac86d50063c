package faceindex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarmesh/faceindex"
	"github.com/katalvlaran/planarmesh/graphx"
	"github.com/katalvlaran/planarmesh/witness"
)

func k4Embedding(t *testing.T) *witness.Embedding {
	t.Helper()
	verts := []graphx.VertexID{0, 1, 2, 3}
	var edges []graphx.Edge
	id := 0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			edges = append(edges, graphx.Edge{ID: graphx.EdgeID(id), U: graphx.VertexID(i), V: graphx.VertexID(j)})
			id++
		}
	}
	res := witness.EmbedBiconnected(verts, edges)
	require.True(t, res.Planar)

	return res.Embedding
}

func TestVertexFaceIDsSortedAndCached(t *testing.T) {
	ix := faceindex.New(k4Embedding(t))
	first := ix.VertexFaceIDs(0)
	second := ix.VertexFaceIDs(0)
	require.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		require.Less(t, first[i-1], first[i])
	}
}

func TestContainsFaceID(t *testing.T) {
	ix := faceindex.New(k4Embedding(t))
	ids := ix.VertexFaceIDs(0)
	require.NotEmpty(t, ids)
	require.True(t, faceindex.ContainsFaceID(ids, ids[0]))
	require.False(t, faceindex.ContainsFaceID(ids, 999999))
}

func TestIntersect(t *testing.T) {
	require.Equal(t, []uint32{2, 4}, faceindex.Intersect([]uint32{1, 2, 4, 6}, []uint32{2, 3, 4, 8}))
	require.Empty(t, faceindex.Intersect([]uint32{1, 2}, []uint32{3, 4}))
}

func TestEdgeFaceIDsHasTwoSides(t *testing.T) {
	ix := faceindex.New(k4Embedding(t))
	ids := ix.EdgeFaceIDs(0, 1, 0)
	require.Len(t, ids, 2)
	require.Less(t, ids[0], ids[1])
}
