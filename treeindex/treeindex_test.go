package treeindex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarmesh/treeindex"
)

// tree:
//        0
//       / \
//      1   2
//     /   / \
//    3   4   5
func sample() *treeindex.Index {
	return treeindex.Build([]int{-1, 0, 0, 1, 2, 2})
}

func TestDepth(t *testing.T) {
	ix := sample()
	require.Equal(t, 0, ix.Depth(0))
	require.Equal(t, 1, ix.Depth(1))
	require.Equal(t, 2, ix.Depth(3))
	require.Equal(t, 2, ix.Depth(4))
}

func TestKthAncestor(t *testing.T) {
	ix := sample()
	require.Equal(t, 0, ix.KthAncestor(3, 2))
	require.Equal(t, 1, ix.KthAncestor(3, 1))
	require.Equal(t, -1, ix.KthAncestor(3, 3))
}

func TestIsAncestor(t *testing.T) {
	ix := sample()
	require.True(t, ix.IsAncestor(0, 5))
	require.True(t, ix.IsAncestor(2, 5))
	require.False(t, ix.IsAncestor(1, 5))
	require.True(t, ix.IsAncestor(4, 4))
}

func TestLCA(t *testing.T) {
	ix := sample()
	require.Equal(t, 0, ix.LCA(3, 4))
	require.Equal(t, 2, ix.LCA(4, 5))
	require.Equal(t, 0, ix.LCA(1, 2))
	require.Equal(t, 2, ix.LCA(2, 4))
}
