// Package treeindex provides binary-lifting ancestor queries over a
// rooted forest given only as a parent array. It backs both the
// block-cut tree's nearest-common-ancestor queries and SPQR tree
// traversal, where both callers already have their tree encoded as a
// plain []int parent slice and only need Depth/KthAncestor/LCA on top
// of it.
//
// The package is deliberately non-generic: every caller in this module
// indexes its own nodes as dense ints (block-cut node ids, SPQR node
// ids), so an Index just operates on int node ids with no type
// parameter.
package treeindex

import "errors"

// ErrOutOfRange names a node id outside 0..len(parent)-1. No method of
// Index returns it: queries do not check bounds, and an out-of-range id
// panics.
var ErrOutOfRange = errors.New("treeindex: node id out of range")
