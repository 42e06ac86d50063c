// Package blockcut decomposes a graph into its biconnected components
// (blocks) and cut vertices, and exposes the result as a block-cut
// tree: a bipartite tree alternating between block nodes (B-nodes) and
// cut-vertex nodes (C-nodes), with an edge between a B-node and a
// C-node whenever that block contains that cut vertex.
//
// The engine walks this tree to decide, for a candidate edge (u, v),
// which blocks lie on the path between u and v; SPQR decomposition and
// the planar-embedding oracle then operate one block at a time.
package blockcut

import "errors"

// ErrOutOfRange names an out-of-range vertex or node id. No method of
// Tree returns it: lookups report a miss through their ok result, and
// the other accessors index their slices directly.
var ErrOutOfRange = errors.New("blockcut: id out of range")

// Kind distinguishes the two node flavors of a block-cut tree.
type Kind int

const (
	// BlockNodeKind is a biconnected-component node.
	BlockNodeKind Kind = iota
	// CutNodeKind is a cut-vertex node.
	CutNodeKind
)

func (k Kind) String() string {
	if k == CutNodeKind {
		return "cut-vertex"
	}

	return "block"
}
