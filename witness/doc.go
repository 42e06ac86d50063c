// Package witness implements a standalone planarity test: given a vertex
// count and an edge list, decide planarity and, when non-planar, return
// the edges of a Kuratowski obstruction (a subdivision of K5 or K3,3).
//
// Witness shares no state with the planarmesh edit engine; it is a pure
// function of its input. Internally it decomposes the input into
// biconnected blocks (planarity of a graph reduces to planarity of each
// block) and runs a Demoucron–Malgrange–Pertuiset-style incremental
// embedding per block. The embedder (embed.go) is also reused by the spqr
// package to compute R-node skeleton embeddings, since both callers need
// the same "embed a biconnected graph, then answer face-membership
// queries" primitive.
package witness

import "errors"

// ErrOutOfRange indicates a vertex index outside 0..n was referenced by an
// edge endpoint.
var ErrOutOfRange = errors.New("witness: vertex index out of range")

// errFatalEmbed indicates an internal consistency failure in the
// embedder (a block believed biconnected could not be embedded despite
// having passed planarity). This should never surface to callers of
// Witness; it is reserved for defensive assertions inside embed.go.
var errFatalEmbed = errors.New("witness: internal embedding consistency failure")
