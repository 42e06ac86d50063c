// Package planarmesh answers one interactive question: given a fixed vertex
// set and a fixed multiset of candidate edges, and a current subset of
// "added" edges that forms a planar graph, which of the remaining edges
// could be individually added while keeping the graph planar?
//
// The package is a thin façade over the subpackages that do the work:
//
//	graphx/     — vertex/edge handles, adjacency, thread-safe mutation
//	witness/    — standalone planarity test (Demoucron–Malgrange–Pertuiset embedding, not linear-time Boyer–Myrvold) + Kuratowski extraction
//	blockcut/   — biconnected-component / cut-vertex decomposition
//	spqr/       — triconnected S/P/R decomposition with per-R-node embeddings
//	treeindex/  — rooted-tree parent/depth/binary-lifting/LCA
//	faceindex/  — lazy per-R-node face identification
//	oracle/     — single-edge-extension planarity oracle
//	engine/     — the toggle/query edit engine itself
//
// Call engine.New to build an index over a fixed graph, engine.Set to toggle
// an edge, and engine.Query to read the addability snapshot. Call
// witness.Witness directly when you just need a planarity decision and, if
// non-planar, a Kuratowski obstruction.
//
//	go get github.com/katalvlaran/planarmesh
package planarmesh

import (
	"github.com/katalvlaran/planarmesh/engine"
	"github.com/katalvlaran/planarmesh/graphx"
	"github.com/katalvlaran/planarmesh/witness"
)

// New constructs an edit engine over the fixed vertex/edge universe.
// It is sugar for engine.New; see engine.New for the full contract.
func New(n int, edgesAll []graphx.EdgePair, addedInit []bool, opts ...engine.EngineOption) (*engine.Engine, error) {
	return engine.New(n, edgesAll, addedInit, opts...)
}

// Witness is sugar for witness.Witness; see witness.Witness for the full
// contract.
func Witness(n int, edges []graphx.EdgePair) ([]graphx.EdgePair, error) {
	return witness.Witness(n, edges)
}
