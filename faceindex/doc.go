// Package faceindex wraps a witness.Embedding (computed once per SPQR
// R-node) with a lazily-populated, sorted-[]uint32 index of face ids
// per vertex and per edge side. Sorted slices let the oracle package
// test face membership and intersect candidate face sets with binary
// search instead of map lookups, which matters because BlockLinkable
// recomputes these intersections on every query.
package faceindex
