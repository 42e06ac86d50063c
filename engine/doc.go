// Package engine is the interactive edit surface of planarmesh: given a
// fixed vertex count and a fixed candidate edge multiset, it tracks
// which candidates are currently part of the planar subgraph ("added")
// and, for every other candidate, whether adding it right now would
// keep the subgraph planar ("addable").
//
// Every mutation (Set) triggers a full recalculation — rebuilding the
// block-cut tree and every non-trivial block's SPQR tree from scratch
// — and publishes a fresh immutable Snapshot behind an atomic pointer
// swap, following the teacher's "build fresh, swap the handle"
// discipline (core/view.go) rather than mutating shared state in
// place. A single sync.RWMutex serializes writers and guards the
// recalculate critical section; readers never block on each other.
package engine

import "errors"

// ErrOutOfRange is returned when a candidate edge endpoint falls
// outside 0..n-1, or an edge id falls outside 0..len(edgesAll)-1.
var ErrOutOfRange = errors.New("engine: id or endpoint out of range")

// ErrMismatchedLength is returned when addedInit's length does not
// match edgesAll's.
var ErrMismatchedLength = errors.New("engine: addedInit length does not match edgesAll")

// ErrSelfLoop is returned when a candidate edge is a self-loop.
var ErrSelfLoop = errors.New("engine: candidate edges may not be self-loops")

// ErrNotAddable is returned by Set when asked to add a candidate edge
// that the current snapshot does not mark addable.
var ErrNotAddable = errors.New("engine: edge is not currently addable")
