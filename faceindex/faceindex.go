package faceindex

import (
	"sort"

	"github.com/katalvlaran/planarmesh/graphx"
	"github.com/katalvlaran/planarmesh/witness"
)

// Index lazily caches, per vertex, the sorted set of face ids incident
// to it within one R-node's embedding.
type Index struct {
	emb         *witness.Embedding
	vertexCache map[graphx.VertexID][]uint32
}

// New wraps emb (an R-node's planar embedding) with a face index.
func New(emb *witness.Embedding) *Index {
	return &Index{emb: emb, vertexCache: make(map[graphx.VertexID][]uint32)}
}

// VertexFaceIDs returns the sorted, deduplicated face ids incident to
// v, computing and caching them on first use.
func (ix *Index) VertexFaceIDs(v graphx.VertexID) []uint32 {
	if cached, ok := ix.vertexCache[v]; ok {
		return cached
	}
	faces := ix.emb.VertexFaces(v)
	out := make([]uint32, len(faces))
	for i, f := range faces {
		out[i] = uint32(f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	ix.vertexCache[v] = out

	return out
}

// EdgeFaceIDs returns the sorted, deduplicated face ids on either side
// of the edge traversed u->v via edgeID (length 1 if both sides share
// the same face, as happens for a bridge-like edge in a 2-face
// embedding).
func (ix *Index) EdgeFaceIDs(u, v graphx.VertexID, edgeID graphx.EdgeID) []uint32 {
	left, right := ix.emb.EdgeFaces(u, v, edgeID)
	if left == right {
		return []uint32{uint32(left)}
	}
	lo, hi := uint32(left), uint32(right)
	if lo > hi {
		lo, hi = hi, lo
	}

	return []uint32{lo, hi}
}

// ContainsFaceID reports whether the sorted slice ids contains id.
func ContainsFaceID(ids []uint32, id uint32) bool {
	i := sort.Search(len(ids), func(i int) bool { return ids[i] >= id })

	return i < len(ids) && ids[i] == id
}

// Intersect returns the sorted intersection of two sorted,
// deduplicated face-id slices.
func Intersect(a, b []uint32) []uint32 {
	var out []uint32
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}
