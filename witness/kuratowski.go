// File: kuratowski.go
// Role: Given a (known non-planar) edge set, extract the edges of a
// genuine Kuratowski subdivision — a K5 or K3,3 pattern — by first
// suppressing degree-2 vertices (series reduction) and then searching
// the resulting small multigraph for five or six branch vertices whose
// pairwise (or 3+3 cross) connections are all present.
//
// This bounded search is appropriate at the interactive-editor scale
// spec.md targets. It enumerates 5- and 6-subsets of the branch
// vertices, so its cost grows with the fifth/sixth power of their count
// on large non-planar inputs.
package witness

import "github.com/katalvlaran/planarmesh/graphx"

// reducedEdge is an edge of the degree-2-suppressed multigraph, carrying
// the original edge path it stands in for.
type reducedEdge struct {
	a, b graphx.VertexID
	path []graphx.Edge
}

// extractObstruction returns the canonical (sorted, deduplicated) edge
// pairs of a Kuratowski subdivision found within edges, or nil if the
// bounded search did not find one (caller falls back to reporting the
// whole edge set).
func extractObstruction(edges []graphx.Edge) []graphx.EdgePair {
	reduced, adj := suppressDegreeTwo(edges)

	candidates := make([]graphx.VertexID, 0, len(adj))
	for v, es := range adj {
		if len(es) >= 3 {
			candidates = append(candidates, v)
		}
	}

	if obstruction := findK5(candidates, reduced); obstruction != nil {
		return canonicalize(edgePairsOf(obstruction))
	}
	if obstruction := findK33(candidates, reduced); obstruction != nil {
		return canonicalize(edgePairsOf(obstruction))
	}

	return nil
}

// suppressDegreeTwo repeatedly contracts degree-2 vertices into a single
// reduced edge joining their two neighbors, tracking the original edge
// path each reduced edge stands in for.
func suppressDegreeTwo(edges []graphx.Edge) ([]reducedEdge, map[graphx.VertexID][]reducedEdge) {
	adj := make(map[graphx.VertexID][]reducedEdge)
	for _, e := range edges {
		re := reducedEdge{a: e.U, b: e.V, path: []graphx.Edge{e}}
		adj[e.U] = append(adj[e.U], re)
		adj[e.V] = append(adj[e.V], reducedEdge{a: e.V, b: e.U, path: []graphx.Edge{e}})
	}

	changed := true
	for changed {
		changed = false
		for v, es := range adj {
			if len(es) != 2 {
				continue
			}
			n0, n1 := es[0].b, es[1].b
			if n0 == n1 {
				continue // a 2-cycle at v; leave it alone
			}
			// Remove v's two edges from its neighbors and splice a new
			// direct edge between n0 and n1.
			removeVFrom(adj, n0, v)
			removeVFrom(adj, n1, v)
			delete(adj, v)

			merged := reducedEdge{a: n0, b: n1, path: append(append([]graphx.Edge{}, reverse(es[0].path)...), es[1].path...)}
			adj[n0] = append(adj[n0], merged)
			adj[n1] = append(adj[n1], reducedEdge{a: n1, b: n0, path: reverse(merged.path)})
			changed = true
		}
	}

	var all []reducedEdge
	seen := make(map[[2]graphx.VertexID]bool)
	for v, es := range adj {
		for _, e := range es {
			key := [2]graphx.VertexID{v, e.b}
			if v > e.b {
				key = [2]graphx.VertexID{e.b, v}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			all = append(all, e)
		}
	}

	return all, adj
}

func removeVFrom(adj map[graphx.VertexID][]reducedEdge, at, v graphx.VertexID) {
	lst := adj[at]
	out := lst[:0]
	for _, e := range lst {
		if e.b != v {
			out = append(out, e)
		}
	}
	adj[at] = out
}

func reverse(path []graphx.Edge) []graphx.Edge {
	out := make([]graphx.Edge, len(path))
	for i, e := range path {
		out[len(path)-1-i] = e
	}

	return out
}

func hasEdge(adj map[graphx.VertexID][]reducedEdge, a, b graphx.VertexID) ([]graphx.Edge, bool) {
	for _, e := range adj[a] {
		if e.b == b {
			return e.path, true
		}
	}

	return nil, false
}

// findK5 searches candidates for 5 vertices with all 10 pairwise
// connections present in the reduced graph.
func findK5(candidates []graphx.VertexID, reduced []reducedEdge) []graphx.Edge {
	adj := buildReducedAdj(candidates, reduced)
	n := len(candidates)
	var idx [5]int
	var rec func(start, depth int) []graphx.Edge
	rec = func(start, depth int) []graphx.Edge {
		if depth == 5 {
			var edges []graphx.Edge
			for i := 0; i < 5; i++ {
				for j := i + 1; j < 5; j++ {
					path, ok := hasEdge(adj, candidates[idx[i]], candidates[idx[j]])
					if !ok {
						return nil
					}
					edges = append(edges, path...)
				}
			}
			return edges
		}
		for i := start; i < n; i++ {
			idx[depth] = i
			if got := rec(i+1, depth+1); got != nil {
				return got
			}
		}
		return nil
	}

	return rec(0, 0)
}

// findK33 searches candidates for a 3+3 bipartition with all 9 cross
// connections present in the reduced graph.
func findK33(candidates []graphx.VertexID, reduced []reducedEdge) []graphx.Edge {
	adj := buildReducedAdj(candidates, reduced)
	n := len(candidates)
	if n < 6 {
		return nil
	}

	var left, right [3]int
	var chooseLeft func(start, depth int) []graphx.Edge
	var chooseRight func(start, depth int) []graphx.Edge

	chooseRight = func(start, depth int) []graphx.Edge {
		if depth == 3 {
			var edges []graphx.Edge
			for _, li := range left {
				for _, ri := range right {
					path, ok := hasEdge(adj, candidates[li], candidates[ri])
					if !ok {
						return nil
					}
					edges = append(edges, path...)
				}
			}
			return edges
		}
		for i := start; i < n; i++ {
			skip := false
			for _, li := range left {
				if li == i {
					skip = true
				}
			}
			if skip {
				continue
			}
			right[depth] = i
			if got := chooseRight(i+1, depth+1); got != nil {
				return got
			}
		}
		return nil
	}

	chooseLeft = func(start, depth int) []graphx.Edge {
		if depth == 3 {
			return chooseRight(0, 0)
		}
		for i := start; i < n; i++ {
			left[depth] = i
			if got := chooseLeft(i+1, depth+1); got != nil {
				return got
			}
		}
		return nil
	}

	return chooseLeft(0, 0)
}

func buildReducedAdj(candidates []graphx.VertexID, reduced []reducedEdge) map[graphx.VertexID][]reducedEdge {
	set := make(map[graphx.VertexID]bool, len(candidates))
	for _, v := range candidates {
		set[v] = true
	}
	adj := make(map[graphx.VertexID][]reducedEdge)
	for _, e := range reduced {
		if set[e.a] && set[e.b] {
			adj[e.a] = append(adj[e.a], e)
			adj[e.b] = append(adj[e.b], reducedEdge{a: e.b, b: e.a, path: reverse(e.path)})
		}
	}

	return adj
}
