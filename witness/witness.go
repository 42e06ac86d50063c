// File: witness.go
// Role: Witness(n, edges) entry point — splits the input into biconnected
// blocks (planarity of a graph reduces to planarity of each block, since
// blocks meet only at cut vertices) and embeds each block in turn.
package witness

import (
	"sort"

	"github.com/katalvlaran/planarmesh/graphx"
)

// Witness decides whether the graph on vertices 0..n-1 with the given
// edge list is planar. It returns an empty slice when planar; otherwise the
// canonically sorted, deduplicated edges of a Kuratowski obstruction
// (a subdivision of K5 or K3,3). Self-loops are silently ignored;
// out-of-range endpoints fail with ErrOutOfRange.
func Witness(n int, edges []graphx.EdgePair) ([]graphx.EdgePair, error) {
	for _, e := range edges {
		if int(e.U) >= n || int(e.U) < 0 || int(e.V) >= n || int(e.V) < 0 {
			return nil, ErrOutOfRange
		}
	}

	ge := make([]graphx.Edge, 0, len(edges))
	nextID := graphx.EdgeID(0)
	for _, e := range edges {
		if e.U == e.V {
			continue // self-loops never affect planarity
		}
		ge = append(ge, graphx.Edge{ID: nextID, U: e.U, V: e.V})
		nextID++
	}

	for _, block := range biconnectedBlocks(n, ge) {
		if len(block.vertices) < 3 {
			continue // a single edge or vertex is trivially planar
		}
		res := EmbedBiconnected(block.vertices, block.edges)
		if !res.Planar {
			// Search the whole block: the embedded edges plus the one
			// unroutable fragment can leave out other pending edges and
			// need not be non-planar on their own.
			obstruction := extractObstruction(block.edges)
			if len(obstruction) > 0 {
				return obstruction, nil
			}
			// Fallback: the block is non-planar but no clean Kuratowski
			// pattern was found by the bounded search in
			// extractObstruction (e.g. a very large block) — report the
			// whole block's edge set, canonicalized, as a conservative
			// (non-minimal) certificate.
			return canonicalize(edgePairsOf(block.edges)), nil
		}
	}

	return []graphx.EdgePair{}, nil
}

func edgePairsOf(edges []graphx.Edge) []graphx.EdgePair {
	out := make([]graphx.EdgePair, 0, len(edges))
	for _, e := range edges {
		out = append(out, graphx.EdgePair{U: e.U, V: e.V})
	}

	return out
}

func canonicalize(pairs []graphx.EdgePair) []graphx.EdgePair {
	seen := make(map[graphx.EdgePair]bool, len(pairs))
	out := make([]graphx.EdgePair, 0, len(pairs))
	for _, p := range pairs {
		p = p.Normalized()
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// block is one biconnected component's induced vertex/edge set.
type block struct {
	vertices []graphx.VertexID
	edges    []graphx.Edge
}

// biconnectedBlocks splits the graph on 0..n-1 into biconnected
// components via a Tarjan DFS low-link sweep with an explicit edge
// stack. Bridges each form their own (trivial) block; isolated vertices
// produce no block at all.
func biconnectedBlocks(n int, edges []graphx.Edge) []block {
	adj := make(map[graphx.VertexID][]graphx.Edge, n)
	for v := 0; v < n; v++ {
		adj[graphx.VertexID(v)] = nil
	}
	for _, e := range edges {
		adj[e.U] = append(adj[e.U], e)
		adj[e.V] = append(adj[e.V], graphx.Edge{ID: e.ID, U: e.V, V: e.U})
	}

	disc := make(map[graphx.VertexID]int)
	low := make(map[graphx.VertexID]int)
	visited := make(map[graphx.VertexID]bool, n)
	timer := 0
	var edgeStack []graphx.Edge
	var blocks []block

	popBlock := func(uptoEdge graphx.EdgeID, haveEdge bool) block {
		var comp []graphx.Edge
		for {
			if len(edgeStack) == 0 {
				break
			}
			top := edgeStack[len(edgeStack)-1]
			edgeStack = edgeStack[:len(edgeStack)-1]
			comp = append(comp, top)
			if haveEdge && top.ID == uptoEdge {
				break
			}
		}
		vs := make(map[graphx.VertexID]bool)
		for _, e := range comp {
			vs[e.U] = true
			vs[e.V] = true
		}
		vlist := make([]graphx.VertexID, 0, len(vs))
		for v := range vs {
			vlist = append(vlist, v)
		}

		return block{vertices: vlist, edges: comp}
	}

	type frame struct {
		v          graphx.VertexID
		parentEdge graphx.EdgeID
		hasParent  bool
		i          int
	}

	for start := 0; start < n; start++ {
		sv := graphx.VertexID(start)
		if visited[sv] {
			continue
		}
		visited[sv] = true
		timer++
		disc[sv] = timer
		low[sv] = timer
		stack := []frame{{v: sv}}
		children := 0
		_ = children

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			v := top.v
			if top.i < len(adj[v]) {
				e := adj[v][top.i]
				top.i++
				w := e.V
				if top.hasParent && e.ID == top.parentEdge {
					continue
				}
				if !visited[w] {
					visited[w] = true
					timer++
					disc[w] = timer
					low[w] = timer
					edgeStack = append(edgeStack, e)
					stack = append(stack, frame{v: w, parentEdge: e.ID, hasParent: true})
				} else if disc[w] < disc[v] {
					edgeStack = append(edgeStack, e)
					if disc[w] < low[v] {
						low[v] = disc[w]
					}
				}
			} else {
				stack = stack[:len(stack)-1]
				if len(stack) > 0 {
					p := &stack[len(stack)-1]
					if low[v] < low[p.v] {
						low[p.v] = low[v]
					}
					if low[v] >= disc[p.v] {
						blocks = append(blocks, popBlock(top.parentEdge, true))
					}
				}
			}
		}
	}
	// Any edges left on the stack after the whole DFS forest is
	// processed belong to the final block of each tree (handles the
	// root's last child and any remaining bridges uniformly).
	for len(edgeStack) > 0 {
		blocks = append(blocks, popBlock(0, false))
	}

	// Isolated vertices (no incident edges at all) form trivial
	// single-vertex blocks, always planar; they don't need to be
	// reported since Witness skips blocks with < 3 vertices anyway.

	return blocks
}
