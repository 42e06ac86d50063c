package blockcut

import "github.com/katalvlaran/planarmesh/graphx"

// block is one biconnected component's induced vertex/edge set, or a
// trivial single-vertex block for an isolated vertex.
type block struct {
	vertices []graphx.VertexID
	edges    []graphx.Edge
}

// biconnectedBlocks partitions the graph on 0..n-1 into biconnected
// components via a Tarjan DFS low-link sweep with an explicit edge
// stack; isolated vertices each become a trivial edgeless block so
// every vertex ends up in at least one block.
func biconnectedBlocks(n int, edges []*graphx.Edge) []block {
	adj := make(map[graphx.VertexID][]graphx.Edge, n)
	for v := 0; v < n; v++ {
		adj[graphx.VertexID(v)] = nil
	}
	for _, e := range edges {
		adj[e.U] = append(adj[e.U], *e)
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
		for len(edgeStack) > 0 {
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
		if len(adj[sv]) == 0 {
			blocks = append(blocks, block{vertices: []graphx.VertexID{sv}})
			continue
		}
		stack := []frame{{v: sv}}

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
	for len(edgeStack) > 0 {
		blocks = append(blocks, popBlock(0, false))
	}

	return blocks
}
