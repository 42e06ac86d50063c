// File: methods.go
// Role: Mutation and query methods on Graph (add/remove edges, adjacency,
// incidence). Mirrors the split in core/methods_edges.go and
// core/methods_adjacent.go: mutation under muEdgeAdj, read-only helpers
// under the matching RLock.
package graphx

import "github.com/spakin/disjoint"

// AddEdge inserts an edge with the given stable id between u and v.
// Self-loops (u == v) are rejected with ErrSelfLoop unless WithLoops was
// set. Parallel edges are always permitted. Complexity: O(1) amortized.
func (g *Graph) AddEdge(id EdgeID, u, v VertexID) error {
	g.muVert.RLock()
	inRange := g.inRange(u) && g.inRange(v)
	allowLoops := g.allowLoops
	g.muVert.RUnlock()

	if !inRange {
		return ErrOutOfRange
	}
	if u == v && !allowLoops {
		return ErrSelfLoop
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.edges[id]; exists {
		return ErrDuplicateEdgeID
	}

	e := &Edge{ID: id, U: u, V: v}
	g.edges[id] = e

	ensureAdjacency(g, u, v)
	g.adjacency[u][v][id] = struct{}{}
	if u != v {
		ensureAdjacency(g, v, u)
		g.adjacency[v][u][id] = struct{}{}
	}

	return nil
}

// RemoveEdge deletes the edge with the given id, if present.
// Complexity: O(1) amortized.
func (g *Graph) RemoveEdge(id EdgeID) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, id)
	if nbrs := g.adjacency[e.U]; nbrs != nil {
		delete(nbrs[e.V], id)
		if len(nbrs[e.V]) == 0 {
			delete(nbrs, e.V)
		}
	}
	if e.U != e.V {
		if nbrs := g.adjacency[e.V]; nbrs != nil {
			delete(nbrs[e.U], id)
			if len(nbrs[e.U]) == 0 {
				delete(nbrs, e.U)
			}
		}
	}

	return nil
}

// HasEdge reports whether id is currently present in the graph.
func (g *Graph) HasEdge(id EdgeID) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.edges[id]

	return ok
}

// Edges returns a snapshot slice of all current edges. The slice and its
// elements are owned by the caller; mutating them does not affect the
// Graph.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		cp := *e
		out = append(out, &cp)
	}

	return out
}

// Neighbors returns the distinct vertices adjacent to v (deduplicated
// across parallel edges).
func (g *Graph) Neighbors(v VertexID) []VertexID {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	nbrs := g.adjacency[v]
	out := make([]VertexID, 0, len(nbrs))
	for u, es := range nbrs {
		if len(es) > 0 {
			out = append(out, u)
		}
	}

	return out
}

// EdgesBetween returns the ids of every edge (in either direction) between
// u and v, including parallels.
func (g *Graph) EdgesBetween(u, v VertexID) []EdgeID {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	nbrs := g.adjacency[u]
	if nbrs == nil {
		return nil
	}
	out := make([]EdgeID, 0, len(nbrs[v]))
	for id := range nbrs[v] {
		out = append(out, id)
	}

	return out
}

// Degree returns the number of edge-ends incident to v (a self-loop, were
// one ever permitted, counts twice).
func (g *Graph) Degree(v VertexID) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	deg := 0
	for u, es := range g.adjacency[v] {
		if u == v {
			deg += 2 * len(es)
		} else {
			deg += len(es)
		}
	}

	return deg
}

// Components partitions 0..N()-1 into connected-component ids (dense,
// starting at 0) using the currently present edges. Membership is tracked
// with a disjoint.Element forest (one element per vertex, unioned across
// every edge) rather than a hand-rolled traversal, then the forest's
// representatives are remapped to dense ids. Complexity: O(V+E·α(V)).
func (g *Graph) Components() []int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	n := g.n
	elems := make([]*disjoint.Element, n)
	for i := range elems {
		elems[i] = disjoint.NewElement()
	}
	for v, nbrs := range g.adjacency {
		for u, es := range nbrs {
			if len(es) == 0 || u == v {
				continue
			}
			disjoint.Union(elems[v], elems[u])
		}
	}

	comp := make([]int, n)
	repID := make(map[*disjoint.Element]int, n)
	next := 0
	for i, e := range elems {
		root := e.Find()
		id, ok := repID[root]
		if !ok {
			id = next
			repID[root] = id
			next++
		}
		comp[i] = id
	}

	return comp
}
