package spqr

import (
	"github.com/katalvlaran/planarmesh/graphx"
	"github.com/katalvlaran/planarmesh/witness"
)

// SkeletonEdge is one edge of a node's skeleton graph. Real edges carry
// the original block-local edge id; virtual edges stand in for an
// entire child subtree and carry Child, the tree node index they lead
// to.
type SkeletonEdge struct {
	ID      graphx.EdgeID
	U, V    graphx.VertexID
	Virtual bool
	Child   int // index of the child node this virtual edge represents, or -1
}

type node struct {
	typ      Type
	vertices []graphx.VertexID
	edges    []SkeletonEdge
	parent   int

	hasParentEdge bool
	parentEdgeID  graphx.EdgeID // the virtual edge id linking this node to its parent

	embedding *witness.Embedding // set only for RTypeNode
}

// Tree is a built SPQR decomposition of one biconnected block.
type Tree struct {
	nodes         []*node
	root          int
	nextVirtualID graphx.EdgeID
}

// Root returns the root node's index.
func (t *Tree) Root() int { return t.root }

// NumNodes returns the number of S/P/R nodes in the tree.
func (t *Tree) NumNodes() int { return len(t.nodes) }

// Parent returns x's parent index, or -1 if x is the root.
func (t *Tree) Parent(x int) int { return t.nodes[x].parent }

// ParentEdgeID returns the id of the virtual edge linking x to its
// parent (the same tree edge appears once in each skeleton, as a
// SkeletonEdge sharing this id). ok is false at the root.
func (t *Tree) ParentEdgeID(x int) (graphx.EdgeID, bool) {
	n := t.nodes[x]

	return n.parentEdgeID, n.hasParentEdge
}

// Embedding returns the planar combinatorial embedding stored at
// R-node x, or nil if x is not an R-node.
func (t *Tree) Embedding(x int) *witness.Embedding {
	n := t.nodes[x]
	if n.typ != RTypeNode {
		return nil
	}

	return n.embedding
}

// SkeletonEdgeByID returns the skeleton edge of node x whose id is id.
func (t *Tree) SkeletonEdgeByID(x int, id graphx.EdgeID) (SkeletonEdge, bool) {
	for _, e := range t.nodes[x].edges {
		if e.ID == id {
			return e, true
		}
	}

	return SkeletonEdge{}, false
}

// Type returns x's SPQR kind.
func (t *Tree) Type(x int) Type { return t.nodes[x].typ }

// SkeletonVertices returns the block-local vertices of node x's
// skeleton graph.
func (t *Tree) SkeletonVertices(x int) []graphx.VertexID {
	return append([]graphx.VertexID{}, t.nodes[x].vertices...)
}

// SkeletonEdges returns node x's skeleton edges, real and virtual.
func (t *Tree) SkeletonEdges(x int) []SkeletonEdge {
	return append([]SkeletonEdge{}, t.nodes[x].edges...)
}

// FacesOfSkeletonEdge returns the left/right face ids of R-node x's
// skeleton edge id (as the edge is traversed U->V). ok is false if x
// is not an R-node or carries no edge with that id.
func (t *Tree) FacesOfSkeletonEdge(x int, id graphx.EdgeID) (left, right int, ok bool) {
	n := t.nodes[x]
	if n.typ != RTypeNode {
		return 0, 0, false
	}
	e, found := t.SkeletonEdgeByID(x, id)
	if !found {
		return 0, 0, false
	}
	left, right = n.embedding.EdgeFaces(e.U, e.V, e.ID)

	return left, right, true
}

// VertexFaces returns the face ids incident to block-local vertex v
// within R-node x's embedding. ok is false if x is not an R-node.
func (t *Tree) VertexFaces(x int, v graphx.VertexID) ([]int, bool) {
	n := t.nodes[x]
	if n.typ != RTypeNode {
		return nil, false
	}

	return n.embedding.VertexFaces(v), true
}

// Build decomposes the biconnected block given by vertices and edges
// (block-local ids, as produced by blockcut.Tree.HEdges) into an SPQR
// tree.
func Build(vertices []graphx.VertexID, edges []graphx.Edge) (*Tree, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyBlock
	}

	t := &Tree{nextVirtualID: -1}
	root := t.buildNode(vertices, toSkeletonEdges(edges), -1, 0, false)
	t.root = root

	return t, nil
}

func toSkeletonEdges(edges []graphx.Edge) []SkeletonEdge {
	out := make([]SkeletonEdge, len(edges))
	for i, e := range edges {
		out[i] = SkeletonEdge{ID: e.ID, U: e.U, V: e.V, Child: -1}
	}

	return out
}

// buildNode constructs the node for (vertices, edges) and recursively
// builds its children, returning this node's index. parent is the
// already-allocated parent node index, or -1 at the root; parentEdgeID
// and hasParentEdge identify the virtual edge linking this node back
// to parent (hasParentEdge is false only at the root).
func (t *Tree) buildNode(vertices []graphx.VertexID, edges []SkeletonEdge, parent int, parentEdgeID graphx.EdgeID, hasParentEdge bool) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, &node{parent: parent, parentEdgeID: parentEdgeID, hasParentEdge: hasParentEdge})

	switch {
	case len(vertices) == 2:
		t.nodes[idx].typ = PTypeNode
		t.nodes[idx].vertices = vertices
		t.nodes[idx].edges = edges

		return idx
	case isSimpleCycle(vertices, edges):
		t.nodes[idx].typ = STypeNode
		t.nodes[idx].vertices = vertices
		t.nodes[idx].edges = edges

		return idx
	}

	a, b, found := findSeparationPair(vertices, edges)
	if !found {
		t.nodes[idx].typ = RTypeNode
		t.nodes[idx].vertices = vertices
		t.nodes[idx].edges = edges
		plain := make([]graphx.Edge, len(edges))
		for i, e := range edges {
			plain[i] = graphx.Edge{ID: e.ID, U: e.U, V: e.V}
		}
		res := witness.EmbedBiconnected(vertices, plain)
		t.nodes[idx].embedding = res.Embedding

		return idx
	}

	// Hub: a P-node over {a,b}, with one real edge per direct a-b
	// connection and one virtual edge per multi-vertex split
	// component, each leading to a recursively built child.
	comps, direct := splitComponents(vertices, edges, a, b)

	hubEdges := make([]SkeletonEdge, 0, len(direct)+len(comps))
	for _, d := range direct {
		hubEdges = append(hubEdges, d)
	}
	for range comps {
		vid := t.nextVirtualID
		t.nextVirtualID--
		hubEdges = append(hubEdges, SkeletonEdge{ID: vid, U: a, V: b, Virtual: true})
	}
	t.nodes[idx].typ = PTypeNode
	t.nodes[idx].vertices = []graphx.VertexID{a, b}
	t.nodes[idx].edges = hubEdges

	virtualSlot := len(direct)
	for _, c := range comps {
		vEdge := hubEdges[virtualSlot]
		childVerts := append([]graphx.VertexID{a, b}, c.rest...)
		childEdges := append(append([]SkeletonEdge{}, c.edges...), SkeletonEdge{ID: vEdge.ID, U: a, V: b, Virtual: true, Child: -1})
		childIdx := t.buildNode(childVerts, childEdges, idx, vEdge.ID, true)
		hubEdges[virtualSlot].Child = childIdx
		virtualSlot++
	}
	t.nodes[idx].edges = hubEdges

	return idx
}

// isSimpleCycle reports whether (vertices, edges) form a single simple
// cycle: every vertex has degree exactly 2 and |E| == |V|. Connectivity
// is assumed (every call site only ever passes a connected piece).
func isSimpleCycle(vertices []graphx.VertexID, edges []SkeletonEdge) bool {
	if len(edges) != len(vertices) || len(vertices) < 3 {
		return false
	}
	deg := make(map[graphx.VertexID]int, len(vertices))
	for _, e := range edges {
		deg[e.U]++
		deg[e.V]++
	}
	for _, v := range vertices {
		if deg[v] != 2 {
			return false
		}
	}

	return true
}

// findSeparationPair searches all vertex pairs for a split pair: a pair
// {a,b} whose removal leaves either 2+ components among the remaining
// vertices, or exactly 1 component together with 2+ direct a-b edges.
func findSeparationPair(vertices []graphx.VertexID, edges []SkeletonEdge) (a, b graphx.VertexID, found bool) {
	n := len(vertices)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			x, y := vertices[i], vertices[j]
			comps, direct := splitComponents(vertices, edges, x, y)
			if len(comps) >= 2 || (len(comps) == 1 && len(direct) >= 2) {
				return x, y, true
			}
		}
	}

	return 0, 0, false
}

type splitComponent struct {
	rest  []graphx.VertexID
	edges []SkeletonEdge
}

// splitComponents partitions edges by connectivity of vertices\{a,b}:
// edges between two rest vertices, or between a rest vertex and a or
// b, are grouped by which rest-connected-component they touch; edges
// directly between a and b are returned separately.
func splitComponents(vertices []graphx.VertexID, edges []SkeletonEdge, a, b graphx.VertexID) ([]splitComponent, []SkeletonEdge) {
	parent := make(map[graphx.VertexID]graphx.VertexID)
	var find func(graphx.VertexID) graphx.VertexID
	find = func(v graphx.VertexID) graphx.VertexID {
		if parent[v] != v {
			parent[v] = find(parent[v])
		}

		return parent[v]
	}
	for _, v := range vertices {
		if v != a && v != b {
			parent[v] = v
		}
	}
	union := func(u, v graphx.VertexID) {
		ru, rv := find(u), find(v)
		if ru != rv {
			parent[ru] = rv
		}
	}
	for _, e := range edges {
		if e.U != a && e.U != b && e.V != a && e.V != b {
			union(e.U, e.V)
		}
	}

	var direct []SkeletonEdge
	groups := make(map[graphx.VertexID]*splitComponent)
	groupOrder := make([]graphx.VertexID, 0)
	assign := func(root graphx.VertexID, e SkeletonEdge) {
		g, ok := groups[root]
		if !ok {
			g = &splitComponent{}
			groups[root] = g
			groupOrder = append(groupOrder, root)
		}
		g.edges = append(g.edges, e)
	}

	for _, e := range edges {
		switch {
		case (e.U == a || e.U == b) && (e.V == a || e.V == b):
			direct = append(direct, e)
		case e.U != a && e.U != b && e.V != a && e.V != b:
			assign(find(e.U), e)
		default:
			rest := e.U
			if rest == a || rest == b {
				rest = e.V
			}
			assign(find(rest), e)
		}
	}

	out := make([]splitComponent, 0, len(groupOrder))
	for _, root := range groupOrder {
		g := groups[root]
		seen := make(map[graphx.VertexID]bool)
		var restVerts []graphx.VertexID
		for _, e := range g.edges {
			for _, v := range [2]graphx.VertexID{e.U, e.V} {
				if v != a && v != b && !seen[v] {
					seen[v] = true
					restVerts = append(restVerts, v)
				}
			}
		}
		g.rest = restVerts
		out = append(out, *g)
	}

	return out, direct
}
