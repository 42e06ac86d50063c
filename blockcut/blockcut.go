package blockcut

import (
	"sort"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/planarmesh/graphx"
	"github.com/katalvlaran/planarmesh/treeindex"
)

// Tree is a built block-cut decomposition. Node ids are dense ints
// 0..NumNodes()-1; callers discover the node touching a given vertex
// via BCNode and walk the tree with Parent/NCA/Type.
type Tree struct {
	kind   []Kind
	parent []int
	idx    *treeindex.Index

	cutVertex []graphx.VertexID // valid when kind[x] == CutNodeKind

	blockVerts []sortedVerts              // valid when kind[x] == BlockNodeKind
	localOf    []map[graphx.VertexID]int  // orig vertex -> local id, per block node
	blockEdges [][]graphx.Edge            // local-id edges, per block node

	bcNodeOf map[graphx.VertexID]int // vertex -> its BCNode (cut vertex's C-node, else its sole B-node)

	compElems []*disjoint.Element // connected-component membership, one element per original vertex
}

type sortedVerts []graphx.VertexID

// NumNodes returns the total number of B-nodes and C-nodes in the tree
// (or forest, if the source graph was disconnected).
func (t *Tree) NumNodes() int { return len(t.kind) }

// Type reports whether node x is a block or a cut vertex.
func (t *Tree) Type(x int) Kind { return t.kind[x] }

// Parent returns x's parent in the block-cut tree, or -1 if x is a
// root (one root per connected component of the source graph).
func (t *Tree) Parent(x int) int { return t.parent[x] }

// NCA returns the nearest common ancestor of x and y. x and y must lie
// in the same tree (i.e. the same connected component).
func (t *Tree) NCA(x, y int) int { return t.idx.LCA(x, y) }

// BCNode returns the tree node that properly contains v: v's C-node if
// v is a cut vertex, otherwise the single B-node containing it.
func (t *Tree) BCNode(v graphx.VertexID) (int, bool) {
	x, ok := t.bcNodeOf[v]

	return x, ok
}

// CutVertexOf returns the original graph vertex a C-node represents.
// ok is false if x is not a C-node.
func (t *Tree) CutVertexOf(x int) (graphx.VertexID, bool) {
	if x < 0 || x >= len(t.kind) || t.kind[x] != CutNodeKind {
		return 0, false
	}

	return t.cutVertex[x], true
}

// RepVertex returns v's local-id copy within block node x's auxiliary
// graph. ok is false if x is not a B-node or does not contain v.
func (t *Tree) RepVertex(v graphx.VertexID, x int) (int, bool) {
	if x < 0 || x >= len(t.kind) || t.kind[x] != BlockNodeKind {
		return 0, false
	}
	local, ok := t.localOf[x][v]

	return local, ok
}

// SameComponent reports whether u and v lie in the same connected
// component of the source graph (trivially true for u == v).
func (t *Tree) SameComponent(u, v graphx.VertexID) bool {
	if int(u) < 0 || int(u) >= len(t.compElems) || int(v) < 0 || int(v) >= len(t.compElems) {
		return false
	}

	return t.compElems[u].Find() == t.compElems[v].Find()
}

// BlockVertices returns the original-graph vertices belonging to block
// node x, in local-id order.
func (t *Tree) BlockVertices(x int) []graphx.VertexID {
	return append([]graphx.VertexID{}, t.blockVerts[x]...)
}

// HEdges returns block node x's auxiliary-graph edges with endpoints
// translated to local ids, ready for SPQR decomposition.
func (t *Tree) HEdges(x int) []graphx.Edge {
	if x < 0 || x >= len(t.kind) || t.kind[x] != BlockNodeKind {
		return nil
	}

	return append([]graphx.Edge{}, t.blockEdges[x]...)
}

// Build decomposes g into its block-cut tree.
func Build(g *graphx.Graph) *Tree {
	n := g.N()
	edges := g.Edges()

	compElems := make([]*disjoint.Element, n)
	for i := range compElems {
		compElems[i] = disjoint.NewElement()
	}
	for _, e := range edges {
		disjoint.Union(compElems[e.U], compElems[e.V])
	}

	blocks := biconnectedBlocks(n, edges)

	blockOf := make(map[graphx.VertexID][]int, n)
	for bi, b := range blocks {
		for _, v := range b.vertices {
			blockOf[v] = append(blockOf[v], bi)
		}
	}

	cutVertexSet := make(map[graphx.VertexID]bool)
	for v, bs := range blockOf {
		if len(bs) >= 2 {
			cutVertexSet[v] = true
		}
	}
	cutList := make([]graphx.VertexID, 0, len(cutVertexSet))
	for v := range cutVertexSet {
		cutList = append(cutList, v)
	}
	sort.Slice(cutList, func(i, j int) bool { return cutList[i] < cutList[j] })

	numB := len(blocks)
	numC := len(cutList)
	total := numB + numC

	t := &Tree{
		kind:       make([]Kind, total),
		parent:     make([]int, total),
		cutVertex:  make([]graphx.VertexID, total),
		blockVerts: make([]sortedVerts, total),
		localOf:    make([]map[graphx.VertexID]int, total),
		blockEdges: make([][]graphx.Edge, total),
		bcNodeOf:   make(map[graphx.VertexID]int, n),
		compElems:  compElems,
	}
	for bi, b := range blocks {
		t.kind[bi] = BlockNodeKind
		vs := append([]graphx.VertexID{}, b.vertices...)
		sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
		t.blockVerts[bi] = vs
		local := make(map[graphx.VertexID]int, len(vs))
		for li, v := range vs {
			local[v] = li
		}
		t.localOf[bi] = local
		localEdges := make([]graphx.Edge, len(b.edges))
		for i, e := range b.edges {
			localEdges[i] = graphx.Edge{ID: e.ID, U: graphx.VertexID(local[e.U]), V: graphx.VertexID(local[e.V])}
		}
		t.blockEdges[bi] = localEdges
	}
	cNodeOf := make(map[graphx.VertexID]int, numC)
	for ci, v := range cutList {
		x := numB + ci
		t.kind[x] = CutNodeKind
		t.cutVertex[x] = v
		cNodeOf[v] = x
	}

	// bcNodeOf: cut vertices map to their C-node; everything else maps
	// to its sole containing B-node.
	for v, bs := range blockOf {
		if cutVertexSet[v] {
			t.bcNodeOf[v] = cNodeOf[v]
		} else {
			t.bcNodeOf[v] = bs[0]
		}
	}

	// Bipartite adjacency between B-nodes and C-nodes: a B-node bi is
	// adjacent to C-node cNodeOf[v] for every cut vertex v it contains.
	treeAdj := make([][]int, total)
	for bi, b := range blocks {
		for _, v := range b.vertices {
			if cutVertexSet[v] {
				cx := cNodeOf[v]
				treeAdj[bi] = append(treeAdj[bi], cx)
				treeAdj[cx] = append(treeAdj[cx], bi)
			}
		}
	}

	// Root each connected component of the block-cut forest at its
	// lowest-index node and assign parents by BFS.
	for x := range t.parent {
		t.parent[x] = -2 // sentinel: not yet visited
	}
	for root := 0; root < total; root++ {
		if t.parent[root] != -2 {
			continue
		}
		t.parent[root] = -1
		queue := []int{root}
		for len(queue) > 0 {
			x := queue[0]
			queue = queue[1:]
			for _, y := range treeAdj[x] {
				if t.parent[y] != -2 {
					continue
				}
				t.parent[y] = x
				queue = append(queue, y)
			}
		}
	}

	t.idx = treeindex.Build(t.parent)

	return t
}
