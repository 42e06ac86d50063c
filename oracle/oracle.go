package oracle

import (
	"github.com/katalvlaran/planarmesh/blockcut"
	"github.com/katalvlaran/planarmesh/faceindex"
	"github.com/katalvlaran/planarmesh/graphx"
	"github.com/katalvlaran/planarmesh/spqr"
	"github.com/katalvlaran/planarmesh/treeindex"
)

// Block wraps one biconnected block's SPQR tree with the indices and
// caches block_linkable needs across repeated queries: a tree-ancestor
// index for LCA/k-th-ancestor walks, a lazily-built face index per
// R-node, the allocation-node map (the shallowest SPQR node containing
// each block-local vertex), and a linkability memo. All of it is
// scoped to one recalculate pass; a fresh Engine.recalculate call
// builds a fresh Block per block and discards the old ones, so the
// memo never survives past the edit that invalidated it.
type Block struct {
	tree    *spqr.Tree
	idx     *treeindex.Index
	faceIdx map[int]*faceindex.Index
	repr    map[graphx.VertexID]int
	memo    map[pairKey]bool
}

type pairKey struct{ a, b graphx.VertexID }

func normalizedPair(a, b graphx.VertexID) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{a: a, b: b}
}

// NewBlock precomputes tree's ancestor index and allocation-node map.
func NewBlock(tree *spqr.Tree) *Block {
	parent := make([]int, tree.NumNodes())
	for x := 0; x < tree.NumNodes(); x++ {
		parent[x] = tree.Parent(x)
	}

	repr := make(map[graphx.VertexID]int)
	for x := 0; x < tree.NumNodes(); x++ {
		for _, v := range tree.SkeletonVertices(x) {
			if _, ok := repr[v]; !ok {
				repr[v] = x
			}
		}
	}

	return &Block{
		tree:    tree,
		idx:     treeindex.Build(parent),
		faceIdx: make(map[int]*faceindex.Index),
		repr:    repr,
		memo:    make(map[pairKey]bool),
	}
}

func (b *Block) faceIndexAt(x int) *faceindex.Index {
	if fi, ok := b.faceIdx[x]; ok {
		return fi
	}
	fi := faceindex.New(b.tree.Embedding(x))
	b.faceIdx[x] = fi

	return fi
}

func (b *Block) vertexFaceIDs(x int, v graphx.VertexID) []uint32 {
	return b.faceIndexAt(x).VertexFaceIDs(v)
}

// edgeContainsVertex reports whether the tree edge linking child up to
// parent has target as an endpoint in parent's own skeleton copy.
func (b *Block) edgeContainsVertex(parent, child int, target graphx.VertexID) bool {
	id, ok := b.tree.ParentEdgeID(child)
	if !ok {
		return false
	}
	e, ok := b.tree.SkeletonEdgeByID(parent, id)
	if !ok {
		return false
	}

	return e.U == target || e.V == target
}

// walkUpContaining greedily climbs from start toward stop (an ancestor
// of start), returning the highest ancestor still reachable from start
// without leaving the subtree that "contains" target: either the node
// itself is target's allocation node, or every tree edge crossed along
// the way still has target as an endpoint.
func (b *Block) walkUpContaining(start, stop int, target graphx.VertexID) int {
	repr, ok := b.repr[target]
	if !ok {
		return start
	}
	cur := start
	for k := 30; k >= 0; k-- {
		step := 1 << uint(k)
		if step > b.idx.Depth(start)+1 {
			continue
		}
		cand := b.idx.KthAncestor(cur, step)
		if cand < 0 || b.idx.Depth(cand) < b.idx.Depth(stop) {
			continue
		}
		switch {
		case cand == repr:
			cur = cand
		case b.idx.IsAncestor(cand, repr):
			dist := b.idx.Depth(repr) - b.idx.Depth(cand)
			child := repr
			if dist > 1 {
				child = b.idx.KthAncestor(repr, dist-1)
			}
			if child >= 0 && b.edgeContainsVertex(cand, child, target) {
				cur = cand
			}
		}
	}

	return cur
}

// walkDownContaining greedily descends from from (an ancestor) toward
// toward, the mirror image of walkUpContaining: it finds the deepest
// descendant of from, on the path down to toward, still reachable
// without leaving the subtree containing target.
func (b *Block) walkDownContaining(from, toward int, target graphx.VertexID) int {
	if from < 0 || toward < 0 {
		return from
	}
	dist := b.idx.Depth(toward) - b.idx.Depth(from)
	if dist <= 0 {
		return from
	}
	for k := 30; k >= 0; k-- {
		step := 1 << uint(k)
		if step > dist {
			continue
		}
		child := b.idx.KthAncestor(toward, dist-step)
		if child < 0 {
			continue
		}
		parent := b.idx.Parent(child)
		if parent >= 0 && b.edgeContainsVertex(parent, child, target) {
			dist -= step
		}
	}

	return b.idx.KthAncestor(toward, dist)
}

// computeBoundaries corrects a and b's raw allocation nodes (aT, bT)
// into the highest nodes, on the paths up to and back down from their
// LCA w, that still genuinely contain a resp. b.
func (b *Block) computeBoundaries(aT, bT, w int, a, bTarget graphx.VertexID) (aBoundary, bBoundary int) {
	aBoundary = b.walkUpContaining(aT, w, a)
	if aBoundary == w {
		aBoundary = b.walkDownContaining(w, bT, a)
	}
	bBoundary = b.walkUpContaining(bT, w, bTarget)
	if bBoundary == w {
		bBoundary = b.walkDownContaining(w, aT, bTarget)
	}

	return aBoundary, bBoundary
}

func (b *Block) isOnPathUpToLCA(x, start, lca int) bool {
	return b.idx.IsAncestor(x, start) && b.idx.IsAncestor(lca, x)
}

// pathCrossed reports whether walking up from pathStart to w would
// pass through secondB at or below firstB's depth, meaning the two
// boundary corrections already overlap on one branch.
func (b *Block) pathCrossed(pathStart, firstB, secondB, w int) bool {
	if !b.isOnPathUpToLCA(secondB, pathStart, w) {
		return false
	}
	firstOn := b.isOnPathUpToLCA(firstB, pathStart, w)

	return !firstOn || b.idx.Depth(secondB) > b.idx.Depth(firstB)
}

// endpointMaskAt computes, at node vT, which of the (up to two) faces
// of skeleton edge edgeID also carry endpoint: bit 0 for the first
// face, bit 1 for the second. S/P nodes admit both faces
// unconditionally (0b11); edgeID absent means no routing at all (0).
func (b *Block) endpointMaskAt(vT int, edgeID graphx.EdgeID, hasEdge bool, endpoint graphx.VertexID) int {
	if !hasEdge {
		return 0
	}
	if b.tree.Type(vT) != spqr.RTypeNode {
		return 0b11
	}
	left, right, ok := b.tree.FacesOfSkeletonEdge(vT, edgeID)
	if !ok {
		return 0
	}
	vf := b.vertexFaceIDs(vT, endpoint)
	mask := 0
	if faceindex.ContainsFaceID(vf, uint32(left)) {
		mask |= 1
	}
	if faceindex.ContainsFaceID(vf, uint32(right)) {
		mask |= 2
	}

	return mask
}

func (b *Block) seedOK(nodeID int, endpoint graphx.VertexID) bool {
	edgeID, hasEdge := b.tree.ParentEdgeID(nodeID)

	return b.endpointMaskAt(nodeID, edgeID, hasEdge, endpoint) != 0
}

// walkSideToLCA walks from start up to lca, tracking a 2-bit face
// mask seeded from endpoint's position at the first ascent step and
// propagated across each intermediate R-node by face equality
// (S/P nodes never narrow the mask). It returns the tree-edge id
// entering lca on this side (false if start == lca) and the surviving
// mask (0 meaning no routing survives).
func (b *Block) walkSideToLCA(start, lca int, endpoint graphx.VertexID) (enterEdgeID graphx.EdgeID, hasEnterEdge bool, mask int) {
	if start == lca {
		return 0, false, 0
	}
	parentAtBoundary := b.idx.Parent(start)
	upEdgeID, hasUp := b.tree.ParentEdgeID(start)

	seedMask := b.endpointMaskAt(parentAtBoundary, upEdgeID, hasUp, endpoint)
	if seedMask == 0 {
		return upEdgeID, hasUp, 0
	}

	stepsToLCA := b.idx.Depth(parentAtBoundary) - b.idx.Depth(lca)
	if stepsToLCA == 0 {
		return upEdgeID, hasUp, seedMask
	}

	mask = seedMask
	child := start
	for s := 0; s < stepsToLCA; s++ {
		cur := b.idx.Parent(child)
		if cur == lca {
			break
		}
		if b.tree.Type(cur) != spqr.RTypeNode {
			mask = 0b11
		} else {
			finID, _ := b.tree.ParentEdgeID(child)
			foutID, hasFout := b.tree.ParentEdgeID(cur)
			next := 0
			if hasFout {
				finLeft, finRight, _ := b.tree.FacesOfSkeletonEdge(cur, finID)
				foutLeft, foutRight, _ := b.tree.FacesOfSkeletonEdge(cur, foutID)
				if mask&1 != 0 {
					if finLeft == foutLeft {
						next |= 1
					}
					if finLeft == foutRight {
						next |= 2
					}
				}
				if mask&2 != 0 {
					if finRight == foutLeft {
						next |= 1
					}
					if finRight == foutRight {
						next |= 2
					}
				}
			}
			mask = next
		}
		if mask == 0 {
			break
		}
		child = cur
	}
	if mask == 0 {
		return upEdgeID, hasUp, 0
	}

	stepDown := stepsToLCA - 1
	childBelowLCA := parentAtBoundary
	if stepDown > 0 {
		childBelowLCA = b.idx.KthAncestor(parentAtBoundary, stepDown)
	}
	if childBelowLCA >= 0 {
		id, has := b.tree.ParentEdgeID(childBelowLCA)

		return id, has, mask
	}

	return upEdgeID, hasUp, mask
}

func shareFaces(a1, a2, b1, b2 int) bool {
	return a1 == b1 || a1 == b2 || a2 == b1 || a2 == b2
}

// cofacialAtNode reports whether a and b, both present in node vT's
// skeleton, share an incident face there. S/P nodes are always
// cofacial (a cycle or bond has no interior obstruction); R nodes
// require a genuine shared face.
func (b *Block) cofacialAtNode(vT int, a, bTarget graphx.VertexID) bool {
	if b.tree.Type(vT) != spqr.RTypeNode {
		return true
	}
	af := b.vertexFaceIDs(vT, a)
	bf := b.vertexFaceIDs(vT, bTarget)

	return len(faceindex.Intersect(af, bf)) > 0
}

// linkable is the uncached body of BlockLinkable: the boundary
// correction and 2-bit face-mask propagation walk of block_linkable,
// for two block-local vertices that may have no single SPQR node
// containing both.
func (b *Block) linkable(a, bTarget graphx.VertexID) bool {
	aT, ok1 := b.repr[a]
	bT, ok2 := b.repr[bTarget]
	if !ok1 || !ok2 {
		return false
	}
	if aT == bT {
		return b.cofacialAtNode(aT, a, bTarget)
	}

	w := b.idx.LCA(aT, bT)
	aBoundary, bBoundary := b.computeBoundaries(aT, bT, w, a, bTarget)

	if aBoundary != bBoundary {
		if b.pathCrossed(aT, aBoundary, bBoundary, w) || b.pathCrossed(bT, bBoundary, aBoundary, w) {
			return true
		}
	}

	w2 := b.idx.LCA(aBoundary, bBoundary)
	leftInto, hasLeftInto, leftMask := b.walkSideToLCA(aBoundary, w2, a)
	rightInto, hasRightInto, rightMask := b.walkSideToLCA(bBoundary, w2, bTarget)

	leftOK := aBoundary == w2 || (b.seedOK(aBoundary, a) && leftMask != 0)
	rightOK := bBoundary == w2 || (b.seedOK(bBoundary, bTarget) && rightMask != 0)
	if !leftOK || !rightOK {
		return false
	}

	if b.tree.Type(w2) != spqr.RTypeNode {
		return true
	}

	switch {
	case hasLeftInto && hasRightInto:
		ll, lr, _ := b.tree.FacesOfSkeletonEdge(w2, leftInto)
		rl, rr, _ := b.tree.FacesOfSkeletonEdge(w2, rightInto)

		return shareFaces(ll, lr, rl, rr)
	case hasLeftInto:
		return b.endpointMaskAt(w2, leftInto, true, bTarget) != 0
	case hasRightInto:
		return b.endpointMaskAt(w2, rightInto, true, a) != 0
	default:
		return b.cofacialAtNode(w2, a, bTarget)
	}
}

// BlockLinkable decides whether a direct new edge between block-local
// vertices a and b can be added to the block described by block while
// keeping it planar. A nil block (a trivial, fewer-than-3-vertex
// block has no SPQR tree) is always linkable. Results are memoized
// for block's lifetime, keyed by the unordered pair (a, b).
func BlockLinkable(block *Block, a, b graphx.VertexID) bool {
	if block == nil {
		return true
	}
	if a == b {
		return true
	}

	key := normalizedPair(a, b)
	if v, ok := block.memo[key]; ok {
		return v
	}
	result := block.linkable(a, b)
	block.memo[key] = result

	return result
}

// SPQRByBlock maps a block-cut B-node index to that block's SPQR
// analysis. A block small enough to be trivially planar (fewer than 3
// vertices) has no entry, or a nil one; BlockLinkable treats either as
// always linkable.
type SPQRByBlock map[int]*Block

// walkBranch walks the block-cut tree from start up to lca, visiting
// B-nodes only, calling BlockLinkable on each one straddled along the
// way with the cut vertex it shares with the block above it and
// either endVertex (the query endpoint, on the first block of the
// branch) or the cut vertex shared with the block below it. isLeft
// swaps which attachment plays which role, matching how
// can_add_along_bc tells the two sides of a query apart. It returns
// whether every block on the branch admits the routing, and the last
// C-node visited (-1 if the branch never left its starting block).
func walkBranch(bc *blockcut.Tree, blocks SPQRByBlock, start, lca int, endVertex graphx.VertexID, isLeft bool) (ok bool, lastC int) {
	lastC = -1
	cur := start
	if bc.Type(cur) != blockcut.BlockNodeKind {
		lastC = cur
		cur = bc.Parent(cur)
	}
	for cur >= 0 && cur != lca {
		pC := bc.Parent(cur)
		if lastC == lca {
			pC = lastC
		}

		upCut, _ := bc.CutVertexOf(pC)
		upLocal, _ := bc.RepVertex(upCut, cur)

		var downLocal int
		if lastC < 0 || lastC == lca {
			downLocal, _ = bc.RepVertex(endVertex, cur)
		} else {
			downCut, _ := bc.CutVertexOf(lastC)
			downLocal, _ = bc.RepVertex(downCut, cur)
		}

		attachA, attachB := graphx.VertexID(upLocal), graphx.VertexID(downLocal)
		if isLeft {
			attachA, attachB = attachB, attachA
		}
		if !BlockLinkable(blocks[cur], attachA, attachB) {
			return false, -1
		}
		if pC == lca {
			return true, pC
		}
		lastC = pC
		cur = bc.Parent(pC)
	}

	return true, lastC
}

// CanAddAlongBC decides whether a direct new edge between original
// graph vertices u and v can be added while keeping the whole graph
// planar, given the block-cut tree bc and the SPQR analysis of every
// non-trivial block. It walks each side of the block-cut tree path
// from u resp. v up to their nearest common ancestor, requiring every
// block straddled along the way to admit a routing between the two
// attachment vertices it carries; if the nearest common ancestor is
// itself a block (not a cut vertex), one final check combines both
// sides' attachments there.
func CanAddAlongBC(bc *blockcut.Tree, blocks SPQRByBlock, u, v graphx.VertexID) bool {
	if u == v {
		return false
	}
	if !bc.SameComponent(u, v) {
		// A bridge between two different components can never
		// complete a Kuratowski subdivision that wasn't already
		// there.
		return true
	}

	uB, ok1 := bc.BCNode(u)
	vB, ok2 := bc.BCNode(v)
	if !ok1 || !ok2 {
		return false
	}
	w := bc.NCA(uB, vB)

	okLeft, leftC := walkBranch(bc, blocks, uB, w, u, true)
	if !okLeft {
		return false
	}
	okRight, rightC := walkBranch(bc, blocks, vB, w, v, false)
	if !okRight {
		return false
	}

	if bc.Type(w) != blockcut.BlockNodeKind {
		return true
	}

	lAttach, lOK := branchAttachment(bc, w, uB, u, leftC)
	rAttach, rOK := branchAttachment(bc, w, vB, v, rightC)
	if !lOK || !rOK {
		return true
	}

	return BlockLinkable(blocks[w], lAttach, rAttach)
}

// branchAttachment resolves the local-id vertex a branch carries into
// block node w: the query endpoint itself if the branch never left w,
// otherwise the cut vertex of the last C-node the branch crossed.
func branchAttachment(bc *blockcut.Tree, w, startNode int, endVertex graphx.VertexID, lastC int) (graphx.VertexID, bool) {
	if startNode == w {
		local, ok := bc.RepVertex(endVertex, w)

		return graphx.VertexID(local), ok
	}
	if lastC < 0 {
		return 0, false
	}
	cv, ok := bc.CutVertexOf(lastC)
	if !ok {
		return 0, false
	}
	local, ok := bc.RepVertex(cv, w)

	return graphx.VertexID(local), ok
}
