package treeindex

// Index answers ancestor and LCA queries over a rooted forest in
// O(log n) per query after an O(n log n) build, using a binary-lifting
// table. Roots are nodes whose parent is -1.
type Index struct {
	parent []int
	depth  []int
	up     [][]int // up[k][v] is the 2^k-th ancestor of v, or -1
	logN   int
}

// Build constructs an Index from a parent array: parent[v] is the
// parent of node v, or -1 if v is a root. Multiple roots (a forest)
// are supported. parent must not contain a cycle.
func Build(parent []int) *Index {
	n := len(parent)
	logN := 1
	for (1 << uint(logN)) < n+1 {
		logN++
	}

	depth := make([]int, n)
	computed := make([]bool, n)

	var resolve func(v int) int
	resolve = func(v int) int {
		if computed[v] {
			return depth[v]
		}
		if parent[v] < 0 {
			depth[v] = 0
		} else {
			depth[v] = resolve(parent[v]) + 1
		}
		computed[v] = true

		return depth[v]
	}
	for v := 0; v < n; v++ {
		resolve(v)
	}

	up := make([][]int, logN)
	up[0] = make([]int, n)
	copy(up[0], parent)
	for k := 1; k < logN; k++ {
		up[k] = make([]int, n)
		for v := 0; v < n; v++ {
			mid := up[k-1][v]
			if mid < 0 {
				up[k][v] = -1
			} else {
				up[k][v] = up[k-1][mid]
			}
		}
	}

	return &Index{parent: parent, depth: depth, up: up, logN: logN}
}

// Parent returns v's parent, or -1 if v is a root.
func (ix *Index) Parent(v int) int {
	return ix.parent[v]
}

// Depth returns v's distance from its tree's root.
func (ix *Index) Depth(v int) int {
	return ix.depth[v]
}

// KthAncestor returns the ancestor of v exactly k steps up, or -1 if
// v has fewer than k ancestors.
func (ix *Index) KthAncestor(v, k int) int {
	if v >= 0 && k > ix.depth[v] {
		return -1
	}
	for b := 0; b < ix.logN && v >= 0; b++ {
		if k&(1<<uint(b)) != 0 {
			v = ix.up[b][v]
		}
	}

	return v
}

// IsAncestor reports whether a is an ancestor of b (a == b counts as
// an ancestor of itself).
func (ix *Index) IsAncestor(a, b int) bool {
	if ix.depth[b] < ix.depth[a] {
		return false
	}

	return ix.KthAncestor(b, ix.depth[b]-ix.depth[a]) == a
}

// LCA returns the nearest common ancestor of a and b. a and b must lie
// in the same tree of the forest.
func (ix *Index) LCA(a, b int) int {
	if ix.depth[a] < ix.depth[b] {
		a, b = b, a
	}
	a = ix.KthAncestor(a, ix.depth[a]-ix.depth[b])
	if a == b {
		return a
	}
	for k := ix.logN - 1; k >= 0; k-- {
		if ix.up[k][a] != ix.up[k][b] {
			a = ix.up[k][a]
			b = ix.up[k][b]
		}
	}

	return ix.up[0][a]
}
