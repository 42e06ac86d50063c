// File: embed.go
// Role: Demoucron–Malgrange–Pertuiset incremental planar embedding of a
// single biconnected graph, represented as a rotation system (cyclic
// neighbor order per vertex) from which faces are traced on demand.
//
// This is the shared primitive behind witness.Witness (run once per
// biconnected block of the input) and spqr.Build (run once per R-node
// skeleton, which is itself always biconnected — in fact triconnected).
package witness

import "github.com/katalvlaran/planarmesh/graphx"

// dart is a directed traversal of one edge: from -> to via edge.
type dart struct {
	from, to graphx.VertexID
	edge     graphx.EdgeID
}

// Embedding is a planar combinatorial embedding of a biconnected graph,
// stored as a rotation system (cyclic neighbor order at each vertex).
// Faces are derived lazily by tracing the rotation system.
type Embedding struct {
	rot map[graphx.VertexID][]dart

	faces      [][]dart
	faceOfDart map[dart]int
}

// NumFaces returns the number of combinatorial faces, tracing them on
// first use.
func (e *Embedding) NumFaces() int {
	e.ensureFaces()

	return len(e.faces)
}

// VertexFaces returns the distinct face ids incident to v.
func (e *Embedding) VertexFaces(v graphx.VertexID) []int {
	e.ensureFaces()

	seen := make(map[int]struct{})
	out := make([]int, 0, len(e.rot[v]))
	for _, d := range e.rot[v] {
		fid := e.faceOfDart[d]
		if _, ok := seen[fid]; !ok {
			seen[fid] = struct{}{}
			out = append(out, fid)
		}
	}

	return out
}

// EdgeFaces returns the (left, right) face ids incident to the edge
// traversed as u->v (the two faces on either side of the edge).
func (e *Embedding) EdgeFaces(u, v graphx.VertexID, edgeID graphx.EdgeID) (left, right int) {
	e.ensureFaces()

	left = e.faceOfDart[dart{from: u, to: v, edge: edgeID}]
	right = e.faceOfDart[dart{from: v, to: u, edge: edgeID}]

	return left, right
}

func (e *Embedding) ensureFaces() {
	if e.faces != nil {
		return
	}

	// position of the dart (from, to, edge) within rot[from].
	posInRot := make(map[dart]int)
	for v, lst := range e.rot {
		for i, d := range lst {
			posInRot[dart{from: v, to: d.to, edge: d.edge}] = i
		}
	}

	visited := make(map[dart]bool)
	faceOf := make(map[dart]int)
	var faces [][]dart
	for v, lst := range e.rot {
		for _, d0 := range lst {
			start := dart{from: v, to: d0.to, edge: d0.edge}
			if visited[start] {
				continue
			}
			var face []dart
			cur := start
			for {
				visited[cur] = true
				faceOf[cur] = len(faces)
				face = append(face, cur)

				rev := dart{from: cur.to, to: cur.from, edge: cur.edge}
				p, ok := posInRot[rev]
				if !ok {
					// Shouldn't happen in a consistent rotation system: every
					// dart has a matching reverse dart at its target vertex.
					break
				}
				nextList := e.rot[cur.to]
				nd := nextList[(p+1)%len(nextList)]
				cur = dart{from: cur.to, to: nd.to, edge: nd.edge}
				if cur == start {
					break
				}
			}
			faces = append(faces, face)
		}
	}
	e.faces = faces
	e.faceOfDart = faceOf
}

// faceVertexSet returns the distinct vertices on the boundary of face id.
func (e *Embedding) faceVertexSet(face int) map[graphx.VertexID]struct{} {
	e.ensureFaces()
	out := make(map[graphx.VertexID]struct{})
	for _, d := range e.faces[face] {
		out[d.from] = struct{}{}
	}

	return out
}

// EmbedResult is the outcome of attempting to embed a biconnected graph.
type EmbedResult struct {
	Planar    bool
	Embedding *Embedding

	// PartialEdges and FragmentEdges are populated only when Planar is
	// false: PartialEdges is the edge set successfully embedded before
	// the failure, FragmentEdges is the edge set of the fragment that
	// could not be routed into any existing face.
	PartialEdges  []graphx.Edge
	FragmentEdges []graphx.Edge
}

// EmbedBiconnected computes a planar embedding of the biconnected graph
// given by vertices and edges (edges may include parallels; vertices need
// not be 0-based or contiguous). It never returns an error for a
// structurally valid biconnected input; EmbedResult.Planar reports the
// planarity verdict.
func EmbedBiconnected(vertices []graphx.VertexID, edges []graphx.Edge) *EmbedResult {
	if len(vertices) == 1 {
		return &EmbedResult{Planar: true, Embedding: &Embedding{rot: map[graphx.VertexID][]dart{vertices[0]: nil}}}
	}
	if len(vertices) == 2 {
		return embedBond(vertices, edges)
	}

	return embedDMP(vertices, edges)
}

// embedBond handles the 2-vertex case: any number of parallel edges
// between the same pair of vertices is trivially planar (a "bond"), with
// a single face per edge-gap (N edges -> N faces, each bounded by two
// consecutive parallel edges).
func embedBond(vertices []graphx.VertexID, edges []graphx.Edge) *EmbedResult {
	a, b := vertices[0], vertices[1]
	rot := map[graphx.VertexID][]dart{a: nil, b: nil}
	for _, e := range edges {
		rot[a] = append(rot[a], dart{from: a, to: b, edge: e.ID})
		rot[b] = append(rot[b], dart{from: b, to: a, edge: e.ID})
	}
	// Reverse b's rotation so each consecutive pair of parallel edges
	// bounds a face on both sides (standard planar bond embedding).
	for i, j := 0, len(rot[b])-1; i < j; i, j = i+1, j-1 {
		rot[b][i], rot[b][j] = rot[b][j], rot[b][i]
	}

	return &EmbedResult{Planar: true, Embedding: &Embedding{rot: rot}}
}

// embedDMP runs the Demoucron–Malgrange–Pertuiset incremental embedding
// for a biconnected graph on 3+ vertices.
func embedDMP(vertices []graphx.VertexID, edges []graphx.Edge) *EmbedResult {
	adj := buildAdjacency(vertices, edges)

	cycleVerts, cycleEdges, ok := findInitialCycle(vertices, adj)
	if !ok {
		// A biconnected graph on >=3 vertices always has a cycle through
		// every vertex's neighborhood; failing here means the input was
		// not actually biconnected (caller error).
		return &EmbedResult{Planar: false, FragmentEdges: edges}
	}

	embedded := make(map[graphx.VertexID]bool, len(vertices))
	rot := make(map[graphx.VertexID][]dart, len(vertices))
	for _, v := range vertices {
		rot[v] = nil
	}
	for i, v := range cycleVerts {
		embedded[v] = true
		prev := cycleVerts[(i-1+len(cycleVerts))%len(cycleVerts)]
		next := cycleVerts[(i+1)%len(cycleVerts)]
		rot[v] = []dart{
			{from: v, to: next, edge: cycleEdges[i]},
			{from: v, to: prev, edge: cycleEdges[(i-1+len(cycleEdges))%len(cycleEdges)]},
		}
	}

	usedEdge := make(map[graphx.EdgeID]bool, len(edges))
	for _, id := range cycleEdges {
		usedEdge[id] = true
	}
	pending := make([]graphx.Edge, 0, len(edges))
	for _, e := range edges {
		if !usedEdge[e.ID] {
			pending = append(pending, e)
		}
	}

	emb := &Embedding{rot: rot}

	for len(pending) > 0 {
		frags := findFragments(vertices, embedded, pending)
		if len(frags) == 0 {
			break
		}

		best := -1
		var bestFaces []int
		for i, f := range frags {
			emb.faces = nil // invalidate memoized faces before re-querying
			faces := admissibleFaces(emb, f.contacts)
			if best == -1 || len(faces) < len(bestFaces) {
				best = i
				bestFaces = faces
				if len(faces) <= 1 {
					break
				}
			}
		}
		chosen := frags[best]
		if len(bestFaces) == 0 {
			return &EmbedResult{
				Planar:        false,
				PartialEdges:  embeddedEdgeList(rot),
				FragmentEdges: chosen.allEdges,
			}
		}

		embedFragmentEar(emb, chosen, bestFaces[0], embedded, &pending)
	}

	if len(pending) > 0 {
		// No embeddable fragment remained admissible: non-planar.
		frags := findFragments(vertices, embedded, pending)
		frag := frags[0]
		return &EmbedResult{
			Planar:        false,
			PartialEdges:  embeddedEdgeList(rot),
			FragmentEdges: frag.allEdges,
		}
	}

	return &EmbedResult{Planar: true, Embedding: emb}
}

func embeddedEdgeList(rot map[graphx.VertexID][]dart) []graphx.Edge {
	seen := make(map[graphx.EdgeID]bool)
	out := make([]graphx.Edge, 0)
	for v, lst := range rot {
		for _, d := range lst {
			if !seen[d.edge] {
				seen[d.edge] = true
				out = append(out, graphx.Edge{ID: d.edge, U: v, V: d.to})
			}
		}
	}

	return out
}

func buildAdjacency(vertices []graphx.VertexID, edges []graphx.Edge) map[graphx.VertexID][]graphx.Edge {
	adj := make(map[graphx.VertexID][]graphx.Edge, len(vertices))
	for _, v := range vertices {
		adj[v] = nil
	}
	for _, e := range edges {
		adj[e.U] = append(adj[e.U], e)
		adj[e.V] = append(adj[e.V], graphx.Edge{ID: e.ID, U: e.V, V: e.U})
	}

	return adj
}

// findInitialCycle locates a cycle via DFS tree + first back edge found.
func findInitialCycle(vertices []graphx.VertexID, adj map[graphx.VertexID][]graphx.Edge) ([]graphx.VertexID, []graphx.EdgeID, bool) {
	if len(vertices) == 0 {
		return nil, nil, false
	}
	parent := make(map[graphx.VertexID]graphx.VertexID)
	parentEdge := make(map[graphx.VertexID]graphx.EdgeID)
	visited := make(map[graphx.VertexID]bool)
	order := make([]graphx.VertexID, 0, len(vertices))

	root := vertices[0]
	visited[root] = true
	order = append(order, root)
	stack := []graphx.VertexID{root}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		advanced := false
		for _, e := range adj[v] {
			w := e.V
			if !visited[w] {
				visited[w] = true
				parent[w] = v
				parentEdge[w] = e.ID
				order = append(order, w)
				stack = append(stack, w)
				advanced = true
				break
			}
			if w != parent[v] || e.ID != parentEdge[v] {
				if w == v {
					continue // self-loop, never part of a cycle witness
				}
				// Found a back/cross edge not equal to the tree edge just
				// used to reach v: trace ancestors of v looking for w.
				if anc, ok := ancestorPath(parent, v, w); ok {
					cycleVerts := append([]graphx.VertexID{w}, anc...)
					cycleEdges := make([]graphx.EdgeID, 0, len(cycleVerts))
					cycleEdges = append(cycleEdges, e.ID)
					for i := 1; i < len(cycleVerts); i++ {
						cycleEdges = append(cycleEdges, parentEdge[cycleVerts[i]])
					}

					return cycleVerts, cycleEdges, true
				}
			}
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}

	return nil, nil, false
}

// ancestorPath returns the path from v up to (and excluding) w via parent
// pointers, i.e. [v, parent(v), ..., child-of-w], provided w is a strict
// ancestor of v.
func ancestorPath(parent map[graphx.VertexID]graphx.VertexID, v, w graphx.VertexID) ([]graphx.VertexID, bool) {
	path := []graphx.VertexID{v}
	cur := v
	for {
		p, ok := parent[cur]
		if !ok {
			return nil, false
		}
		if p == w {
			return path, true
		}
		path = append(path, p)
		cur = p
	}
}

// fragment is a maximal group of not-yet-embedded edges attached to the
// current embedding through one or more contact vertices.
type fragment struct {
	contacts []graphx.VertexID
	allEdges []graphx.Edge
}

// findFragments groups pending edges into fragments by connectivity
// through not-yet-embedded vertices (direct chords between two embedded
// vertices each form their own singleton fragment).
func findFragments(vertices []graphx.VertexID, embedded map[graphx.VertexID]bool, pending []graphx.Edge) []fragment {
	// union-find over not-yet-embedded vertices
	parent := make(map[graphx.VertexID]graphx.VertexID)
	var find func(graphx.VertexID) graphx.VertexID
	find = func(v graphx.VertexID) graphx.VertexID {
		if parent[v] != v {
			parent[v] = find(parent[v])
		}
		return parent[v]
	}
	for _, v := range vertices {
		if !embedded[v] {
			parent[v] = v
		}
	}
	for _, e := range pending {
		if !embedded[e.U] && !embedded[e.V] {
			ru, rv := find(e.U), find(e.V)
			if ru != rv {
				parent[ru] = rv
			}
		}
	}

	groups := make(map[graphx.VertexID]*fragment)
	var chords []fragment
	for _, e := range pending {
		switch {
		case embedded[e.U] && embedded[e.V]:
			chords = append(chords, fragment{contacts: []graphx.VertexID{e.U, e.V}, allEdges: []graphx.Edge{e}})
		case !embedded[e.U] && !embedded[e.V]:
			root := find(e.U)
			g, ok := groups[root]
			if !ok {
				g = &fragment{}
				groups[root] = g
			}
			g.allEdges = append(g.allEdges, e)
		default:
			newV, oldV := e.U, e.V
			if embedded[e.U] {
				newV, oldV = e.V, e.U
			}
			root := find(newV)
			g, ok := groups[root]
			if !ok {
				g = &fragment{}
				groups[root] = g
			}
			g.allEdges = append(g.allEdges, e)
			g.contacts = append(g.contacts, oldV)
		}
	}

	out := make([]fragment, 0, len(groups)+len(chords))
	for _, g := range groups {
		out = append(out, *g)
	}
	out = append(out, chords...)

	return out
}

// admissibleFaces returns, for the given contact vertices, the face ids
// of emb whose boundary contains every contact.
func admissibleFaces(emb *Embedding, contacts []graphx.VertexID) []int {
	n := emb.NumFaces()
	var out []int
	for f := 0; f < n; f++ {
		bound := emb.faceVertexSet(f)
		all := true
		for _, c := range contacts {
			if _, ok := bound[c]; !ok {
				all = false
				break
			}
		}
		if all {
			out = append(out, f)
		}
	}

	return out
}

// embedFragmentEar finds one simple path ("ear") within frag connecting
// two of its contact vertices through not-yet-embedded vertices (or, for
// a chord fragment, the direct edge itself), and splices it into face
// `face` of emb. Any remainder of the fragment becomes new pending edges
// re-evaluated on the next loop iteration.
func embedFragmentEar(emb *Embedding, frag fragment, face int, embedded map[graphx.VertexID]bool, pending *[]graphx.Edge) {
	// Build adjacency restricted to this fragment's own edges.
	adj := make(map[graphx.VertexID][]graphx.Edge)
	for _, e := range frag.allEdges {
		adj[e.U] = append(adj[e.U], e)
		adj[e.V] = append(adj[e.V], graphx.Edge{ID: e.ID, U: e.V, V: e.U})
	}

	contactSet := make(map[graphx.VertexID]bool, len(frag.contacts))
	for _, c := range frag.contacts {
		contactSet[c] = true
	}

	// BFS from the first contact (through the fragment's internal, not
	// yet embedded vertices) until we reach ANY other contact.
	start := frag.contacts[0]
	type node struct {
		from graphx.VertexID
		edge graphx.EdgeID
	}
	parent := map[graphx.VertexID]node{start: {}}
	queue := []graphx.VertexID{start}
	var end graphx.VertexID
	found := false
	for len(queue) > 0 && !found {
		v := queue[0]
		queue = queue[1:]
		for _, e := range adj[v] {
			w := e.V
			if _, seen := parent[w]; seen {
				continue
			}
			parent[w] = node{from: v, edge: e.ID}
			if contactSet[w] && w != start {
				end = w
				found = true
				break
			}
			if !embedded[w] {
				queue = append(queue, w)
			}
		}
	}

	var pathEdges []graphx.Edge
	var pathVerts []graphx.VertexID
	cur := end
	for cur != start {
		n := parent[cur]
		pathEdges = append([]graphx.Edge{{ID: n.edge, U: n.from, V: cur}}, pathEdges...)
		pathVerts = append([]graphx.VertexID{cur}, pathVerts...)
		cur = n.from
	}
	pathVerts = append([]graphx.VertexID{start}, pathVerts...)

	spliceIntoFace(emb, face, pathVerts, pathEdges)

	for _, v := range pathVerts {
		embedded[v] = true
	}

	usedEdge := make(map[graphx.EdgeID]bool, len(pathEdges))
	for _, e := range pathEdges {
		usedEdge[e.ID] = true
	}
	rest := (*pending)[:0]
	for _, e := range *pending {
		if !usedEdge[e.ID] {
			rest = append(rest, e)
		}
	}
	*pending = rest
}

// spliceIntoFace inserts path (a simple path whose two endpoints already
// lie on face, and whose internal vertices are brand new) into the
// rotation system, splitting face into two new faces.
func spliceIntoFace(emb *Embedding, face int, pathVerts []graphx.VertexID, pathEdges []graphx.Edge) {
	emb.ensureFaces()
	boundary := emb.faces[face]

	a, b := pathVerts[0], pathVerts[len(pathVerts)-1]

	// Locate the darts in the face boundary departing from a and from b,
	// so we can insert the new path edge immediately before them in each
	// vertex's rotation, i.e. in this face's corner at that vertex
	// (splitting the face along the path).
	insertAfter := func(v graphx.VertexID, newDart dart) {
		var target dart
		haveTarget := false
		for _, bd := range boundary {
			if bd.from == v {
				target = bd
				haveTarget = true
				break
			}
		}
		lst := emb.rot[v]
		idx := -1
		if haveTarget {
			for i, d := range lst {
				if d == target {
					idx = i
					break
				}
			}
		}
		if idx == -1 {
			emb.rot[v] = append(lst, newDart)
			return
		}
		out := make([]dart, 0, len(lst)+1)
		out = append(out, lst[:idx]...)
		out = append(out, newDart)
		out = append(out, lst[idx:]...)
		emb.rot[v] = out
	}

	if len(pathVerts) == 2 {
		// direct chord a-b
		e := pathEdges[0]
		insertAfter(a, dart{from: a, to: b, edge: e.ID})
		insertAfter(b, dart{from: b, to: a, edge: e.ID})
	} else {
		// internal vertices get a simple 2-entry rotation each (degree 2
		// along the freshly embedded path).
		for i := 1; i < len(pathVerts)-1; i++ {
			v := pathVerts[i]
			prevEdge := pathEdges[i-1]
			nextEdge := pathEdges[i]
			emb.rot[v] = []dart{
				{from: v, to: pathVerts[i+1], edge: nextEdge.ID},
				{from: v, to: pathVerts[i-1], edge: prevEdge.ID},
			}
		}
		firstEdge := pathEdges[0]
		lastEdge := pathEdges[len(pathEdges)-1]
		insertAfter(a, dart{from: a, to: pathVerts[1], edge: firstEdge.ID})
		insertAfter(b, dart{from: b, to: pathVerts[len(pathVerts)-2], edge: lastEdge.ID})
	}

	emb.faces = nil
	emb.faceOfDart = nil
}
