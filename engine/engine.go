package engine

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/planarmesh/blockcut"
	"github.com/katalvlaran/planarmesh/graphx"
	"github.com/katalvlaran/planarmesh/oracle"
	"github.com/katalvlaran/planarmesh/spqr"
)

// RecalcStats summarizes one recalculate pass, handed to any
// OnRecalculate hook. It mirrors the teacher's habit of returning
// rich, inspectable results (algorithms.BFSResult) rather than a bare
// boolean or nothing at all.
type RecalcStats struct {
	Components       int
	Blocks           int
	NonTrivialBlocks int
	SPQRNodes        int
}

// EngineOption configures an Engine at construction time.
type EngineOption func(*engineConfig)

type engineConfig struct {
	onRecalculate func(RecalcStats)
}

// WithOnRecalculate registers a hook fired at the end of every
// recalculate, mirroring the teacher's visitor-hook observability
// style (algorithms.BFSOptions.OnVisit) in place of a logging
// dependency the teacher never pulls in.
func WithOnRecalculate(fn func(RecalcStats)) EngineOption {
	return func(c *engineConfig) { c.onRecalculate = fn }
}

// Snapshot is an immutable view of the engine's state at the moment it
// was published: which candidate edges are currently added, and which
// of the rest could be added right now without destroying planarity.
type Snapshot struct {
	Added   []bool
	Addable []bool
}

// Engine is the toggle/query edit surface over a fixed vertex count
// and fixed candidate edge multiset.
type Engine struct {
	mu sync.RWMutex

	n        int
	edgesAll []graphx.EdgePair
	added    []bool
	cfg      engineConfig

	snap atomic.Pointer[Snapshot]
}

// New constructs an Engine over vertices 0..n-1 and the candidate edge
// multiset edgesAll, with addedInit as the initial membership of each
// candidate (same length and order as edgesAll).
func New(n int, edgesAll []graphx.EdgePair, addedInit []bool, opts ...EngineOption) (*Engine, error) {
	if len(addedInit) != len(edgesAll) {
		return nil, ErrMismatchedLength
	}
	for _, e := range edgesAll {
		if int(e.U) < 0 || int(e.U) >= n || int(e.V) < 0 || int(e.V) >= n {
			return nil, ErrOutOfRange
		}
		if e.U == e.V {
			return nil, ErrSelfLoop
		}
	}

	eg := &Engine{
		n:        n,
		edgesAll: append([]graphx.EdgePair{}, edgesAll...),
		added:    append([]bool{}, addedInit...),
	}
	for _, opt := range opts {
		opt(&eg.cfg)
	}

	eg.recalculate()

	return eg, nil
}

// Set toggles candidate edge id to present (added) or absent. Adding
// an edge the current snapshot does not mark addable fails with
// ErrNotAddable; removing an edge (or setting an edge to its current
// state) always succeeds.
func (e *Engine) Set(id int, present bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if id < 0 || id >= len(e.edgesAll) {
		return ErrOutOfRange
	}
	if e.added[id] == present {
		return nil
	}
	if present {
		cur := e.snap.Load()
		if !cur.Addable[id] {
			return ErrNotAddable
		}
	}

	e.added[id] = present
	e.recalculate()

	return nil
}

// Query returns the most recently published Snapshot. It never
// blocks on a concurrent Set.
func (e *Engine) Query() Snapshot {
	return *e.snap.Load()
}

// recalculate rebuilds the block-cut tree and every non-trivial
// block's SPQR tree from the currently-added subgraph, then derives
// the addable mask for every not-yet-added candidate. Callers must
// hold e.mu for writing.
func (e *Engine) recalculate() {
	g := graphx.NewGraph(e.n)
	for id, p := range e.edgesAll {
		if e.added[id] {
			_ = g.AddEdge(graphx.EdgeID(id), p.U, p.V)
		}
	}

	bc := blockcut.Build(g)

	trees := oracle.SPQRByBlock{}
	blocks := 0
	nonTrivial := 0
	spqrNodes := 0
	for x := 0; x < bc.NumNodes(); x++ {
		if bc.Type(x) != blockcut.BlockNodeKind {
			continue
		}
		blocks++
		verts := bc.BlockVertices(x)
		if len(verts) < 3 {
			continue
		}
		local := make([]graphx.VertexID, len(verts))
		for i, v := range verts {
			lv, _ := bc.RepVertex(v, x)
			local[i] = graphx.VertexID(lv)
		}
		tr, err := spqr.Build(local, bc.HEdges(x))
		if err != nil {
			continue // a malformed block never arises from a valid recalculate input
		}
		trees[x] = oracle.NewBlock(tr)
		nonTrivial++
		spqrNodes += tr.NumNodes()
	}

	addable := make([]bool, len(e.edgesAll))
	for id, p := range e.edgesAll {
		if e.added[id] {
			continue
		}
		addable[id] = oracle.CanAddAlongBC(bc, trees, p.U, p.V)
	}

	components := distinctComponents(g)

	e.snap.Store(&Snapshot{
		Added:   append([]bool{}, e.added...),
		Addable: addable,
	})

	if e.cfg.onRecalculate != nil {
		e.cfg.onRecalculate(RecalcStats{
			Components:       components,
			Blocks:           blocks,
			NonTrivialBlocks: nonTrivial,
			SPQRNodes:        spqrNodes,
		})
	}
}

func distinctComponents(g *graphx.Graph) int {
	comp := g.Components()
	seen := make(map[int]bool, len(comp))
	for _, c := range comp {
		seen[c] = true
	}

	return len(seen)
}
