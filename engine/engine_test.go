package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarmesh/engine"
	"github.com/katalvlaran/planarmesh/graphx"
)

func allFalse(n int) []bool { return make([]bool, n) }

func TestNewRejectsMismatchedLength(t *testing.T) {
	_, err := engine.New(3, []graphx.EdgePair{{U: 0, V: 1}}, []bool{true, false})
	require.ErrorIs(t, err, engine.ErrMismatchedLength)
}

func TestNewRejectsOutOfRange(t *testing.T) {
	_, err := engine.New(2, []graphx.EdgePair{{U: 0, V: 5}}, allFalse(1))
	require.ErrorIs(t, err, engine.ErrOutOfRange)
}

func TestNewRejectsSelfLoop(t *testing.T) {
	_, err := engine.New(2, []graphx.EdgePair{{U: 0, V: 0}}, allFalse(1))
	require.ErrorIs(t, err, engine.ErrSelfLoop)
}

// Scenario: K4 built up one edge at a time should remain fully
// addable throughout (K4 is planar).
func TestK4BuildUp(t *testing.T) {
	edges := graphx.Complete(4)
	eng, err := engine.New(4, edges, allFalse(len(edges)))
	require.NoError(t, err)

	for id := range edges {
		snap := eng.Query()
		require.True(t, snap.Addable[id], "edge %d should be addable", id)
		require.NoError(t, eng.Set(id, true))
	}

	snap := eng.Query()
	for id := range edges {
		require.True(t, snap.Added[id])
	}
}

// Scenario: K5 with 9 of its 10 edges added leaves the 10th
// non-addable (it would complete a K5 subdivision).
func TestK5NineOfTenEdgesBlocksTenth(t *testing.T) {
	edges := graphx.Complete(5)
	require.Len(t, edges, 10)

	added := allFalse(10)
	for i := 0; i < 9; i++ {
		added[i] = true
	}
	eng, err := engine.New(5, edges, added)
	require.NoError(t, err)

	snap := eng.Query()
	require.False(t, snap.Addable[9])
}

// Scenario: K3,3 with 8 of its 9 edges added leaves the 9th
// non-addable.
func TestK33EightOfNineEdgesBlocksNinth(t *testing.T) {
	edges := graphx.CompleteBipartite(3, 3)
	require.Len(t, edges, 9)

	added := allFalse(9)
	for i := 0; i < 8; i++ {
		added[i] = true
	}
	eng, err := engine.New(6, edges, added)
	require.NoError(t, err)

	snap := eng.Query()
	require.False(t, snap.Addable[8])
}

// Scenario: a pendant edge bridging a planar block to a fresh vertex
// is always addable, regardless of how saturated the existing block
// is.
func TestPendantEdgeAlwaysAddable(t *testing.T) {
	// K4 on {0,1,2,3}, fully added, plus a pendant candidate (3,4).
	k4 := graphx.Complete(4)
	edges := append(append([]graphx.EdgePair{}, k4...), graphx.EdgePair{U: 3, V: 4})
	added := make([]bool, len(edges))
	for i := range k4 {
		added[i] = true
	}
	eng, err := engine.New(5, edges, added)
	require.NoError(t, err)

	snap := eng.Query()
	require.True(t, snap.Addable[len(edges)-1])
}

// Scenario: the chords of K5 (i.e. every edge beyond a base 5-cycle)
// are individually addable one at a time, but adding all of them
// together is not possible (K5 is non-planar) -- each individual
// chord is addable against the bare cycle.
func TestK5ChordsIndividuallyAddableAgainstCycle(t *testing.T) {
	cycle := graphx.Cycle(5)
	chords := []graphx.EdgePair{{U: 0, V: 2}, {U: 0, V: 3}, {U: 1, V: 3}, {U: 1, V: 4}, {U: 2, V: 4}}
	edges := append(append([]graphx.EdgePair{}, cycle...), chords...)
	added := make([]bool, len(edges))
	for i := range cycle {
		added[i] = true
	}
	eng, err := engine.New(5, edges, added)
	require.NoError(t, err)

	snap := eng.Query()
	for i := range chords {
		require.True(t, snap.Addable[len(cycle)+i], "chord %d should be addable against the bare cycle", i)
	}
}

// Scenario: three parallel candidate edges between the same two
// vertices are all simultaneously addable (a P-node bond never
// saturates).
func TestThreeParallelEdgesAllAddable(t *testing.T) {
	edges := []graphx.EdgePair{{U: 0, V: 1}, {U: 0, V: 1}, {U: 0, V: 1}}
	eng, err := engine.New(2, edges, allFalse(3))
	require.NoError(t, err)

	require.NoError(t, eng.Set(0, true))
	snap := eng.Query()
	require.True(t, snap.Addable[1])
	require.True(t, snap.Addable[2])

	require.NoError(t, eng.Set(1, true))
	snap = eng.Query()
	require.True(t, snap.Addable[2])
}

func TestSetRejectsNonAddableEdge(t *testing.T) {
	edges := graphx.Complete(5)
	added := allFalse(10)
	for i := 0; i < 9; i++ {
		added[i] = true
	}
	eng, err := engine.New(5, edges, added)
	require.NoError(t, err)

	err = eng.Set(9, true)
	require.ErrorIs(t, err, engine.ErrNotAddable)
}

func TestOnRecalculateHookFires(t *testing.T) {
	var calls int
	var lastStats engine.RecalcStats
	edges := graphx.Cycle(4)
	eng, err := engine.New(4, edges, allFalse(len(edges)), engine.WithOnRecalculate(func(s engine.RecalcStats) {
		calls++
		lastStats = s
	}))
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Equal(t, 4, lastStats.Components) // no edges added yet: 4 isolated vertices

	require.NoError(t, eng.Set(0, true))
	require.Equal(t, 2, calls)
}
