package witness_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarmesh/graphx"
	"github.com/katalvlaran/planarmesh/witness"
)

func TestWitnessPlanarK4(t *testing.T) {
	got, err := witness.Witness(4, graphx.Complete(4))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestWitnessK5NonPlanar(t *testing.T) {
	got, err := witness.Witness(5, graphx.Complete(5))
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for i, p := range got {
		require.Less(t, p.U, p.V)
		if i > 0 {
			require.True(t, got[i-1].U < p.U || (got[i-1].U == p.U && got[i-1].V < p.V))
		}
	}
}

func TestWitnessK33NonPlanar(t *testing.T) {
	got, err := witness.Witness(6, graphx.CompleteBipartite(3, 3))
	require.NoError(t, err)
	require.NotEmpty(t, got)
}

func TestWitnessOutOfRange(t *testing.T) {
	_, err := witness.Witness(2, []graphx.EdgePair{{U: 0, V: 5}})
	require.ErrorIs(t, err, witness.ErrOutOfRange)
}

func TestWitnessSelfLoopIgnored(t *testing.T) {
	got, err := witness.Witness(3, []graphx.EdgePair{{U: 0, V: 0}, {U: 0, V: 1}})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestWitnessDisconnectedPlanar(t *testing.T) {
	edges := append(graphx.Complete(4), graphx.EdgePair{U: 4, V: 5})
	got, err := witness.Witness(6, edges)
	require.NoError(t, err)
	require.Empty(t, got)
}

// K5 has no slack edges to drop: the minimal obstruction is the whole
// graph, so the witness must deep-equal the canonical K5 edge set
// exactly (not just be non-empty).
func TestWitnessK5ObstructionIsWholeGraph(t *testing.T) {
	want := graphx.Complete(5)
	got, err := witness.Witness(5, want)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("K5 obstruction mismatch (-want +got):\n%s", diff)
	}
}
