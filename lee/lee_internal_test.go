package lee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBacktrack_BrokenChain erases a middle label after a successful fill
// and expects reconstruction to fail loudly.
func TestBacktrack_BrokenChain(t *testing.T) {
	gs, err := New(3, 1)
	require.NoError(t, err)
	_, ok, err := gs.FindPath(Pt(0, 0), Pt(2, 0), nil)
	require.NoError(t, err)
	require.True(t, ok)

	gs.labels[gs.index(Pt(1, 0))] = Empty

	path, err := gs.backtrack(Pt(2, 0), 3)
	assert.ErrorIs(t, err, ErrLabelChain)
	assert.Contains(t, err.Error(), "no layer 2 neighbor of (2,0)")
	assert.Nil(t, path)
}

// TestReconstruct_BrokenChain checks the FindPath tail: a broken chain
// comes back as an error with ok=false, distinct from an unreachable target.
func TestReconstruct_BrokenChain(t *testing.T) {
	gs, err := New(4, 4)
	require.NoError(t, err)
	path, ok, err := gs.FindPath(Pt(0, 0), Pt(3, 3), nil)
	require.NoError(t, err)
	require.True(t, ok)

	// remove every layer-4 cell so no layer-5 cell has a predecessor
	for i, l := range gs.labels {
		if l == 4 {
			gs.labels[i] = Obstacle
		}
	}

	got, ok, err := gs.reconstruct(Pt(3, 3), path.Len())
	assert.ErrorIs(t, err, ErrLabelChain)
	assert.False(t, ok)
	assert.Nil(t, got)
}

// TestReconstruct_Intact matches FindPath when labels are untouched.
func TestReconstruct_Intact(t *testing.T) {
	gs, err := New(4, 4)
	require.NoError(t, err)
	want, ok, err := gs.FindPath(Pt(0, 0), Pt(3, 3), nil)
	require.NoError(t, err)
	require.True(t, ok)

	got, ok, err := gs.reconstruct(Pt(3, 3), want.Len())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}
