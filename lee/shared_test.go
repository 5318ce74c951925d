package lee_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/leetrace/lee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShared_Concurrent runs overlapping queries with different obstacle
// sets through one Shared engine. Run with -race.
func TestShared_Concurrent(t *testing.T) {
	s, err := lee.NewShared(6, 6)
	require.NoError(t, err)

	wall := []lee.Cell{lee.Pt(3, 0), lee.Pt(3, 1), lee.Pt(3, 2), lee.Pt(3, 3), lee.Pt(3, 4), lee.Pt(3, 5)}
	gap := []lee.Cell{lee.Pt(3, 0), lee.Pt(3, 1), lee.Pt(3, 2), lee.Pt(3, 4), lee.Pt(3, 5)}

	const workers, rounds = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				if (w+i)%2 == 0 {
					ok, err := s.IsReachable(lee.Pt(0, 0), lee.Pt(5, 5), wall)
					assert.NoError(t, err)
					assert.False(t, ok)
					continue
				}
				path, ok, err := s.FindPath(lee.Pt(0, 0), lee.Pt(5, 5), gap)
				assert.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, 11, path.Len())
			}
		}(w)
	}
	wg.Wait()
}

func TestShared_TraceAndRender(t *testing.T) {
	s, err := lee.NewShared(3, 1)
	require.NoError(t, err)

	path, ok, board, err := s.TraceAndRender(lee.Pt(0, 0), lee.Pt(2, 0), nil, lee.PlainStyle())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, lee.Path{lee.Pt(0, 0), lee.Pt(1, 0), lee.Pt(2, 0)}, path)
	assert.Equal(t, "  1  2  3", board)

	_, _, _, err = s.TraceAndRender(lee.Pt(0, 0), lee.Pt(5, 0), nil, lee.PlainStyle())
	assert.ErrorIs(t, err, lee.ErrOutOfBounds)

	_, err = lee.NewShared(0, 1)
	assert.ErrorIs(t, err, lee.ErrInvalidDimensions)
}
