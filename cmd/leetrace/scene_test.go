package main

import (
	"strings"
	"testing"

	"github.com/katalvlaran/leetrace/lee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScene(t *testing.T) {
	in := "S.#.\r\n..#D\r\n....\n\n\n"
	s, err := ParseScene(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4, s.Width)
	assert.Equal(t, 3, s.Height)
	assert.Equal(t, lee.Pt(0, 0), s.Source)
	assert.Equal(t, lee.Pt(3, 1), s.Dest)
	assert.Equal(t, []lee.Cell{lee.Pt(2, 0), lee.Pt(2, 1)}, s.Obstacles)
}

func TestParseScene_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", ErrEmptyScene},
		{"OnlyBlank", "\n\n", ErrEmptyScene},
		{"Ragged", "S..\n.D\n", ErrRaggedScene},
		{"BlankMiddleRow", "S.\n\n.D\n", ErrRaggedScene},
		{"UnknownGlyph", "S.x\n..D\n", ErrUnknownGlyph},
		{"NoSource", "...\n..D\n", ErrMarkers},
		{"TwoDests", "S.D\n..D\n", ErrMarkers},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseScene(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
