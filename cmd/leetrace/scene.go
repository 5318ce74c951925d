package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/leetrace/lee"
)

// Scene glyphs.
const (
	glyphEmpty    = '.'
	glyphObstacle = '#'
	glyphSource   = 'S'
	glyphDest     = 'D'
)

var (
	// ErrEmptyScene indicates a scene with no rows.
	ErrEmptyScene = errors.New("scene: no rows")
	// ErrRaggedScene indicates rows of differing lengths.
	ErrRaggedScene = errors.New("scene: all rows must have the same length")
	// ErrUnknownGlyph indicates a character other than . # S D.
	ErrUnknownGlyph = errors.New("scene: unknown glyph")
	// ErrMarkers indicates a missing or repeated S or D.
	ErrMarkers = errors.New("scene: need exactly one S and one D")
)

// Scene is one query read from an ASCII map.
type Scene struct {
	Width, Height int
	Source, Dest  lee.Cell
	Obstacles     []lee.Cell
}

// ParseScene reads an ASCII map, one board row per line. Trailing blank
// lines are ignored.
func ParseScene(r io.Reader) (*Scene, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scene: read: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmptyScene
	}

	s := &Scene{Width: len(rows[0]), Height: len(rows)}
	var sources, dests int
	for y, row := range rows {
		if len(row) != s.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedScene, y, len(row), s.Width)
		}
		for x := 0; x < len(row); x++ {
			c := lee.Pt(x, y)
			switch row[x] {
			case glyphEmpty:
			case glyphObstacle:
				s.Obstacles = append(s.Obstacles, c)
			case glyphSource:
				s.Source = c
				sources++
			case glyphDest:
				s.Dest = c
				dests++
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownGlyph, row[x], c)
			}
		}
	}
	if sources != 1 || dests != 1 {
		return nil, fmt.Errorf("%w: found %d S and %d D", ErrMarkers, sources, dests)
	}
	return s, nil
}
