// Package lee defines cells, directions, paths, tunable options and
// sentinel errors for the wavefront search engine.
package lee

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for lee operations.
var (
	// ErrInvalidDimensions indicates a board width or height that is not positive.
	ErrInvalidDimensions = errors.New("lee: board dimensions must be positive")
	// ErrOutOfBounds indicates a source, destination or obstacle outside the board.
	ErrOutOfBounds = errors.New("lee: cell out of board bounds")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lee: invalid option supplied")
	// ErrLabelChain indicates the backward walk found no neighbor one layer
	// below the current cell. It means the labeling phase is broken.
	ErrLabelChain = errors.New("lee: label chain broken during reconstruction")
	// ErrNotAdjacent indicates two consecutive path cells are not 4-adjacent.
	ErrNotAdjacent = errors.New("lee: cells are not adjacent")
)

// Board labels. Any label >= Start is a BFS layer number.
const (
	Empty    = 0
	Start    = 1
	Obstacle = -10
)

// Cell is a board coordinate. Two cells are equal iff their coordinates match.
type Cell struct {
	X, Y int
}

// Pt is shorthand for Cell{X: x, Y: y}.
func Pt(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Move returns the cell one step away in direction d.
func (c Cell) Move(d Direction) Cell {
	o := d.Offset()
	return Cell{X: c.X + o[0], Y: c.Y + o[1]}
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four orthogonal moves. Screen coordinates are
// used: Up decreases Y, Down increases it.
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

var directionOffsets = [...][2]int{
	Up:    {0, -1},
	Left:  {-1, 0},
	Down:  {0, 1},
	Right: {1, 0},
}

var directionNames = [...]string{
	Up:    "UP",
	Left:  "LEFT",
	Down:  "DOWN",
	Right: "RIGHT",
}

// Valid reports whether d is one of Up, Left, Down, Right.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Offset returns the (dx, dy) step of d.
func (d Direction) Offset() [2]int {
	return directionOffsets[d]
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// DirectionFromRune maps 'U', 'L', 'D', 'R' (either case) to a Direction.
func DirectionFromRune(r rune) (Direction, bool) {
	switch r {
	case 'U', 'u':
		return Up, true
	case 'L', 'l':
		return Left, true
	case 'D', 'd':
		return Down, true
	case 'R', 'r':
		return Right, true
	}
	return 0, false
}

// Step returns the direction that moves from a to b.
// Returns ErrNotAdjacent unless a and b are 4-adjacent.
func Step(a, b Cell) (Direction, error) {
	for d, o := range directionOffsets {
		if a.X+o[0] == b.X && a.Y+o[1] == b.Y {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %v -> %v", ErrNotAdjacent, a, b)
}

// Path is an ordered sequence of cells from source to destination, inclusive.
type Path []Cell

// Len returns the number of cells in the path, which equals the
// destination's layer label.
func (p Path) Len() int {
	return len(p)
}

// Contains reports whether c lies on the path.
func (p Path) Contains(c Cell) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// Moves converts consecutive cells into directions. A one-cell path has no moves.
func (p Path) Moves() ([]Direction, error) {
	if len(p) < 2 {
		return nil, nil
	}
	moves := make([]Direction, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		d, err := Step(p[i-1], p[i])
		if err != nil {
			return nil, err
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// Next returns the first move of the path, the one a game client plays
// this turn. ok is false when the path has fewer than two cells.
// Returns ErrNotAdjacent if the first two cells do not touch; paths built
// by FindPath never do that.
func (p Path) Next() (d Direction, ok bool, err error) {
	if len(p) < 2 {
		return 0, false, nil
	}
	d, err = Step(p[0], p[1])
	if err != nil {
		return 0, false, err
	}
	return d, true, nil
}

func (p Path) set() map[Cell]struct{} {
	s := make(map[Cell]struct{}, len(p))
	for _, c := range p {
		s[c] = struct{}{}
	}
	return s
}

// Option configures a GridSearch via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the tunable parameters of a GridSearch.
type Options struct {
	// ScanOrder is the fixed neighbor order used for expansion and for
	// tie-breaking during reconstruction.
	ScanOrder [4]Direction

	// Logger receives one Debug record per search.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultScanOrder is Left, Up, Right, Down.
var DefaultScanOrder = [4]Direction{Left, Up, Right, Down}

// DefaultOptions returns Options with DefaultScanOrder and a discard logger.
func DefaultOptions() Options {
	return Options{
		ScanOrder: DefaultScanOrder,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithScanOrder sets the neighbor scan order. dirs must be a permutation
// of Up, Left, Down, Right.
func WithScanOrder(dirs ...Direction) Option {
	return func(o *Options) {
		if len(dirs) != 4 {
			o.err = fmt.Errorf("%w: scan order needs 4 directions, got %d", ErrOptionViolation, len(dirs))
			return
		}
		var seen [4]bool
		for _, d := range dirs {
			if !d.Valid() || seen[d] {
				o.err = fmt.Errorf("%w: scan order %v is not a permutation", ErrOptionViolation, dirs)
				return
			}
			seen[d] = true
		}
		copy(o.ScanOrder[:], dirs)
	}
}

// ParseScanOrder turns a string such as "LURD" into a scan order.
func ParseScanOrder(s string) ([]Direction, error) {
	dirs := make([]Direction, 0, len(s))
	for _, r := range s {
		d, ok := DirectionFromRune(r)
		if !ok {
			return nil, fmt.Errorf("%w: unknown direction %q in %q", ErrOptionViolation, r, s)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// WithLogger routes search diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
