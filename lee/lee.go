package lee

import (
	"fmt"
	"log/slog"
)

// GridSearch is a wavefront search engine bound to one board size.
// It is not safe for overlapping calls; see Shared.
type GridSearch struct {
	width, height int
	labels        []int // row-major: y*width + x
	frontier      []int
	next          []int
	offsets       [4][2]int
	log           *slog.Logger
}

// New allocates a width×height engine with an all-Empty board.
// Returns ErrInvalidDimensions for non-positive sizes and
// ErrOptionViolation for bad options.
// Complexity: O(W×H) memory.
func New(width, height int, opts ...Option) (*GridSearch, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	gs := &GridSearch{
		width:  width,
		height: height,
		labels: make([]int, width*height),
		log:    o.Logger,
	}
	for i, d := range o.ScanOrder {
		gs.offsets[i] = d.Offset()
	}

	return gs, nil
}

// Width returns the board width.
func (gs *GridSearch) Width() int { return gs.width }

// Height returns the board height.
func (gs *GridSearch) Height() int { return gs.height }

// InBounds reports whether c lies on the board.
// Complexity: O(1).
func (gs *GridSearch) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < gs.width && c.Y >= 0 && c.Y < gs.height
}

// Label returns the label left at c by the last search. It is meant for
// diagnostics: an off-board c reads as Empty instead of failing, so callers
// that need to tell the two apart must check InBounds first.
func (gs *GridSearch) Label(c Cell) int {
	if !gs.InBounds(c) {
		return Empty
	}
	return gs.labels[gs.index(c)]
}

// index maps c to a row-major index: y*width + x.
func (gs *GridSearch) index(c Cell) int {
	return c.Y*gs.width + c.X
}

// coordinate converts a row-major index back to a cell.
func (gs *GridSearch) coordinate(i int) Cell {
	return Cell{X: i % gs.width, Y: i / gs.width}
}

// FindPath returns the shortest 4-directional path from src to dst that
// avoids obstacles. ok is false, with a nil error, when dst is unreachable.
//
// Among equal-length paths, the one returned is fixed by the scan order:
// walking back from dst, the first neighbor in scan order that carries the
// previous layer is taken.
//
// Returns ErrOutOfBounds if any input cell is off the board and
// ErrLabelChain if reconstruction finds no predecessor.
// Complexity: O(W×H) time and memory.
func (gs *GridSearch) FindPath(src, dst Cell, obstacles []Cell) (path Path, ok bool, err error) {
	layer, err := gs.search(src, dst, obstacles)
	if err != nil || layer == 0 {
		return nil, false, err
	}
	return gs.reconstruct(dst, layer)
}

// reconstruct rebuilds the path from the current labels. A broken chain
// is reported as an error with ok=false, never as a plain "no path".
func (gs *GridSearch) reconstruct(dst Cell, layer int) (Path, bool, error) {
	path, err := gs.backtrack(dst, layer)
	if err != nil {
		return nil, false, err
	}
	return path, true, nil
}

// IsReachable reports whether dst can be reached from src avoiding
// obstacles. It runs the same labeling as FindPath without reconstruction,
// so the two always agree.
func (gs *GridSearch) IsReachable(src, dst Cell, obstacles []Cell) (bool, error) {
	layer, err := gs.search(src, dst, obstacles)
	return layer > 0, err
}

// search labels the board and returns dst's layer, or 0 when dst was not reached.
func (gs *GridSearch) search(src, dst Cell, obstacles []Cell) (int, error) {
	if err := gs.validate(src, dst, obstacles); err != nil {
		return 0, err
	}

	// 1. reset and mark obstacles
	clear(gs.labels)
	for _, c := range obstacles {
		gs.labels[gs.index(c)] = Obstacle
	}

	// 2. label the source and fill
	layer := gs.fill(gs.index(src), gs.index(dst))

	gs.log.Debug("lee: search done",
		"src", src.String(), "dst", dst.String(),
		"obstacles", len(obstacles),
		"layer", layer,
		"found", layer > 0)

	return layer, nil
}

// fill expands the wavefront from s until d is labeled. It returns d's
// layer, or 0 if the frontier emptied first.
func (gs *GridSearch) fill(s, d int) int {
	gs.labels[s] = Start
	if s == d {
		return Start
	}
	gs.frontier = append(gs.frontier[:0], s)
	for layer := Start + 1; len(gs.frontier) > 0; layer++ {
		gs.next = gs.next[:0]
		for _, u := range gs.frontier {
			uc := gs.coordinate(u)
			for _, o := range gs.offsets {
				vc := Cell{X: uc.X + o[0], Y: uc.Y + o[1]}
				if !gs.InBounds(vc) {
					continue
				}
				v := gs.index(vc)
				if gs.labels[v] != Empty {
					continue
				}
				gs.labels[v] = layer
				gs.next = append(gs.next, v)
			}
		}
		if gs.labels[d] == layer {
			return layer
		}
		gs.frontier, gs.next = gs.next, gs.frontier
	}
	return 0
}

// backtrack walks from dst down to the Start label, picking at each step
// the first neighbor in scan order whose label is one less.
func (gs *GridSearch) backtrack(dst Cell, layer int) (Path, error) {
	path := make(Path, layer)
	path[layer-1] = dst
	cur := dst
	for l := layer - 1; l >= Start; l-- {
		prev, found := gs.neighborWithLabel(cur, l)
		if !found {
			return nil, fmt.Errorf("%w: no layer %d neighbor of %v", ErrLabelChain, l, cur)
		}
		path[l-1] = prev
		cur = prev
	}
	return path, nil
}

func (gs *GridSearch) neighborWithLabel(c Cell, label int) (Cell, bool) {
	for _, o := range gs.offsets {
		n := Cell{X: c.X + o[0], Y: c.Y + o[1]}
		if gs.InBounds(n) && gs.labels[gs.index(n)] == label {
			return n, true
		}
	}
	return Cell{}, false
}

func (gs *GridSearch) validate(src, dst Cell, obstacles []Cell) error {
	if !gs.InBounds(src) {
		return fmt.Errorf("%w: source %v on %dx%d board", ErrOutOfBounds, src, gs.width, gs.height)
	}
	if !gs.InBounds(dst) {
		return fmt.Errorf("%w: destination %v on %dx%d board", ErrOutOfBounds, dst, gs.width, gs.height)
	}
	for _, c := range obstacles {
		if !gs.InBounds(c) {
			return fmt.Errorf("%w: obstacle %v on %dx%d board", ErrOutOfBounds, c, gs.width, gs.height)
		}
	}
	return nil
}
