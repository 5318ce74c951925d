// Package lee finds shortest 4-directional paths on a bounded 2D grid
// using the wavefront (Lee) algorithm, for a game client that must pick
// its next move around obstacles.
//
// What
//
//   - GridSearch owns a reusable width×height board of integer labels.
//   - FindPath returns the shortest path from a source to a destination,
//     or ok=false when the destination is walled off.
//   - IsReachable answers the same question without rebuilding the path.
//   - Render draws the labeled board, highlighting a path.
//   - Shared serializes one GridSearch across goroutines.
//
// Labels
//
//	Empty (0)       unvisited
//	Obstacle (-10)  blocked for the current query
//	d >= 1          BFS layer; the source is Start (1)
//
// Algorithm
//
//  1. Re-zero the board and write every obstacle.
//  2. Label the source with Start.
//  3. Expand layer by layer: every unlabeled, in-bounds 4-neighbor of the
//     current frontier gets the next layer number and joins the next
//     frontier. Stop when the destination is labeled or the frontier is empty.
//  4. Walk back from the destination, at each step taking the first
//     neighbor in scan order whose label is one layer lower.
//
// Determinism
//
//	The default scan order is Left, Up, Right, Down. Among equal-length
//	paths, FindPath always returns the one this order selects. Use
//	WithScanOrder to pick another permutation.
//
// Complexity (W×H = board cells)
//
//   - Time:   O(W×H) per call, every cell is labeled at most once.
//   - Memory: O(W×H), allocated once per GridSearch and reused.
//
// Errors
//
//   - ErrInvalidDimensions  width or height is not positive.
//   - ErrOptionViolation    invalid Option (e.g. a scan order that repeats a direction).
//   - ErrOutOfBounds        source, destination or obstacle off the board.
//   - ErrLabelChain         reconstruction found no predecessor (labeling bug).
//   - ErrNotAdjacent        Path.Moves on cells that do not touch.
//
// An unreachable destination is not an error: FindPath returns ok=false.
//
// Usage
//
//	gs, err := lee.New(5, 5)
//	if err != nil {
//		// ErrInvalidDimensions or ErrOptionViolation
//	}
//	path, ok, err := gs.FindPath(lee.Pt(0, 0), lee.Pt(4, 4), walls)
//	if err == nil && ok {
//		next, _, _ := path.Next()
//		fmt.Println(next)
//		fmt.Println(gs.Render(path, lee.ANSIStyle()))
//	}
package lee
