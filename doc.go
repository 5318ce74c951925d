// Package leetrace is a shortest-path engine for bounded 2D grids, built
// for game clients that must choose their next move around obstacles.
//
// Layout:
//
//	lee/           — GridSearch wavefront engine, board renderer, Shared wrapper
//	cmd/leetrace/  — reads an ASCII scene and prints the traced board and moves
//
// Quick ASCII example (S source, D destination, # obstacle):
//
//	S.#.
//	..#D
//	....
//
// The engine labels every cell with its BFS layer from S and walks the
// labels back from D:
//
//	  1  2 XX  0
//	  2  3 XX  7
//	  3  4  5  6
//
//	go get github.com/katalvlaran/leetrace/lee
package leetrace
