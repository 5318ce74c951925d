package lee_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/leetrace/lee"
)

// BenchmarkFindPath_Open measures a corner-to-corner search on an empty
// 100×100 board, which labels every cell.
// Complexity: O(W×H)
func BenchmarkFindPath_Open(b *testing.B) {
	const n = 100
	gs, err := lee.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	src, dst := lee.Pt(0, 0), lee.Pt(n-1, n-1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = gs.FindPath(src, dst, nil)
	}
}

// BenchmarkIsReachable_Random measures reachability on a 100×100 board
// with roughly 25% obstacles, deterministic seed.
func BenchmarkIsReachable_Random(b *testing.B) {
	const n = 100
	r := rand.New(rand.NewSource(42))
	var obstacles []lee.Cell
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if (x > 0 || y > 0) && r.Intn(4) == 0 {
				obstacles = append(obstacles, lee.Pt(x, y))
			}
		}
	}
	gs, err := lee.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gs.IsReachable(lee.Pt(0, 0), lee.Pt(n-1, n-1), obstacles)
	}
}
