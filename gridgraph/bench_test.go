package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// BenchmarkReachable floods a 500×500 grid with ~20% obstacles.
// Complexity: O(N²·4)
func BenchmarkReachable(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	var obstacles []gridgraph.Cell
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if (r != 0 || c != 0) && (r != n-1 || c != n-1) && rng.Intn(5) == 0 {
				obstacles = append(obstacles, gridgraph.Cell{Row: r, Col: c})
			}
		}
	}
	m, err := gridgraph.New(gridgraph.Layout{Size: n, Goal: gridgraph.Cell{Row: n - 1, Col: n - 1}, Obstacles: obstacles})
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Reachable(m.Start())
	}
}
