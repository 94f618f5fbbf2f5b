package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridnav/astar"
)

// BenchmarkFindPath_Open100 measures a corner-to-corner search on an empty 100×100 grid.
func BenchmarkFindPath_Open100(b *testing.B) {
	m := emptyModel(b, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(m, m.Start(), m.Goal())
	}
}

// BenchmarkFindPath_Cluttered200 measures a 200×200 grid with 25% obstacles.
func BenchmarkFindPath_Cluttered200(b *testing.B) {
	m := randomModel(b, rand.New(rand.NewSource(1)), 200, 0.25)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(m, m.Start(), m.Goal())
	}
}
