package astar_test

import (
	"testing"

	"github.com/katalvlaran/lvldungeon/astar"
	"github.com/katalvlaran/lvldungeon/geom"
)

// BenchmarkFindPath measures a corner-to-corner search on a 30×5×30 lattice.
func BenchmarkFindPath(b *testing.B) {
	size := geom.C(30, 5, 30)
	p, err := astar.New(size)
	if err != nil {
		b.Fatal(err)
	}
	cost := stairCost(size)
	start, end := geom.C(0, 0, 0), geom.C(29, 4, 29)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.FindPath(start, end, cost); err != nil {
			b.Fatal(err)
		}
	}
}
