package dungeon

import (
	"math/rand"

	"github.com/katalvlaran/lvldungeon/geom"
)

// defaultSeed replaces a zero seed so the default configuration is
// reproducible.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic source. seed==0 selects defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// between draws uniformly from [lo, hi]. hi < lo yields lo.
func between(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + r.Intn(hi-lo+1)
}

// roomSize draws an extent per axis within [lo, hi].
func roomSize(r *rand.Rand, lo, hi geom.Cell) geom.Cell {
	return geom.Cell{
		X: between(r, lo.X, hi.X),
		Y: between(r, lo.Y, hi.Y),
		Z: between(r, lo.Z, hi.Z),
	}
}
