package dungeon_test

import (
	"testing"

	"github.com/katalvlaran/lvldungeon/dungeon"
)

// BenchmarkGenerate measures full generation on the stock configuration.
func BenchmarkGenerate(b *testing.B) {
	g, err := dungeon.NewGenerator(dungeon.DefaultConfig(), dungeon.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Generate(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerate_Small measures the 10×3×10 layout with verification.
func BenchmarkGenerate_Small(b *testing.B) {
	g, err := dungeon.NewGenerator(smallConfig(), dungeon.WithSeed(1), dungeon.WithVerifyCarvedConnectivity())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Generate(); err != nil {
			b.Fatal(err)
		}
	}
}
