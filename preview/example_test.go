package preview_test

import (
	"fmt"

	"github.com/katalvlaran/lvldungeon/dungeon"
	"github.com/katalvlaran/lvldungeon/geom"
	"github.com/katalvlaran/lvldungeon/gridgraph"
	"github.com/katalvlaran/lvldungeon/preview"
)

func ExampleASCII() {
	g, _ := gridgraph.NewVoxelGrid(geom.C(5, 1, 2))
	g.Stamp(geom.C(0, 0, 0), geom.C(2, 1, 2), gridgraph.Room)
	g.Stamp(geom.C(2, 0, 1), geom.C(3, 1, 1), gridgraph.Corridor)
	lvl := &dungeon.Level{
		Grid:  g,
		Spawn: dungeon.Marker{Entry: geom.C(0, 0, 0)},
		Exit:  dungeon.Marker{Entry: geom.C(4, 0, 1)},
	}
	fmt.Print(preview.ASCII(lvl))
	// Output:
	// y=0
	// S#...
	// ##++E
}
