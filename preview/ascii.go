package preview

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvldungeon/dungeon"
	"github.com/katalvlaran/lvldungeon/geom"
	"github.com/katalvlaran/lvldungeon/gridgraph"
)

var glyphs = map[gridgraph.CellType]byte{
	gridgraph.None:     '.',
	gridgraph.Room:     '#',
	gridgraph.Corridor: '+',
	gridgraph.Stairs:   '=',
}

// ASCII returns a text dump of every layer of lvl, lowest first.
func ASCII(lvl *dungeon.Level) string {
	if lvl == nil || lvl.Grid == nil {
		return ""
	}
	size := lvl.Grid.Size()
	var b strings.Builder
	for y := 0; y < size.Y; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "y=%d\n", y)
		for z := 0; z < size.Z; z++ {
			for x := 0; x < size.X; x++ {
				b.WriteByte(glyph(lvl, geom.C(x, y, z)))
			}
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func glyph(lvl *dungeon.Level, c geom.Cell) byte {
	switch c {
	case lvl.Spawn.Entry:
		return 'S'
	case lvl.Exit.Entry:
		return 'E'
	}

	return glyphs[lvl.Grid.At(c)]
}
