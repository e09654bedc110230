package preview_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldungeon/dungeon"
	"github.com/katalvlaran/lvldungeon/geom"
	"github.com/katalvlaran/lvldungeon/gridgraph"
	"github.com/katalvlaran/lvldungeon/preview"
)

// handLevel builds a 4×2×3 level with one of each cell class.
func handLevel(t *testing.T) *dungeon.Level {
	t.Helper()
	g, err := gridgraph.NewVoxelGrid(geom.C(4, 2, 3))
	require.NoError(t, err)
	g.Stamp(geom.C(2, 0, 1), geom.C(2, 1, 2), gridgraph.Room)
	require.NoError(t, g.Set(geom.C(1, 0, 1), gridgraph.Corridor))
	require.NoError(t, g.Set(geom.C(0, 1, 2), gridgraph.Stairs))

	return &dungeon.Level{
		Grid:  g,
		Spawn: dungeon.Marker{Entry: geom.C(0, 0, 0)},
		Exit:  dungeon.Marker{Entry: geom.C(3, 1, 0)},
	}
}

func TestASCII(t *testing.T) {
	want := "y=0\n" +
		"S...\n" +
		".+##\n" +
		"..##\n" +
		"\n" +
		"y=1\n" +
		"...E\n" +
		"....\n" +
		"=...\n"
	assert.Equal(t, want, preview.ASCII(handLevel(t)))
	assert.Empty(t, preview.ASCII(nil))
}

func TestLayout(t *testing.T) {
	lay := preview.Layout{Size: geom.C(4, 2, 3), Cell: 5}
	w, h := lay.Bounds()
	assert.Equal(t, 45, w)
	assert.Equal(t, 15, h)

	x, y := lay.Origin(geom.C(1, 1, 2))
	assert.InDelta(t, 30.0, x, 1e-12)
	assert.InDelta(t, 10.0, y, 1e-12)

	x, y = lay.Project(geom.NewVertex(2, 1.5, 1))
	assert.InDelta(t, 35.0, x, 1e-12)
	assert.InDelta(t, 5.0, y, 1e-12)
}

func TestRenderPNG(t *testing.T) {
	img, err := preview.RenderPNG(handLevel(t), 8)
	require.NoError(t, err)
	assert.Equal(t, 9*8, img.Bounds().Dx())
	assert.Equal(t, 3*8, img.Bounds().Dy())

	// Centre of room cell (3,0,2) and of the empty cell (2,1,1).
	assertPixel(t, preview.ColorRoom, img.At(3*8+4, 2*8+4))
	assertPixel(t, preview.ColorNone, img.At((5+2)*8+4, 1*8+4))
	assertPixel(t, preview.ColorCorridor, img.At(1*8+4, 1*8+4))
}

func assertPixel(t *testing.T, want, got interface{ RGBA() (r, g, b, a uint32) }) {
	t.Helper()
	wr, wg, wb, _ := want.RGBA()
	gr, gg, gb, _ := got.RGBA()
	assert.InDelta(t, wr>>8, gr>>8, 2)
	assert.InDelta(t, wg>>8, gg>>8, 2)
	assert.InDelta(t, wb>>8, gb>>8, 2)
}

func TestRenderPNG_Errors(t *testing.T) {
	_, err := preview.RenderPNG(nil, 4)
	assert.ErrorIs(t, err, preview.ErrNilLevel)

	_, err = preview.RenderPNG(handLevel(t), 0)
	assert.ErrorIs(t, err, preview.ErrCellSize)
}

func TestSavePNG(t *testing.T) {
	lvl, err := dungeon.Generate(dungeon.WithSeed(11))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "level.png")
	require.NoError(t, preview.SavePNG(lvl, path, 4))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	size := lvl.Grid.Size()
	assert.Equal(t, (size.X*size.Y+size.Y-1)*4, img.Bounds().Dx())
	assert.Equal(t, size.Z*4, img.Bounds().Dy())
}
