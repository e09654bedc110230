package preview

import (
	"errors"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/lvldungeon/dungeon"
	"github.com/katalvlaran/lvldungeon/geom"
	"github.com/katalvlaran/lvldungeon/gridgraph"
)

var (
	// ErrNilLevel indicates a missing level or grid.
	ErrNilLevel = errors.New("preview: level has no grid")

	// ErrCellSize indicates a non-positive pixel size.
	ErrCellSize = errors.New("preview: cell size must be positive")
)

// Palette colours used by RenderPNG.
var (
	ColorNone     = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	ColorRoom     = color.RGBA{R: 140, G: 140, B: 153, A: 255}
	ColorCorridor = color.RGBA{R: 217, G: 178, B: 77, A: 255}
	ColorStairs   = color.RGBA{R: 230, G: 77, B: 51, A: 255}
	ColorEdge     = color.RGBA{R: 77, G: 204, B: 230, A: 255}
	ColorSpawn    = color.RGBA{R: 64, G: 220, B: 96, A: 255}
	ColorExit     = color.RGBA{R: 220, G: 64, B: 200, A: 255}
)

var fills = map[gridgraph.CellType]color.Color{
	gridgraph.Room:     ColorRoom,
	gridgraph.Corridor: ColorCorridor,
	gridgraph.Stairs:   ColorStairs,
}

// Layout maps grid cells to pixels: layer y occupies the panel starting at
// x = y·(X+1)·Cell, one empty column between panels.
type Layout struct {
	Size geom.Cell
	Cell int
}

// Bounds returns the canvas size in pixels.
func (l Layout) Bounds() (w, h int) {
	return (l.Size.X*l.Size.Y + l.Size.Y - 1) * l.Cell, l.Size.Z * l.Cell
}

// Origin returns the top-left pixel of cell c.
func (l Layout) Origin(c geom.Cell) (x, y float64) {
	px := float64(l.Cell)
	return float64(c.Y*(l.Size.X+1)+c.X) * px, float64(c.Z) * px
}

// Project maps a vertex to the panel of its floor layer.
func (l Layout) Project(v geom.Vertex) (x, y float64) {
	c := geom.CellOf(v)
	px := float64(l.Cell)
	ox, _ := l.Origin(geom.C(0, c.Y, 0))

	return ox + v.X()*px, v.Z() * px
}

// RenderPNG draws lvl at cellPx pixels per cell.
//
// Steps:
//  1. Fill the canvas with the None colour.
//  2. Fill every typed cell.
//  3. Stroke each selected edge.
//  4. Mark spawn and exit entries.
func RenderPNG(lvl *dungeon.Level, cellPx int) (image.Image, error) {
	dc, err := render(lvl, cellPx)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// SavePNG renders lvl and writes it to path.
func SavePNG(lvl *dungeon.Level, path string, cellPx int) error {
	dc, err := render(lvl, cellPx)
	if err != nil {
		return err
	}

	return dc.SavePNG(path)
}

func render(lvl *dungeon.Level, cellPx int) (*gg.Context, error) {
	if lvl == nil || lvl.Grid == nil {
		return nil, ErrNilLevel
	}
	if cellPx <= 0 {
		return nil, ErrCellSize
	}
	lay := Layout{Size: lvl.Grid.Size(), Cell: cellPx}
	w, h := lay.Bounds()
	dc := gg.NewContext(w, h)
	px := float64(cellPx)

	// 1) Background.
	dc.SetColor(ColorNone)
	dc.Clear()

	// 2) Cells.
	for _, t := range []gridgraph.CellType{gridgraph.Room, gridgraph.Corridor, gridgraph.Stairs} {
		dc.SetColor(fills[t])
		for _, c := range lvl.Grid.Cells(t) {
			x, y := lay.Origin(c)
			dc.DrawRectangle(x, y, px, px)
		}
		dc.Fill()
	}

	// 3) Edges.
	dc.SetColor(ColorEdge)
	dc.SetLineWidth(1)
	for _, e := range lvl.Edges {
		x1, y1 := lay.Project(e.U)
		x2, y2 := lay.Project(e.V)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	// 4) Markers.
	for _, m := range []struct {
		cell geom.Cell
		col  color.Color
	}{{lvl.Spawn.Entry, ColorSpawn}, {lvl.Exit.Entry, ColorExit}} {
		x, y := lay.Origin(m.cell)
		dc.SetColor(m.col)
		dc.DrawCircle(x+px/2, y+px/2, px/3)
		dc.Fill()
	}

	return dc, nil
}
