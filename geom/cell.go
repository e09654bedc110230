package geom

import (
	"fmt"
	"math"
)

// Cell addresses one voxel of an integer grid.
type Cell struct {
	X, Y, Z int
}

// C is shorthand for Cell{X: x, Y: y, Z: z}.
func C(x, y, z int) Cell { return Cell{X: x, Y: y, Z: z} }

// Add returns c + o.
func (c Cell) Add(o Cell) Cell { return Cell{c.X + o.X, c.Y + o.Y, c.Z + o.Z} }

// Sub returns c - o.
func (c Cell) Sub(o Cell) Cell { return Cell{c.X - o.X, c.Y - o.Y, c.Z - o.Z} }

// Scale returns c * k.
func (c Cell) Scale(k int) Cell { return Cell{c.X * k, c.Y * k, c.Z * k} }

// Vertex returns the vertex at the cell's integer coordinates.
func (c Cell) Vertex() Vertex {
	return NewVertex(float64(c.X), float64(c.Y), float64(c.Z))
}

// Distance returns the Euclidean distance between two cells.
func (c Cell) Distance(o Cell) float64 {
	d := c.Sub(o)

	return math.Sqrt(float64(d.X*d.X + d.Y*d.Y + d.Z*d.Z))
}

// Sign clamps every component to -1, 0 or 1.
func (c Cell) Sign() Cell {
	return Cell{sign(c.X), sign(c.Y), sign(c.Z)}
}

// String renders the cell as "[x y z]".
func (c Cell) String() string {
	return fmt.Sprintf("[%d %d %d]", c.X, c.Y, c.Z)
}

// CellOf floors each coordinate of v. Room centroids of odd extent sit on a
// half cell; flooring keeps the cell inside the room.
func CellOf(v Vertex) Cell {
	return Cell{
		X: int(math.Floor(v.Position[0])),
		Y: int(math.Floor(v.Position[1])),
		Z: int(math.Floor(v.Position[2])),
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
