package gridgraph

import "github.com/katalvlaran/lvldungeon/geom"

// NewVoxelGrid allocates an all-None grid of the given size.
// Returns ErrEmptyGrid if any extent is not positive.
// Complexity: O(X·Y·Z) time and memory.
func NewVoxelGrid(size geom.Cell) (*VoxelGrid, error) {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, ErrEmptyGrid
	}

	return &VoxelGrid{
		size:  size,
		cells: make([]CellType, size.X*size.Y*size.Z),
	}, nil
}

// Size returns the grid extents.
func (g *VoxelGrid) Size() geom.Cell { return g.size }

// InBounds reports whether c lies inside the grid.
func (g *VoxelGrid) InBounds(c geom.Cell) bool {
	return c.X >= 0 && c.X < g.size.X &&
		c.Y >= 0 && c.Y < g.size.Y &&
		c.Z >= 0 && c.Z < g.size.Z
}

// index maps c to its slot. Callers check bounds.
func (g *VoxelGrid) index(c geom.Cell) int {
	return (c.Y*g.size.Z+c.Z)*g.size.X + c.X
}

// Coordinate converts a slot back to its cell.
func (g *VoxelGrid) Coordinate(idx int) geom.Cell {
	x := idx % g.size.X
	rest := idx / g.size.X

	return geom.Cell{X: x, Y: rest / g.size.Z, Z: rest % g.size.Z}
}

// At returns the class of c. Cells outside the grid read as None.
func (g *VoxelGrid) At(c geom.Cell) CellType {
	if !g.InBounds(c) {
		return None
	}

	return g.cells[g.index(c)]
}

// Set classifies c as t. Typed cells may be re-typed but never reset to None.
func (g *VoxelGrid) Set(c geom.Cell, t CellType) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	i := g.index(c)
	if t == None && g.cells[i] != None {
		return ErrCellReset
	}
	g.cells[i] = t

	return nil
}

// Stamp classifies every in-bounds cell of the box [origin, origin+size) as t.
// Cells outside the grid are ignored. Returns the number of cells written.
func (g *VoxelGrid) Stamp(origin, size geom.Cell, t CellType) int {
	n := 0
	forBox(origin, size, func(c geom.Cell) {
		if g.Set(c, t) == nil {
			n++
		}
	})

	return n
}

// IsFree reports whether every in-bounds cell of the box [origin, origin+size)
// grown by margin on all six faces is None.
func (g *VoxelGrid) IsFree(origin, size geom.Cell, margin int) bool {
	m := geom.Cell{X: margin, Y: margin, Z: margin}
	free := true
	forBox(origin.Sub(m), size.Add(m.Scale(2)), func(c geom.Cell) {
		if free && g.At(c) != None {
			free = false
		}
	})

	return free
}

// Count returns the number of cells of class t.
func (g *VoxelGrid) Count(t CellType) int {
	n := 0
	for _, v := range g.cells {
		if v == t {
			n++
		}
	}

	return n
}

// Cells returns every cell of class t in slot order.
func (g *VoxelGrid) Cells(t CellType) []geom.Cell {
	var out []geom.Cell
	for i, v := range g.cells {
		if v == t {
			out = append(out, g.Coordinate(i))
		}
	}

	return out
}

// Clone returns an independent copy.
func (g *VoxelGrid) Clone() *VoxelGrid {
	return &VoxelGrid{size: g.size, cells: append([]CellType(nil), g.cells...)}
}

// Equal reports whether g and o have the same size and classification.
func (g *VoxelGrid) Equal(o *VoxelGrid) bool {
	if g.size != o.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}

func forBox(origin, size geom.Cell, fn func(geom.Cell)) {
	for y := origin.Y; y < origin.Y+size.Y; y++ {
		for z := origin.Z; z < origin.Z+size.Z; z++ {
			for x := origin.X; x < origin.X+size.X; x++ {
				fn(geom.Cell{X: x, Y: y, Z: z})
			}
		}
	}
}
