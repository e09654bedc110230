package gridgraph

import (
	"errors"

	"github.com/katalvlaran/lvldungeon/geom"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a grid with a non-positive extent on some axis.
	ErrEmptyGrid = errors.New("gridgraph: grid extents must be positive")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrCellReset indicates an attempt to put a typed cell back to None.
	ErrCellReset = errors.New("gridgraph: typed cell cannot be reset to None")
	// ErrNoPath indicates that no carve path exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between cells")
)

// CellType classifies one voxel.
type CellType uint8

const (
	// None is empty rock.
	None CellType = iota
	// Room is the interior of a placed room.
	Room
	// Corridor is a carved flat hallway cell.
	Corridor
	// Stairs is part of a staircase footprint.
	Stairs
)

// String returns the lower-case class name.
func (t CellType) String() string {
	switch t {
	case None:
		return "none"
	case Room:
		return "room"
	case Corridor:
		return "corridor"
	case Stairs:
		return "stairs"
	default:
		return "unknown"
	}
}

// Walkable reports whether t is part of the carved level.
func (t CellType) Walkable() bool { return t != None }

// Connectivity selects neighbour offsets for traversals.
type Connectivity int

const (
	// Conn4 uses ±X and ±Z within a layer.
	Conn4 Connectivity = iota
	// Conn6 adds ±Y.
	Conn6
	// ConnCarved uses the Conn6 offsets but only crosses layers inside a
	// room or a staircase. A corridor lying on top of another carved cell
	// is not linked to it.
	ConnCarved
)

var (
	offsets4 = []geom.Cell{{X: 1}, {X: -1}, {Z: 1}, {Z: -1}}
	offsets6 = []geom.Cell{{X: 1}, {X: -1}, {Z: 1}, {Z: -1}, {Y: 1}, {Y: -1}}
)

// Offsets returns the neighbour offsets for c.
func (c Connectivity) Offsets() []geom.Cell {
	if c == Conn6 || c == ConnCarved {
		return offsets6
	}

	return offsets4
}

// Links reports whether a step by d from a cell of class from onto a cell of
// class to is allowed under c. None cells never link.
func (c Connectivity) Links(from, to CellType, d geom.Cell) bool {
	if !from.Walkable() || !to.Walkable() {
		return false
	}
	if c != ConnCarved || d.Y == 0 {
		return true
	}

	return from == to && (from == Room || from == Stairs)
}

// VoxelGrid is a dense X×Y×Z array of CellType.
// Cells are stored x-fastest, then z, then y, so one Y layer is contiguous.
type VoxelGrid struct {
	size  geom.Cell
	cells []CellType
}
