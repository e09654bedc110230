package dungeon

import (
	"github.com/katalvlaran/lvldungeon/astar"
	"github.com/katalvlaran/lvldungeon/geom"
	"github.com/katalvlaran/lvldungeon/gridgraph"
)

// Step costs added on top of the distance-to-goal term.
const (
	costRoom   = 5
	costNone   = 1
	costStairs = 100
)

// corridorCost builds the search cost function for a route ending at end.
//
// Flat moves: Stairs cells are blocked; Room cells cost 5, None cells 1 and
// existing Corridor cells nothing extra.
// Staircase moves: both ends must be None or Corridor and all four footprint
// cells in bounds and None; the move costs 100 extra.
// Both add the Euclidean distance from the landing cell to end.
func corridorCost(grid *gridgraph.VoxelGrid, end geom.Cell) astar.CostFunc {
	return func(from, to *astar.Node) astar.PathCost {
		a, b := from.Position, to.Position
		delta := b.Sub(a)
		pc := astar.PathCost{Cost: b.Distance(end)}

		if delta.Y == 0 {
			switch grid.At(b) {
			case gridgraph.Stairs:
				return astar.Blocked
			case gridgraph.Room:
				pc.Cost += costRoom
			case gridgraph.None:
				pc.Cost += costNone
			}
			pc.Traversable = true

			return pc
		}

		if !openForStairs(grid.At(a)) || !openForStairs(grid.At(b)) {
			return astar.Blocked
		}
		for _, c := range astar.StairFootprint(a, delta) {
			if !grid.InBounds(c) || grid.At(c) != gridgraph.None {
				return astar.Blocked
			}
		}
		pc.Cost += costStairs
		pc.Traversable = true
		pc.IsStairs = true

		return pc
	}
}

func openForStairs(t gridgraph.CellType) bool {
	return t == gridgraph.None || t == gridgraph.Corridor
}

// carveCorridors routes every selected edge and paints the result.
func (a *attempt) carveCorridors() {
	a.corridors = make([]Corridor, 0, len(a.selected))
	for _, e := range a.selected {
		start, end := geom.CellOf(e.U), geom.CellOf(e.V)
		c := Corridor{Edge: e}

		path, err := a.paths.FindPath(start, end, corridorCost(a.grid, end))
		if err != nil {
			c.Status = NoPathFound
			a.stats.CorridorsSkipped++
			a.log.Debug("corridor skipped", "edge", e.String(), "err", err)
			a.corridors = append(a.corridors, c)
			continue
		}

		c.Path = path
		c.Stairs = a.paint(path)
		a.stats.CorridorsCarved++
		a.corridors = append(a.corridors, c)
	}
}

// paint turns None path cells into Corridor and vertical steps into Stairs.
func (a *attempt) paint(path []geom.Cell) []Staircase {
	var stairs []Staircase
	for i, c := range path {
		if a.grid.At(c) == gridgraph.None {
			_ = a.grid.Set(c, gridgraph.Corridor)
		}
		if i == 0 {
			continue
		}
		prev := path[i-1]
		delta := c.Sub(prev)
		if delta.Y == 0 {
			continue
		}
		s := newStaircase(prev, delta)
		for _, f := range s.Cells {
			_ = a.grid.Set(f, gridgraph.Stairs)
		}
		stairs = append(stairs, s)
	}

	return stairs
}

// newStaircase describes the staircase for the move from base by delta.
func newStaircase(base, delta geom.Cell) Staircase {
	dir := geom.Cell{X: delta.X, Z: delta.Z}.Sign()
	rise := geom.Cell{Y: delta.Y}.Sign().Y
	up := dir
	if rise < 0 {
		up = dir.Scale(-1)
	}

	return Staircase{
		Cells:     astar.StairFootprint(base, delta),
		Base:      base,
		Direction: dir,
		Rise:      rise,
		Rotation:  yaw(up),
	}
}

// yaw maps a horizontal unit step to degrees: +Z 0, +X 90, -Z 180, -X 270.
func yaw(d geom.Cell) float64 {
	switch {
	case d.X > 0:
		return 90
	case d.Z < 0:
		return 180
	case d.X < 0:
		return 270
	default:
		return 0
	}
}
