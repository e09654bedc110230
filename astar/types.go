package astar

import (
	"errors"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvldungeon/geom"
	"github.com/katalvlaran/lvldungeon/pqueue"
)

// Sentinel errors returned by the pathfinder.
var (
	// ErrEmptyGrid indicates a lattice with a non-positive extent.
	ErrEmptyGrid = errors.New("astar: grid extents must be positive")

	// ErrOutOfBounds indicates a start or end cell outside the lattice.
	ErrOutOfBounds = errors.New("astar: cell out of bounds")

	// ErrNilCost indicates FindPath was called without a cost function.
	ErrNilCost = errors.New("astar: cost function is nil")

	// ErrNoPath indicates that the end cell is unreachable.
	ErrNoPath = errors.New("astar: no path")
)

// Neighbors lists the twelve move offsets: four flat, then the staircase
// jumps going up, then the ones going down.
var Neighbors = [12]geom.Cell{
	{X: 1}, {X: -1}, {Z: 1}, {Z: -1},
	{X: 3, Y: 1}, {X: -3, Y: 1}, {Y: 1, Z: 3}, {Y: 1, Z: -3},
	{X: 3, Y: -1}, {X: -3, Y: -1}, {Y: -1, Z: 3}, {Y: -1, Z: -3},
}

// PathCost is the verdict of a CostFunc for one move.
type PathCost struct {
	Traversable bool
	Cost        float64
	IsStairs    bool
}

// Blocked is the PathCost of a move that cannot be taken.
var Blocked = PathCost{}

// Node is one lattice cell during a search. Cost is the best cumulative cost
// found so far (+Inf when unreached) and Previous the node it came from.
type Node struct {
	Position geom.Cell
	Cost     float64
	Previous *Node

	claimed mapset.Set[geom.Cell]
	closed  bool
}

// Claimed reports whether c is already used by the best path to n.
func (n *Node) Claimed(c geom.Cell) bool { return n.claimed.Has(c) }

// reset restores the pre-search state.
func (n *Node) reset() {
	n.Cost = math.Inf(1)
	n.Previous = nil
	n.closed = false
	n.claimed = mapset.Set[geom.Cell]{}
}

// CostFunc evaluates the move from one node to an adjacent lattice node.
// It may inspect any external state, typically the live voxel grid.
type CostFunc func(from, to *Node) PathCost

// Pathfinder owns a reusable node lattice. It is not safe for concurrent use.
type Pathfinder struct {
	size  geom.Cell
	nodes []*Node
	queue *pqueue.Queue[*Node, float64]
}

// StairFootprint returns the four cells a staircase move from from by delta
// occupies: two cells along the horizontal direction at the lower level and
// the two above or below them.
func StairFootprint(from, delta geom.Cell) [4]geom.Cell {
	h := geom.Cell{X: delta.X, Z: delta.Z}.Sign()
	v := geom.Cell{Y: delta.Y}

	return [4]geom.Cell{
		from.Add(h),
		from.Add(h.Scale(2)),
		from.Add(v).Add(h),
		from.Add(v).Add(h.Scale(2)),
	}
}
