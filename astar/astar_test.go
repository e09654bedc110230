package astar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldungeon/astar"
	"github.com/katalvlaran/lvldungeon/geom"
)

// flatCost allows unit-cost flat moves into cells not marked as walls and
// rejects every staircase.
func flatCost(walls map[geom.Cell]bool) astar.CostFunc {
	return func(from, to *astar.Node) astar.PathCost {
		if to.Position.Y != from.Position.Y || walls[to.Position] {
			return astar.Blocked
		}

		return astar.PathCost{Traversable: true, Cost: 1}
	}
}

// stairCost allows flat moves at cost 1 and staircases at cost 10 when the
// footprint is inside the lattice.
func stairCost(size geom.Cell) astar.CostFunc {
	inBounds := func(c geom.Cell) bool {
		return c.X >= 0 && c.X < size.X && c.Y >= 0 && c.Y < size.Y && c.Z >= 0 && c.Z < size.Z
	}

	return func(from, to *astar.Node) astar.PathCost {
		delta := to.Position.Sub(from.Position)
		if delta.Y == 0 {
			return astar.PathCost{Traversable: true, Cost: 1}
		}
		for _, c := range astar.StairFootprint(from.Position, delta) {
			if !inBounds(c) {
				return astar.Blocked
			}
		}

		return astar.PathCost{Traversable: true, Cost: 10, IsStairs: true}
	}
}

// bfsDistance returns the 4-connected step count on layer y, or -1.
func bfsDistance(size geom.Cell, walls map[geom.Cell]bool, start, end geom.Cell) int {
	dist := map[geom.Cell]int{start: 0}
	queue := []geom.Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == end {
			return dist[c]
		}
		for _, d := range astar.Neighbors[:4] {
			n := c.Add(d)
			if n.X < 0 || n.X >= size.X || n.Z < 0 || n.Z >= size.Z || walls[n] {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[c] + 1
			queue = append(queue, n)
		}
	}

	return -1
}

func requireValidSteps(t *testing.T, path []geom.Cell) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		d := path[i].Sub(path[i-1])
		assert.Contains(t, astar.Neighbors[:], d, "step %d: %s -> %s", i, path[i-1], path[i])
	}
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestNew_EmptyGrid(t *testing.T) {
	for _, size := range []geom.Cell{geom.C(0, 1, 1), geom.C(1, -1, 1), geom.C(1, 1, 0)} {
		_, err := astar.New(size)
		assert.ErrorIs(t, err, astar.ErrEmptyGrid, "%s", size)
	}
}

func TestFindPath_Validation(t *testing.T) {
	p, err := astar.New(geom.C(4, 1, 4))
	require.NoError(t, err)

	_, err = p.FindPath(geom.C(0, 0, 0), geom.C(3, 0, 3), nil)
	assert.ErrorIs(t, err, astar.ErrNilCost)

	_, err = p.FindPath(geom.C(-1, 0, 0), geom.C(3, 0, 3), flatCost(nil))
	assert.ErrorIs(t, err, astar.ErrOutOfBounds)

	_, err = p.FindPath(geom.C(0, 0, 0), geom.C(3, 1, 3), flatCost(nil))
	assert.ErrorIs(t, err, astar.ErrOutOfBounds)
}

func TestFindPath_StartIsEnd(t *testing.T) {
	p, err := astar.New(geom.C(3, 1, 3))
	require.NoError(t, err)

	path, err := p.FindPath(geom.C(1, 0, 1), geom.C(1, 0, 1), flatCost(nil))
	require.NoError(t, err)
	assert.Equal(t, []geom.Cell{geom.C(1, 0, 1)}, path)
}

func TestFindPath_NoPath(t *testing.T) {
	size := geom.C(8, 1, 5)
	walls := map[geom.Cell]bool{}
	for z := 0; z < size.Z; z++ {
		walls[geom.C(4, 0, z)] = true
	}
	p, err := astar.New(size)
	require.NoError(t, err)

	_, err = p.FindPath(geom.C(0, 0, 2), geom.C(7, 0, 2), flatCost(walls))
	assert.ErrorIs(t, err, astar.ErrNoPath)
}

//----------------------------------------------------------------------------//
// Optimality and reuse
//----------------------------------------------------------------------------//

// TestFindPath_FlatOptimal compares path lengths with plain BFS on random
// single-layer mazes.
func TestFindPath_FlatOptimal(t *testing.T) {
	size := geom.C(14, 1, 11)
	rng := rand.New(rand.NewSource(7))
	p, err := astar.New(size)
	require.NoError(t, err)

	for trial := 0; trial < 40; trial++ {
		walls := map[geom.Cell]bool{}
		for x := 0; x < size.X; x++ {
			for z := 0; z < size.Z; z++ {
				if rng.Float64() < 0.3 {
					walls[geom.C(x, 0, z)] = true
				}
			}
		}
		start, end := geom.C(0, 0, 0), geom.C(size.X-1, 0, size.Z-1)
		delete(walls, start)
		delete(walls, end)

		want := bfsDistance(size, walls, start, end)
		path, err := p.FindPath(start, end, flatCost(walls))
		if want < 0 {
			assert.ErrorIs(t, err, astar.ErrNoPath, "trial %d", trial)
			continue
		}
		require.NoError(t, err, "trial %d", trial)
		assert.Equal(t, want, len(path)-1, "trial %d", trial)
		assert.Equal(t, start, path[0])
		assert.Equal(t, end, path[len(path)-1])
		requireValidSteps(t, path)
		for _, c := range path {
			assert.False(t, walls[c], "path enters wall %s", c)
		}
	}
}

// TestFindPath_Reuse checks that a reused pathfinder answers like a fresh one.
func TestFindPath_Reuse(t *testing.T) {
	size := geom.C(9, 1, 9)
	walls := map[geom.Cell]bool{geom.C(4, 0, 3): true, geom.C(4, 0, 4): true, geom.C(4, 0, 5): true}

	reused, err := astar.New(size)
	require.NoError(t, err)
	_, err = reused.FindPath(geom.C(0, 0, 0), geom.C(8, 0, 8), flatCost(nil))
	require.NoError(t, err)
	got, err := reused.FindPath(geom.C(0, 0, 4), geom.C(8, 0, 4), flatCost(walls))
	require.NoError(t, err)

	fresh, err := astar.New(size)
	require.NoError(t, err)
	want, err := fresh.FindPath(geom.C(0, 0, 4), geom.C(8, 0, 4), flatCost(walls))
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Len(t, got, 13)
}

//----------------------------------------------------------------------------//
// Staircases
//----------------------------------------------------------------------------//

func TestStairFootprint(t *testing.T) {
	got := astar.StairFootprint(geom.C(2, 0, 2), geom.C(3, 1, 0))
	assert.Equal(t, [4]geom.Cell{
		geom.C(3, 0, 2), geom.C(4, 0, 2), geom.C(3, 1, 2), geom.C(4, 1, 2),
	}, got)

	got = astar.StairFootprint(geom.C(5, 1, 6), geom.C(0, -1, -3))
	assert.Equal(t, [4]geom.Cell{
		geom.C(5, 1, 5), geom.C(5, 1, 4), geom.C(5, 0, 5), geom.C(5, 0, 4),
	}, got)
}

// TestFindPath_Stairs routes between layers and checks that no path cell
// lands inside a staircase footprint.
func TestFindPath_Stairs(t *testing.T) {
	size := geom.C(10, 2, 3)
	p, err := astar.New(size)
	require.NoError(t, err)

	start, end := geom.C(0, 0, 1), geom.C(9, 1, 1)
	path, err := p.FindPath(start, end, stairCost(size))
	require.NoError(t, err)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])
	requireValidSteps(t, path)

	onPath := map[geom.Cell]bool{}
	for _, c := range path {
		onPath[c] = true
	}
	stairs := 0
	for i := 1; i < len(path); i++ {
		d := path[i].Sub(path[i-1])
		if d.Y == 0 {
			continue
		}
		stairs++
		for _, c := range astar.StairFootprint(path[i-1], d) {
			assert.False(t, onPath[c], "path cell %s inside staircase footprint", c)
		}
	}
	assert.Equal(t, 1, stairs)
}

// TestFindPath_StairsBlocked fails when the footprint never fits.
func TestFindPath_StairsBlocked(t *testing.T) {
	size := geom.C(3, 2, 3)
	p, err := astar.New(size)
	require.NoError(t, err)

	_, err = p.FindPath(geom.C(0, 0, 0), geom.C(2, 1, 2), stairCost(size))
	assert.ErrorIs(t, err, astar.ErrNoPath)
}
