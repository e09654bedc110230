package gridgraph

import (
	"container/list"

	"github.com/katalvlaran/lvldungeon/geom"
)

// ConnectedComponents finds all groups of walkable cells joined under conn.
// Each component lists slot indices in BFS order; components appear in slot
// order of their first cell. Use Coordinate to turn an index into a cell.
//
// Time:   O(X·Y·Z·d).
// Memory: O(X·Y·Z).
func (g *VoxelGrid) ConnectedComponents(conn Connectivity) [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int
	for i0, t := range g.cells {
		if !t.Walkable() || seen[i0] {
			continue
		}
		seen[i0] = true
		queue := []int{i0}
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			ut := g.At(u)
			for _, d := range conn.Offsets() {
				v := u.Add(d)
				if !conn.Links(ut, g.At(v), d) {
					continue
				}
				vi := g.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Reachable reports whether to can be reached from from by walking over
// walkable cells under conn. Both endpoints must be in bounds; an endpoint
// that is not walkable is unreachable.
func (g *VoxelGrid) Reachable(from, to geom.Cell, conn Connectivity) (bool, error) {
	if !g.InBounds(from) || !g.InBounds(to) {
		return false, ErrOutOfBounds
	}
	if !g.At(from).Walkable() || !g.At(to).Walkable() {
		return false, nil
	}
	seen := make([]bool, len(g.cells))
	seen[g.index(from)] = true
	queue := []geom.Cell{from}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == to {
			return true, nil
		}
		ut := g.At(u)
		for _, d := range conn.Offsets() {
			v := u.Add(d)
			if !conn.Links(ut, g.At(v), d) {
				continue
			}
			if vi := g.index(v); !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return false, nil
}

// Bridge finds the cheapest way to join from and to when every None cell
// entered costs 1 and every walkable cell costs 0.
// Returns the cell path (including both endpoints) and the number of None
// cells on it. A cost of zero means the cells are already connected.
// A step between two walkable cells must satisfy conn.Links; a step entering
// or leaving a None cell is always allowed.
//
// Behavior:
//  1. Validate both endpoints.
//  2. 0-1 BFS from from: walkable neighbours go to the deque front,
//     None neighbours to the back.
//  3. Stop when to is popped and rebuild the path from predecessors.
//
// Complexity: O(X·Y·Z·d). Memory: O(X·Y·Z).
func (g *VoxelGrid) Bridge(from, to geom.Cell, conn Connectivity) ([]geom.Cell, int, error) {
	if !g.InBounds(from) || !g.InBounds(to) {
		return nil, 0, ErrOutOfBounds
	}
	const inf = int(^uint(0) >> 1)
	n := len(g.cells)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}
	src, dst := g.index(from), g.index(to)
	dist[src] = 0
	if !g.cells[src].Walkable() {
		dist[src] = 1
	}

	dq := list.New()
	dq.PushFront(src)
	found := false
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			found = true

			break
		}
		uc := g.Coordinate(u)
		for _, d := range conn.Offsets() {
			vc := uc.Add(d)
			if !g.InBounds(vc) {
				continue
			}
			v := g.index(vc)
			ut, vt := g.cells[u], g.cells[v]
			if ut.Walkable() && vt.Walkable() && !conn.Links(ut, vt, d) {
				continue
			}
			step := 0
			if !vt.Walkable() {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	if !found {
		return nil, 0, ErrNoPath
	}

	var path []geom.Cell
	for at := dst; at != -1; at = prev[at] {
		path = append(path, g.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}
