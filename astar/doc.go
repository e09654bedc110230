// Package astar finds corridor routes through a 3D voxel grid.
//
// What:
//
//	Pathfinder searches a fixed X×Y×Z lattice of nodes. Every node has twelve
//	candidate moves: four flat steps (±X, ±Z) and eight staircase jumps that
//	cover three cells horizontally and one vertically, up or down, along each
//	cardinal direction. A caller-supplied CostFunc decides for each move
//	whether it is traversable, what it costs and whether it is a staircase.
//
// Search:
//
//   - Nodes are expanded in order of cumulative cost from the start, using
//     pqueue.Queue keyed by that cost. No heuristic term is added by the
//     search itself; callers who want goal bias fold it into CostFunc. With a
//     pure step cost this is uniform-cost search and returns optimal paths.
//   - Each node remembers the set of cells already claimed by the best path
//     reaching it: every earlier path cell and every staircase footprint cell.
//     A move into a claimed cell, or a staircase whose footprint overlaps one,
//     is rejected. This keeps a route from cutting through its own stairs.
//   - The search stops when the end node is popped (success) or the queue
//     drains (ErrNoPath).
//
// Reuse:
//
//	The node lattice is allocated once by New. FindPath resets cost,
//	back-pointer, closed flag and claimed set of every node before it starts,
//	so one Pathfinder serves any number of consecutive searches.
//
// Complexity: O(N log N · k) time for N = X·Y·Z nodes, k = size of the
// claimed sets copied on relaxation. Memory: O(N · k).
//
// Errors:
//
//   - ErrEmptyGrid: New with a non-positive extent.
//   - ErrOutOfBounds: start or end outside the lattice.
//   - ErrNilCost: FindPath without a cost function.
//   - ErrNoPath: the end cell cannot be reached.
package astar
