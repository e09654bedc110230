package astar

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvldungeon/geom"
	"github.com/katalvlaran/lvldungeon/pqueue"
)

// New allocates a pathfinder for a lattice of the given size.
// Complexity: O(X·Y·Z).
func New(size geom.Cell) (*Pathfinder, error) {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, ErrEmptyGrid
	}
	n := size.X * size.Y * size.Z
	p := &Pathfinder{
		size:  size,
		nodes: make([]*Node, n),
		queue: pqueue.New[*Node, float64](n),
	}
	for y := 0; y < size.Y; y++ {
		for z := 0; z < size.Z; z++ {
			for x := 0; x < size.X; x++ {
				c := geom.Cell{X: x, Y: y, Z: z}
				p.nodes[p.index(c)] = &Node{Position: c}
			}
		}
	}

	return p, nil
}

// Size returns the lattice extents.
func (p *Pathfinder) Size() geom.Cell { return p.size }

// InBounds reports whether c is a lattice cell.
func (p *Pathfinder) InBounds(c geom.Cell) bool {
	return c.X >= 0 && c.X < p.size.X &&
		c.Y >= 0 && c.Y < p.size.Y &&
		c.Z >= 0 && c.Z < p.size.Z
}

func (p *Pathfinder) index(c geom.Cell) int {
	return (c.Y*p.size.Z+c.Z)*p.size.X + c.X
}

// node returns the lattice node at c or nil outside the lattice.
func (p *Pathfinder) node(c geom.Cell) *Node {
	if !p.InBounds(c) {
		return nil
	}

	return p.nodes[p.index(c)]
}

// FindPath returns the cheapest route from start to end, both included.
//
// Preconditions and validation (in order):
//  1. cost must be non-nil (ErrNilCost).
//  2. start and end must be lattice cells (ErrOutOfBounds).
//
// The lattice is reset before searching. An unreachable end yields ErrNoPath.
func (p *Pathfinder) FindPath(start, end geom.Cell, cost CostFunc) ([]geom.Cell, error) {
	// 1) Validate.
	if cost == nil {
		return nil, ErrNilCost
	}
	if !p.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if !p.InBounds(end) {
		return nil, fmt.Errorf("%w: end %s", ErrOutOfBounds, end)
	}

	// 2) Reset every node and the queue.
	p.reset()

	// 3) Seed and run.
	r := &runner{p: p, end: end, cost: cost}
	first := p.node(start)
	first.Cost = 0
	_ = p.queue.Push(first, 0)

	if goal := r.process(); goal != nil {
		return reconstruct(goal), nil
	}

	return nil, fmt.Errorf("%w: %s to %s", ErrNoPath, start, end)
}

// reset clears all per-search state.
func (p *Pathfinder) reset() {
	for _, n := range p.nodes {
		n.reset()
	}
	p.queue.Clear()
}

// runner holds the state of one FindPath call.
type runner struct {
	p    *Pathfinder
	end  geom.Cell
	cost CostFunc
}

// process pops nodes until the end node is popped or the queue drains.
func (r *runner) process() *Node {
	for r.p.queue.Len() > 0 {
		n, err := r.p.queue.Pop()
		if err != nil {
			return nil
		}
		n.closed = true
		if n.Position == r.end {
			return n
		}
		r.relax(n)
	}

	return nil
}

// relax evaluates all twelve moves out of n.
func (r *runner) relax(n *Node) {
	for _, offset := range Neighbors {
		next := r.p.node(n.Position.Add(offset))
		if next == nil || next.closed {
			continue
		}
		if n.Claimed(next.Position) {
			continue
		}

		pc := r.cost(n, next)
		if !pc.Traversable {
			continue
		}

		var footprint [4]geom.Cell
		if pc.IsStairs {
			footprint = StairFootprint(n.Position, offset)
			if n.Claimed(footprint[0]) || n.Claimed(footprint[1]) ||
				n.Claimed(footprint[2]) || n.Claimed(footprint[3]) {
				continue
			}
		}

		newCost := n.Cost + pc.Cost
		if newCost >= next.Cost {
			continue
		}
		next.Previous = n
		next.Cost = newCost
		if r.p.queue.Contains(next) {
			_ = r.p.queue.Update(next, newCost)
		} else {
			_ = r.p.queue.Push(next, newCost)
		}

		// The claimed set of next is the claimed set of n, n itself and the
		// staircase footprint when this move is a staircase.
		claimed := mapset.New[geom.Cell]()
		n.claimed.Each(func(c geom.Cell) { claimed.Put(c) })
		claimed.Put(n.Position)
		if pc.IsStairs {
			for _, c := range footprint {
				claimed.Put(c)
			}
		}
		next.claimed = claimed
	}
}

// reconstruct walks back-pointers from goal and reverses the result.
func reconstruct(goal *Node) []geom.Cell {
	var path []geom.Cell
	for n := goal; n != nil; n = n.Previous {
		path = append(path, n.Position)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
