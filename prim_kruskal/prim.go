package prim_kruskal

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvldungeon/geom"
)

// Prim grows a minimum spanning tree from start over the given edge list.
//
// Steps:
//  1. Validate distances; an empty edge list yields an empty tree.
//  2. open ← every endpoint; closed ← {start}. start must be an endpoint.
//  3. Repeat: scan all edges for the lightest one with exactly one closed
//     endpoint (first found wins on ties). Stop when none exists.
//     Otherwise append it, move both endpoints from open to closed.
//  4. Return the tree. When the graph is disconnected the tree covers only the
//     component of start.
//
// Complexity: O(E·V) time, O(V) memory.
func Prim(edges []geom.WeightedEdge, start geom.Vertex) ([]geom.WeightedEdge, error) {
	// 1. Validate.
	if err := validate(edges); err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return []geom.WeightedEdge{}, nil
	}

	// 2. Seed the open and closed sets.
	open := mapset.New[geom.Vertex]()
	for _, e := range edges {
		open.Put(e.U)
		open.Put(e.V)
	}
	if !open.Has(start) {
		return nil, ErrVertexNotFound
	}
	closed := mapset.New[geom.Vertex]()
	closed.Put(start)
	open.Remove(start)

	// 3. Scan until no edge crosses the cut.
	tree := make([]geom.WeightedEdge, 0, open.Size())
	for open.Size() > 0 {
		chosen := -1
		best := math.Inf(1)
		for i, e := range edges {
			crossing := closed.Has(e.U) != closed.Has(e.V)
			if !crossing {
				continue
			}
			if e.Distance < best {
				best = e.Distance
				chosen = i
			}
		}
		if chosen < 0 {
			break // disconnected from start
		}
		e := edges[chosen]
		tree = append(tree, e)
		open.Remove(e.U)
		open.Remove(e.V)
		closed.Put(e.U)
		closed.Put(e.V)
	}

	// 4. Done.
	return tree, nil
}
