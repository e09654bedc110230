package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvldungeon/geom"
)

// Kruskal computes a minimum spanning tree of the endpoints of edges with a
// disjoint-set forest.
//
// Steps:
//  1. Validate distances and collect vertices; no edges → empty tree.
//  2. Copy and stable-sort edges by ascending distance, skipping self-loops.
//  3. Union-find: accept every edge joining two different components.
//  4. Fewer than |V|-1 accepted edges → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(edges []geom.WeightedEdge) ([]geom.WeightedEdge, float64, error) {
	// 1. Validate and collect vertices.
	if err := validate(edges); err != nil {
		return nil, 0, err
	}
	vertices := Vertices(edges)
	if len(vertices) == 0 {
		return []geom.WeightedEdge{}, 0, nil
	}

	// 2. Stable sort keeps input order among equal distances.
	sorted := make([]geom.WeightedEdge, 0, len(edges))
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		sorted = append(sorted, e)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Distance < sorted[j].Distance
	})

	// 3. Union-find over vertices.
	ds := NewDisjointSet(vertices)
	var (
		mst   []geom.WeightedEdge
		total float64
	)
	for _, e := range sorted {
		if ds.Union(e.U, e.V) {
			mst = append(mst, e)
			total += e.Distance
			if len(mst) == len(vertices)-1 {
				break
			}
		}
	}

	// 4. Spanning check.
	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// DisjointSet is a union-find forest over vertices with path compression and
// union by rank.
type DisjointSet struct {
	parent map[geom.Vertex]geom.Vertex
	rank   map[geom.Vertex]int
}

// NewDisjointSet places every vertex in its own set.
func NewDisjointSet(vertices []geom.Vertex) *DisjointSet {
	ds := &DisjointSet{
		parent: make(map[geom.Vertex]geom.Vertex, len(vertices)),
		rank:   make(map[geom.Vertex]int, len(vertices)),
	}
	for _, v := range vertices {
		ds.parent[v] = v
	}

	return ds
}

// Find returns the representative of v's set. Unknown vertices become singletons.
func (ds *DisjointSet) Find(v geom.Vertex) geom.Vertex {
	if _, ok := ds.parent[v]; !ok {
		ds.parent[v] = v
	}
	for ds.parent[v] != v {
		ds.parent[v] = ds.parent[ds.parent[v]]
		v = ds.parent[v]
	}

	return v
}

// Union merges the sets of u and v. It returns false when they were already
// in the same set, i.e. when the edge u–v would close a cycle.
func (ds *DisjointSet) Union(u, v geom.Vertex) bool {
	ru, rv := ds.Find(u), ds.Find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
