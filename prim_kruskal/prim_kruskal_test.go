package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldungeon/geom"
	"github.com/katalvlaran/lvldungeon/prim_kruskal"
)

// edge builds a weighted edge with an explicit distance so that tests can
// exercise ties independently of geometry.
func edge(u, v geom.Vertex, w float64) geom.WeightedEdge {
	return geom.WeightedEdge{Edge: geom.NewEdge(u, v), Distance: w}
}

var (
	vA = geom.NewVertex(0, 0, 0)
	vB = geom.NewVertex(1, 0, 0)
	vC = geom.NewVertex(2, 0, 0)
	vD = geom.NewVertex(3, 0, 0)
	vE = geom.NewVertex(4, 0, 0)
)

// buildTriangle returns A-B (1), B-C (2), A-C (3). Its MST is {A-B, B-C}.
func buildTriangle() []geom.WeightedEdge {
	return []geom.WeightedEdge{
		edge(vA, vB, 1),
		edge(vB, vC, 2),
		edge(vA, vC, 3),
	}
}

// buildRandomConnected returns a connected graph over n random points: a
// chain guarantees connectivity and extra random pairs add cycles.
// Weights are the Euclidean distances.
func buildRandomConnected(r *rand.Rand, n, extra int) ([]geom.Vertex, []geom.WeightedEdge) {
	pts := make([]geom.Vertex, n)
	for i := range pts {
		pts[i] = geom.NewVertex(r.Float64()*50, r.Float64()*50, r.Float64()*50)
	}
	seen := map[geom.Edge]bool{}
	var edges []geom.WeightedEdge
	add := func(i, j int) {
		w := geom.NewWeightedEdge(pts[i], pts[j])
		if i == j || seen[w.Edge] {
			return
		}
		seen[w.Edge] = true
		edges = append(edges, w)
	}
	perm := r.Perm(n)
	for i := 1; i < n; i++ {
		add(perm[i-1], perm[i])
	}
	for k := 0; k < extra; k++ {
		add(r.Intn(n), r.Intn(n))
	}

	return pts, edges
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestPrim_Validation covers empty input, unknown start and bad weights.
func TestPrim_Validation(t *testing.T) {
	tree, err := prim_kruskal.Prim(nil, vA)
	assert.NoError(t, err)
	assert.Empty(t, tree)

	_, err = prim_kruskal.Prim(buildTriangle(), vE)
	assert.ErrorIs(t, err, prim_kruskal.ErrVertexNotFound)

	_, err = prim_kruskal.Prim([]geom.WeightedEdge{edge(vA, vB, math.NaN())}, vA)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidWeight)

	_, _, err = prim_kruskal.Kruskal([]geom.WeightedEdge{edge(vA, vB, -1)})
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidWeight)
}

//----------------------------------------------------------------------------//
// Small graphs
//----------------------------------------------------------------------------//

// TestPrim_Triangle checks the tree, its order and weight.
func TestPrim_Triangle(t *testing.T) {
	tree, err := prim_kruskal.Prim(buildTriangle(), vA)
	require.NoError(t, err)

	require.Len(t, tree, 2)
	assert.Equal(t, geom.NewEdge(vA, vB), tree[0].Edge)
	assert.Equal(t, geom.NewEdge(vB, vC), tree[1].Edge)
	assert.Equal(t, 3.0, prim_kruskal.TotalWeight(tree))
}

// TestKruskal_Triangle checks the reference implementation on the same graph.
func TestKruskal_Triangle(t *testing.T) {
	tree, total, err := prim_kruskal.Kruskal(buildTriangle())
	require.NoError(t, err)

	assert.Len(t, tree, 2)
	assert.Equal(t, 3.0, total)
}

// TestPrim_TieBreak verifies that the first-found minimum wins.
func TestPrim_TieBreak(t *testing.T) {
	edges := []geom.WeightedEdge{
		edge(vA, vC, 1),
		edge(vA, vB, 1),
		edge(vB, vC, 1),
	}
	tree, err := prim_kruskal.Prim(edges, vA)
	require.NoError(t, err)

	require.Len(t, tree, 2)
	assert.Equal(t, geom.NewEdge(vA, vC), tree[0].Edge)
	assert.Equal(t, geom.NewEdge(vA, vB), tree[1].Edge)
}

// TestPrim_Disconnected returns the partial tree of the start component.
func TestPrim_Disconnected(t *testing.T) {
	edges := []geom.WeightedEdge{
		edge(vA, vB, 1),
		edge(vC, vD, 1),
		edge(vD, vE, 2),
	}
	tree, err := prim_kruskal.Prim(edges, vC)
	require.NoError(t, err)
	assert.Len(t, tree, 2)
	assert.Less(t, len(tree), len(prim_kruskal.Vertices(edges))-1)

	_, _, err = prim_kruskal.Kruskal(edges)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

// TestCompute dispatches to both algorithms.
func TestCompute(t *testing.T) {
	_, totalK, err := prim_kruskal.Compute(buildTriangle())
	require.NoError(t, err)

	_, totalP, err := prim_kruskal.Compute(buildTriangle(),
		prim_kruskal.WithMethod(prim_kruskal.MethodPrim),
		prim_kruskal.WithStart(vC))
	require.NoError(t, err)
	assert.Equal(t, totalK, totalP)

	_, _, err = prim_kruskal.Compute(buildTriangle(), prim_kruskal.WithMethod("boruvka"))
	assert.Error(t, err)
}

//----------------------------------------------------------------------------//
// Property: Prim agrees with Kruskal on random connected graphs
//----------------------------------------------------------------------------//

// TestPrim_MatchesKruskal checks |V|-1 edges, acyclicity and equal weight.
func TestPrim_MatchesKruskal(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		n := 2 + r.Intn(30)
		pts, edges := buildRandomConnected(r, n, 2*n)

		tree, err := prim_kruskal.Prim(edges, pts[0])
		require.NoError(t, err)
		require.Len(t, tree, n-1, "round %d", round)

		ds := prim_kruskal.NewDisjointSet(pts)
		for _, e := range tree {
			require.True(t, ds.Union(e.U, e.V), "round %d: cycle through %s", round, e.Edge)
		}

		_, want, err := prim_kruskal.Kruskal(edges)
		require.NoError(t, err)
		assert.InDelta(t, want, prim_kruskal.TotalWeight(tree), 1e-9, "round %d", round)
	}
}
