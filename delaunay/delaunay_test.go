package delaunay_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldungeon/delaunay"
	"github.com/katalvlaran/lvldungeon/geom"
)

// corners of a right-angled tetrahedron with legs of length 10.
func rightTetra() []geom.Vertex {
	return []geom.Vertex{
		geom.NewVertex(0, 0, 0),
		geom.NewVertex(10, 0, 0),
		geom.NewVertex(0, 10, 0),
		geom.NewVertex(0, 0, 10),
	}
}

func randomPoints(r *rand.Rand, n int) []geom.Vertex {
	pts := make([]geom.Vertex, n)
	for i := range pts {
		pts[i] = geom.NewVertex(r.Float64()*100, r.Float64()*100, r.Float64()*100)
	}

	return pts
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestTetrahedralize_Errors covers input validation.
func TestTetrahedralize_Errors(t *testing.T) {
	_, err := delaunay.Tetrahedralize(rightTetra()[:3])
	assert.ErrorIs(t, err, delaunay.ErrTooFewVertices)

	dup := append(rightTetra(), geom.NewVertex(10.01, 0, 0))
	_, err = delaunay.Tetrahedralize(dup)
	assert.ErrorIs(t, err, delaunay.ErrDuplicateVertex)
}

//----------------------------------------------------------------------------//
// Small exact configurations
//----------------------------------------------------------------------------//

// TestTetrahedralize_SingleCell expects exactly one cell for four points.
func TestTetrahedralize_SingleCell(t *testing.T) {
	d, err := delaunay.Tetrahedralize(rightTetra())
	require.NoError(t, err)

	assert.Len(t, d.Tetrahedra, 1)
	assert.Len(t, d.Triangles, 4)
	assert.Len(t, d.Edges, 6)
}

// TestTetrahedralize_InteriorPoint splits the cell around an interior point.
func TestTetrahedralize_InteriorPoint(t *testing.T) {
	pts := append(rightTetra(), geom.NewVertex(1, 1, 1))
	d, err := delaunay.Tetrahedralize(pts)
	require.NoError(t, err)

	assert.Len(t, d.Tetrahedra, 4)
	assert.Len(t, d.Triangles, 10)
	assert.Len(t, d.Edges, 10)

	// The interior point connects to every corner.
	set := map[geom.Edge]bool{}
	for _, e := range d.Edges {
		set[e] = true
	}
	for _, c := range rightTetra() {
		assert.True(t, set[geom.NewEdge(c, pts[4])], "missing edge to %s", c)
	}
}

// TestTetrahedralize_UniqueEdges checks that no edge is reported twice.
func TestTetrahedralize_UniqueEdges(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	d, err := delaunay.Tetrahedralize(randomPoints(r, 30))
	require.NoError(t, err)

	seen := map[geom.Edge]bool{}
	for _, e := range d.Edges {
		require.False(t, seen[e], "duplicate edge %s", e)
		seen[e] = true
	}
	// A 3D triangulation of n points in general position has at least n-1 edges.
	assert.GreaterOrEqual(t, len(d.Edges), 29)
}

//----------------------------------------------------------------------------//
// Empty-circumsphere property
//----------------------------------------------------------------------------//

// TestTetrahedralize_EmptyCircumsphere asserts the defining Delaunay property
// on random inputs of 4..50 points, including super-tetrahedron cells.
func TestTetrahedralize_EmptyCircumsphere(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 4; n <= 50; n++ {
		pts := randomPoints(r, n)
		d, err := delaunay.Tetrahedralize(pts, delaunay.WithKeepSuper())
		require.NoError(t, err)

		for i := range d.Tetrahedra {
			cell := &d.Tetrahedra[i]
			if cell.Degenerate {
				continue
			}
			tol := 1e-7 * cell.CircumradiusSquared
			for _, p := range pts {
				if cell.ContainsVertex(p) {
					continue
				}
				diff := p.Position.Sub(cell.Circumcenter)
				require.GreaterOrEqual(t, diff.Dot(diff), cell.CircumradiusSquared-tol,
					"n=%d: point %s inside circumsphere of cell %d", n, p, i)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Degenerate geometry
//----------------------------------------------------------------------------//

// TestTetrahedron_Degenerate verifies that flat cells never contain points.
func TestTetrahedron_Degenerate(t *testing.T) {
	cell := delaunay.NewTetrahedron(
		geom.NewVertex(0, 0, 0),
		geom.NewVertex(1, 0, 0),
		geom.NewVertex(0, 0, 1),
		geom.NewVertex(1, 0, 1),
	)
	assert.True(t, cell.Degenerate)
	assert.False(t, cell.CircumsphereContains(geom.NewVertex(0.5, 0, 0.5).Position))
}

// TestTetrahedralize_Coplanar runs on a flat input without producing NaN.
func TestTetrahedralize_Coplanar(t *testing.T) {
	pts := []geom.Vertex{
		geom.NewVertex(0, 0, 0),
		geom.NewVertex(4, 0, 0),
		geom.NewVertex(0, 0, 4),
		geom.NewVertex(4, 0, 4),
		geom.NewVertex(2, 0, 1),
	}
	d, err := delaunay.Tetrahedralize(pts)
	require.NoError(t, err)

	for _, cell := range d.Tetrahedra {
		for _, c := range cell.Circumcenter {
			assert.False(t, math.IsNaN(c) || math.IsInf(c, 0))
		}
	}
}

// TestCircumsphere_RightTetra checks the circumcenter against the closed form.
func TestCircumsphere_RightTetra(t *testing.T) {
	p := rightTetra()
	cell := delaunay.NewTetrahedron(p[0], p[1], p[2], p[3])

	require.False(t, cell.Degenerate)
	assert.InDelta(t, 5.0, cell.Circumcenter[0], 1e-9)
	assert.InDelta(t, 5.0, cell.Circumcenter[1], 1e-9)
	assert.InDelta(t, 5.0, cell.Circumcenter[2], 1e-9)
	assert.InDelta(t, 75.0, cell.CircumradiusSquared, 1e-9)
	assert.True(t, cell.CircumsphereContains(geom.NewVertex(5, 5, 5).Position))
	assert.False(t, cell.CircumsphereContains(geom.NewVertex(20, 0, 0).Position))
}
