package delaunay

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvldungeon/geom"
)

// Tetrahedralize computes the Delaunay tetrahedralization of vertices.
// The input slice is not modified. Every call returns fresh collections.
//
// Steps:
//  1. Validate: len(vertices) >= 4, no two vertices almost equal.
//  2. Wrap the bounding box in a super-tetrahedron.
//  3. Insert each vertex (Bowyer–Watson cavity re-triangulation).
//  4. Drop tetrahedra touching the super corners.
//  5. Extract unique triangles and edges in first-seen order.
//
// Complexity: O(N²) time for typical input.
func Tetrahedralize(vertices []Vertex, opts ...Option) (*Delaunay, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1. Validate input.
	if len(vertices) < 4 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(vertices))
	}
	for i := range vertices {
		for j := i + 1; j < len(vertices); j++ {
			if geom.AlmostEqual(vertices[i], vertices[j]) {
				return nil, fmt.Errorf("%w: %s at indices %d and %d", ErrDuplicateVertex, vertices[i], i, j)
			}
		}
	}

	d := &Delaunay{Vertices: append([]Vertex(nil), vertices...)}

	// 2. Super-tetrahedron.
	d.Super = superTetrahedron(vertices)
	tetras := []Tetrahedron{NewTetrahedron(d.Super[0], d.Super[1], d.Super[2], d.Super[3])}

	// 3. Incremental insertion.
	for _, v := range vertices {
		tetras = insert(tetras, v)
	}

	// 4. Remove cells that touch the super-tetrahedron.
	kept := make([]Tetrahedron, 0, len(tetras))
	for i := range tetras {
		t := &tetras[i]
		if t.ContainsVertex(d.Super[0]) || t.ContainsVertex(d.Super[1]) ||
			t.ContainsVertex(d.Super[2]) || t.ContainsVertex(d.Super[3]) {
			continue
		}
		kept = append(kept, *t)
	}
	if cfg.KeepSuper {
		d.Tetrahedra = tetras
	} else {
		d.Tetrahedra = kept
	}

	// 5. Unique triangles and edges.
	seenTri := mapset.New[Triangle]()
	seenEdge := mapset.New[geom.Edge]()
	for i := range kept {
		t := &kept[i]
		for _, f := range t.Faces() {
			key := canonicalTriangle(f)
			if seenTri.Has(key) {
				continue
			}
			seenTri.Put(key)
			d.Triangles = append(d.Triangles, f)
		}
		for _, e := range t.Edges() {
			if seenEdge.Has(e) {
				continue
			}
			seenEdge.Put(e)
			d.Edges = append(d.Edges, e)
		}
	}

	return d, nil
}

// superTetrahedron returns four corners that enclose every vertex.
func superTetrahedron(vertices []Vertex) [4]Vertex {
	lo := vertices[0].Position
	hi := vertices[0].Position
	for _, v := range vertices[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], v.Position[k])
			hi[k] = math.Max(hi[k], v.Position[k])
		}
	}
	extent := math.Max(hi[0]-lo[0], math.Max(hi[1]-lo[1], hi[2]-lo[2])) * 2

	return [4]Vertex{
		geom.NewVertex(lo[0]-1, lo[1]-1, lo[2]-1),
		geom.NewVertex(hi[0]+extent, lo[1]-1, lo[2]-1),
		geom.NewVertex(lo[0]-1, hi[1]+extent, lo[2]-1),
		geom.NewVertex(lo[0]-1, lo[1]-1, hi[2]+extent),
	}
}

// insert performs one Bowyer–Watson step and returns the updated cell list.
func insert(tetras []Tetrahedron, v Vertex) []Tetrahedron {
	// Collect faces of every cell whose circumsphere holds v.
	var faces []Triangle
	for i := range tetras {
		t := &tetras[i]
		if t.CircumsphereContains(v.Position) {
			t.bad = true
			f := t.Faces()
			faces = append(faces, f[:]...)
		}
	}

	// Faces shared by two bad cells are interior to the cavity.
	shared := make([]bool, len(faces))
	for i := range faces {
		for j := i + 1; j < len(faces); j++ {
			if AlmostEqualTriangles(faces[i], faces[j]) {
				shared[i] = true
				shared[j] = true
			}
		}
	}

	out := tetras[:0]
	for _, t := range tetras {
		if !t.bad {
			out = append(out, t)
		}
	}
	for i, f := range faces {
		if shared[i] {
			continue
		}
		out = append(out, NewTetrahedron(f.U, f.V, f.W, v))
	}

	return out
}

// canonicalTriangle sorts corners so equal vertex sets share one key.
func canonicalTriangle(t Triangle) Triangle {
	a, b, c := t.U, t.V, t.W
	if geom.Less(b, a) {
		a, b = b, a
	}
	if geom.Less(c, b) {
		b, c = c, b
	}
	if geom.Less(b, a) {
		a, b = b, a
	}

	return Triangle{a, b, c}
}
