package delaunay

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/lvldungeon/geom"
)

// NewTetrahedron builds a tetrahedron and its circumsphere.
func NewTetrahedron(a, b, c, d Vertex) Tetrahedron {
	t := Tetrahedron{A: a, B: b, C: c, D: d}
	t.circumsphere()

	return t
}

// circumsphere fills Circumcenter and CircumradiusSquared from the
// determinant formulation of the sphere through A, B, C and D.
func (t *Tetrahedron) circumsphere() {
	pa, pb, pc, pd := t.A.Position, t.B.Position, t.C.Position, t.D.Position

	xs := mgl64.Vec4{pa[0], pb[0], pc[0], pd[0]}
	ys := mgl64.Vec4{pa[1], pb[1], pc[1], pd[1]}
	zs := mgl64.Vec4{pa[2], pb[2], pc[2], pd[2]}
	sq := mgl64.Vec4{pa.Dot(pa), pb.Dot(pb), pc.Dot(pc), pd.Dot(pd)}
	ones := mgl64.Vec4{1, 1, 1, 1}

	a := mgl64.Mat4FromRows(xs, ys, zs, ones).Det()
	if math.Abs(a) <= DegenerateEpsilon {
		t.Degenerate = true

		return
	}

	dx := mgl64.Mat4FromRows(sq, ys, zs, ones).Det()
	dy := -mgl64.Mat4FromRows(sq, xs, zs, ones).Det()
	dz := mgl64.Mat4FromRows(sq, xs, ys, ones).Det()
	c := mgl64.Mat4FromRows(sq, xs, ys, zs).Det()

	t.Circumcenter = mgl64.Vec3{dx / (2 * a), dy / (2 * a), dz / (2 * a)}
	t.CircumradiusSquared = (dx*dx + dy*dy + dz*dz - 4*a*c) / (4 * a * a)
}

// CircumsphereContains reports whether p lies strictly inside the
// circumsphere. Degenerate tetrahedra contain nothing.
func (t *Tetrahedron) CircumsphereContains(p mgl64.Vec3) bool {
	if t.Degenerate {
		return false
	}
	d := p.Sub(t.Circumcenter)

	return d.Dot(d) < t.CircumradiusSquared
}

// ContainsVertex reports whether v is almost equal to one of the corners.
func (t *Tetrahedron) ContainsVertex(v Vertex) bool {
	return geom.AlmostEqual(v, t.A) || geom.AlmostEqual(v, t.B) ||
		geom.AlmostEqual(v, t.C) || geom.AlmostEqual(v, t.D)
}

// Faces returns the four triangular faces.
func (t *Tetrahedron) Faces() [4]Triangle {
	return [4]Triangle{
		{t.A, t.B, t.C},
		{t.A, t.B, t.D},
		{t.A, t.C, t.D},
		{t.B, t.C, t.D},
	}
}

// Edges returns the six edges in canonical form.
func (t *Tetrahedron) Edges() [6]geom.Edge {
	return [6]geom.Edge{
		geom.NewEdge(t.A, t.B),
		geom.NewEdge(t.B, t.C),
		geom.NewEdge(t.C, t.A),
		geom.NewEdge(t.D, t.A),
		geom.NewEdge(t.D, t.B),
		geom.NewEdge(t.D, t.C),
	}
}
