package delaunay

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/lvldungeon/geom"
)

// Sentinel errors returned by Tetrahedralize.
var (
	// ErrTooFewVertices indicates fewer than four input vertices.
	ErrTooFewVertices = errors.New("delaunay: at least four vertices are required")

	// ErrDuplicateVertex indicates two input vertices that are almost equal.
	ErrDuplicateVertex = errors.New("delaunay: duplicate vertex")
)

// DegenerateEpsilon bounds the leading circumsphere determinant below which a
// tetrahedron is treated as flat.
const DegenerateEpsilon = 1e-9

// Triangle is an unordered triple of vertices.
type Triangle struct {
	U, V, W Vertex
}

// Vertex is re-exported for brevity in this package's signatures.
type Vertex = geom.Vertex

// AlmostEqualTriangles reports whether a and b share almost-equal corners in
// any order.
func AlmostEqualTriangles(a, b Triangle) bool {
	return matchAny(a.U, b) && matchAny(a.V, b) && matchAny(a.W, b)
}

func matchAny(v Vertex, t Triangle) bool {
	return geom.AlmostEqual(v, t.U) || geom.AlmostEqual(v, t.V) || geom.AlmostEqual(v, t.W)
}

// Tetrahedron is four vertices with a precomputed circumsphere.
type Tetrahedron struct {
	A, B, C, D Vertex

	Circumcenter        mgl64.Vec3
	CircumradiusSquared float64
	Degenerate          bool

	bad bool
}

// Delaunay holds the result of one Tetrahedralize call.
type Delaunay struct {
	Vertices   []Vertex
	Tetrahedra []Tetrahedron
	Triangles  []Triangle
	Edges      []geom.Edge

	// Super holds the four super-tetrahedron corners.
	Super [4]Vertex
}

// Options configures Tetrahedralize.
type Options struct {
	// KeepSuper skips the final removal of tetrahedra that touch the
	// super-tetrahedron. Triangles and Edges are still built from the
	// cleaned set; only Tetrahedra is affected.
	KeepSuper bool
}

// Option mutates Options.
type Option func(*Options)

// WithKeepSuper keeps super-tetrahedron cells in Delaunay.Tetrahedra.
func WithKeepSuper() Option {
	return func(o *Options) { o.KeepSuper = true }
}

// DefaultOptions returns the zero configuration.
func DefaultOptions() Options {
	return Options{}
}
