package geom

import "fmt"

// Edge is an undirected pair of vertices.
// Build edges with NewEdge so that U <= V lexicographically; only then does
// == ignore direction.
type Edge struct {
	U, V Vertex
}

// NewEdge returns the canonical edge between a and b.
func NewEdge(a, b Vertex) Edge {
	if Less(b, a) {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// Has reports whether v is exactly one of the endpoints.
func (e Edge) Has(v Vertex) bool {
	return e.U == v || e.V == v
}

// Other returns the endpoint opposite to v. The result is undefined when v
// is not an endpoint.
func (e Edge) Other(v Vertex) Vertex {
	if e.U == v {
		return e.V
	}

	return e.U
}

// Length returns the Euclidean distance between the endpoints.
func (e Edge) Length() float64 {
	return Distance(e.U, e.V)
}

// String renders the edge as "(u)-(v)".
func (e Edge) String() string {
	return fmt.Sprintf("%s-%s", e.U, e.V)
}

// AlmostEqualEdges reports whether a and b join almost-equal endpoints in
// either direction.
func AlmostEqualEdges(a, b Edge) bool {
	return (AlmostEqual(a.U, b.U) && AlmostEqual(a.V, b.V)) ||
		(AlmostEqual(a.U, b.V) && AlmostEqual(a.V, b.U))
}

// WeightedEdge is an Edge with its cached Euclidean length.
type WeightedEdge struct {
	Edge
	Distance float64
}

// NewWeightedEdge builds the canonical edge between a and b and caches its length.
func NewWeightedEdge(a, b Vertex) WeightedEdge {
	e := NewEdge(a, b)

	return WeightedEdge{Edge: e, Distance: e.Length()}
}

// Weigh converts plain edges into weighted edges, preserving order.
func Weigh(edges []Edge) []WeightedEdge {
	out := make([]WeightedEdge, len(edges))
	for i, e := range edges {
		out[i] = NewWeightedEdge(e.U, e.V)
	}

	return out
}
