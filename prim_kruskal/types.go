package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvldungeon/geom"
)

// ErrVertexNotFound indicates that Prim's start vertex is not an endpoint of any edge.
var ErrVertexNotFound = errors.New("prim_kruskal: start vertex not found")

// ErrDisconnected indicates that the edges do not connect all their endpoints,
// so no spanning tree exists.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrInvalidWeight indicates an edge with NaN or negative distance.
var ErrInvalidWeight = errors.New("prim_kruskal: edge distance must be a non-negative number")

// MethodPrim selects Prim's algorithm (scan-based growth from a start vertex).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm Compute runs.
//
// Fields:
//
//	Method string      one of MethodPrim or MethodKruskal.
//	Start  geom.Vertex start vertex for Prim; ignored by Kruskal.
type MSTOptions struct {
	Method string
	Start  geom.Vertex
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithStart sets the start vertex for Prim's algorithm.
func WithStart(v geom.Vertex) Option {
	return func(opts *MSTOptions) {
		opts.Start = v
	}
}

// DefaultOptions returns MSTOptions for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute dispatches on opts.Method and always returns the tree together with
// its total weight. Unknown methods yield an error.
func Compute(edges []geom.WeightedEdge, opts ...Option) ([]geom.WeightedEdge, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(edges)
	case MethodPrim:
		tree, err := Prim(edges, cfg.Start)
		if err != nil {
			return nil, 0, err
		}

		return tree, TotalWeight(tree), nil
	default:
		return nil, 0, fmt.Errorf("prim_kruskal: unknown method %q", cfg.Method)
	}
}

// TotalWeight sums the distances of edges.
func TotalWeight(edges []geom.WeightedEdge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Distance
	}

	return total
}

// Vertices returns every distinct endpoint in first-seen order.
func Vertices(edges []geom.WeightedEdge) []geom.Vertex {
	seen := make(map[geom.Vertex]struct{}, len(edges))
	out := make([]geom.Vertex, 0, len(edges))
	for _, e := range edges {
		for _, v := range [2]geom.Vertex{e.U, e.V} {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}

// validate rejects NaN or negative distances.
func validate(edges []geom.WeightedEdge) error {
	for _, e := range edges {
		if math.IsNaN(e.Distance) || e.Distance < 0 {
			return fmt.Errorf("%w: %s distance=%g", ErrInvalidWeight, e.Edge, e.Distance)
		}
	}

	return nil
}
