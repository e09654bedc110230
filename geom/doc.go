// Package geom holds the value-typed primitives shared by every stage of
// dungeon generation: continuous vertices, undirected edges, weighted edges
// and integer grid cells.
//
// What:
//
//   - Vertex wraps an mgl64.Vec3 position. Two vertices are equal when their
//     positions are equal, so Vertex works directly as a map or set key.
//   - Edge is an unordered pair of vertices. NewEdge stores the endpoints in
//     canonical order, which makes Edge{a,b} and Edge{b,a} the same key.
//   - WeightedEdge caches the Euclidean length of an Edge for MST selection.
//   - Cell is an integer 3-vector addressing one voxel of a grid.
//
// Equality:
//
//   - Exact equality (==) is the set semantics used by graph code.
//   - AlmostEqual tolerates floating-point noise (squared distance < Epsilon)
//     and is used where positions are recomputed, e.g. Delaunay face matching.
//
// Complexity: every operation in this package is O(1).
package geom
