// Package prim_kruskal computes minimum spanning trees over explicit lists of
// geom.WeightedEdge: Prim's algorithm for generation, Kruskal's algorithm as an
// independent reference.
//
// What & Why
//
//   - An MST of a connected weighted graph G = (V, E) is a subset T ⊆ E that
//     spans V with minimum total weight and no cycles.
//   - Dungeon generation uses the MST of the Delaunay edge set as the mandatory
//     skeleton that keeps every room reachable from the spawn.
//
// Algorithms Provided
//
//   - Prim(edges, start) ([]geom.WeightedEdge, error)
//
//   - Strategy: keep a closed set (initially {start}) and an open set of every
//     other endpoint. Each round scans all edges for the lightest one with
//     exactly one endpoint closed, adds it and closes both endpoints.
//
//   - Complexity: O(E·V) time, O(V) memory. Deliberately the scan variant:
//     vertex counts are small (tens of rooms) and the scan order fixes
//     tie-breaking (first-found minimum wins).
//
//   - Disconnection: the partial tree reachable from start is returned with no
//     error; compare len(tree) with len(Vertices(edges))-1 when it matters.
//
//   - Kruskal(edges) ([]geom.WeightedEdge, float64, error)
//
//   - Strategy: stable sort by distance, union-find with path compression and
//     union by rank.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
// Error Conditions
//
//   - ErrVertexNotFound (Prim): start is not an endpoint of any edge while the
//     edge list is non-empty.
//   - ErrDisconnected (Kruskal): the edges do not span their endpoints.
//   - ErrInvalidWeight: an edge carries a NaN or negative distance.
package prim_kruskal
