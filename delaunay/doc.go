// Package delaunay computes the 3D Delaunay tetrahedralization of a point set
// with the incremental Bowyer–Watson algorithm.
//
// What:
//
//	Given N ≥ 4 distinct vertices, Tetrahedralize partitions their convex hull
//	into tetrahedra whose circumspheres contain no other input vertex, and
//	returns the deduplicated triangle and edge sets of that partition. The
//	edge set is the candidate connectivity graph for dungeon generation.
//
// Algorithm:
//
//  1. Build a super-tetrahedron with corners at min-1 and max+2·maxExtent so
//     that it contains every input vertex.
//  2. Insert vertices in input order. Every tetrahedron whose circumsphere
//     strictly contains the vertex is bad; the faces of the bad tetrahedra
//     that are not shared by two of them form the cavity boundary, and each
//     boundary face is joined to the new vertex.
//  3. Discard tetrahedra touching a super-tetrahedron corner.
//  4. Collect 4 triangles and 6 edges per tetrahedron, skipping duplicates.
//
// Numerics:
//
//	Circumspheres come from 4×4 determinants (mgl64.Mat4.Det). A near-zero
//	leading determinant means the four corners are (almost) coplanar; such a
//	tetrahedron is flagged degenerate and never reports containment instead
//	of producing NaN or Inf.
//
// Complexity: O(N²) expected for well-distributed input, O(N²) memory worst case
// for the face buffers. Intended for tens of vertices.
//
// Errors:
//
//   - ErrTooFewVertices: fewer than four input vertices.
//   - ErrDuplicateVertex: two input vertices are almost equal.
package delaunay
