// Package gridgraph models a dungeon as a 3D voxel grid and treats its walkable
// cells as an implicit graph.
//
// What:
//
//   - VoxelGrid stores one CellType (None, Room, Corridor, Stairs) per cell of a
//     fixed X×Y×Z box.
//   - A cell only ever moves from None to a typed class; nothing resets it to
//     None. Regeneration allocates a fresh grid.
//   - Stamp and IsFree work on axis-aligned boxes, with an optional margin.
//   - ConnectedComponents and Reachable run BFS over walkable (non-None) cells.
//   - Bridge runs a 0-1 BFS that counts the None cells which would have to be
//     carved to join two cells.
//
// Connectivity:
//
//   - Conn4: ±X and ±Z inside one Y layer.
//   - Conn6: Conn4 plus ±Y, which is how room stacks and staircases connect
//     layers.
//   - ConnCarved: Conn6 offsets, but a ±Y step only joins Room to Room or
//     Stairs to Stairs. This is what a walker in the carved level can use.
//
// Complexity:
//
//   - At, Set, InBounds: O(1).
//   - Stamp, IsFree: O(box volume).
//   - ConnectedComponents, Reachable, Bridge: O(X·Y·Z·d), d = 4 or 6.
//
// Errors:
//
//   - ErrEmptyGrid: a non-positive extent.
//   - ErrOutOfBounds: a cell outside the grid.
//   - ErrCellReset: an attempt to put a typed cell back to None.
//   - ErrNoPath: Bridge cannot join the two cells.
package gridgraph
