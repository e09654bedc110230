// Package dungeon generates multi-layer dungeon levels on a voxel grid.
//
// A generation attempt runs these stages in order:
//
//	PLACE_SPAWN_AND_EXIT  spawn marker on the near Z edge, exit marker on the
//	                      far edge, one room adjoining each (or the straight
//	                      tutorial hallway in front of spawn on a first level)
//	PLACE_ROOMS           RoomBudget random boxes; a box whose footprint grown
//	                      by one cell touches anything already placed is skipped
//	TRIANGULATE           Delaunay tetrahedralization of the room vertices
//	SELECT_EDGES          Prim MST from the spawn vertex plus each remaining
//	                      Delaunay edge with probability LoopChance
//	VALIDATE_REACHABILITY spawn and exit must each touch a selected edge
//	CULL_DISCONNECTED     rooms touched by no selected edge are dropped
//	CARVE_CORRIDORS       one A* search per selected edge; None cells on the
//	                      route become Corridor, vertical steps become Stairs
//
// A failed attempt discards the whole grid and starts over. After MaxAttempts
// failures Generate returns ErrGenerationFailed wrapping the last reason.
//
// By convention Level vertex 0 is the spawn vertex and vertex 1 the exit.
//
// All randomness is drawn from one *rand.Rand owned by the Generator, so a
// fixed Seed replays the same level. A Generator is not safe for concurrent
// use; create one per goroutine.
//
// A corridor whose search fails is recorded with status NoPathFound and the
// level is kept. Stats.Connected reports whether spawn and exit are linked in
// the carved grid. WithVerifyCarvedConnectivity turns a disconnected result
// into a failed attempt instead.
package dungeon
