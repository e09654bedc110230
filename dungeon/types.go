package dungeon

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/lvldungeon/geom"
	"github.com/katalvlaran/lvldungeon/gridgraph"
)

// Configuration errors. Validate wraps them with the field at fault.
var (
	// ErrInvalidConfig indicates an out-of-range configuration value.
	ErrInvalidConfig = errors.New("dungeon: invalid configuration")

	// ErrGridTooSmall indicates a grid that cannot hold spawn, exit and rooms.
	ErrGridTooSmall = errors.New("dungeon: grid too small for room sizes")
)

// Attempt errors. They end one attempt and trigger a retry.
var (
	// ErrUnreachable indicates spawn or exit touches no selected edge.
	ErrUnreachable = errors.New("dungeon: spawn or exit unreachable")

	// ErrDisconnectedCarve indicates the carved grid does not link spawn and exit.
	ErrDisconnectedCarve = errors.New("dungeon: carved corridors do not connect spawn and exit")

	// ErrExitBlocked indicates the exit room collides with the spawn area.
	ErrExitBlocked = errors.New("dungeon: exit room overlaps spawn area")
)

// ErrGenerationFailed is returned once MaxAttempts attempts have failed.
var ErrGenerationFailed = errors.New("dungeon: generation failed")

// TouchRadiusSq is the squared distance within which an edge endpoint counts
// as touching a vertex.
const TouchRadiusSq = 3.0

// RoomMargin is the number of free cells required around every room.
const RoomMargin = 1

// TutorialLength is the length in cells of the first-level hallway.
const TutorialLength = 4

// RoomKind tells spawn and exit rooms apart from the rest.
type RoomKind uint8

const (
	RoomStandard RoomKind = iota
	RoomSpawn
	RoomExit
)

// String returns the lower-case kind name.
func (k RoomKind) String() string {
	switch k {
	case RoomSpawn:
		return "spawn"
	case RoomExit:
		return "exit"
	default:
		return "room"
	}
}

// Room is an axis-aligned box of grid cells with its centroid vertex.
type Room struct {
	ID     int
	Kind   RoomKind
	Origin geom.Cell
	Size   geom.Cell
	Vertex geom.Vertex
}

// Max returns the exclusive upper corner of the room.
func (r Room) Max() geom.Cell { return r.Origin.Add(r.Size) }

// Contains reports whether c lies inside the room.
func (r Room) Contains(c geom.Cell) bool {
	m := r.Max()
	return c.X >= r.Origin.X && c.X < m.X &&
		c.Y >= r.Origin.Y && c.Y < m.Y &&
		c.Z >= r.Origin.Z && c.Z < m.Z
}

// Centroid returns the center of a box, on half cells for odd extents.
func Centroid(origin, size geom.Cell) geom.Vertex {
	return geom.NewVertex(
		float64(origin.X)+float64(size.X)/2,
		float64(origin.Y)+float64(size.Y)/2,
		float64(origin.Z)+float64(size.Z)/2,
	)
}

// CarveStatus is the outcome of carving one selected edge.
type CarveStatus uint8

const (
	Carved CarveStatus = iota
	NoPathFound
)

// String returns the status name.
func (s CarveStatus) String() string {
	if s == NoPathFound {
		return "no-path"
	}
	return "carved"
}

// Staircase is one rise or drop of a corridor. Base is the path cell the
// staircase starts from, Direction the horizontal unit step and Rise the
// vertical step (+1 or -1). Rotation is the yaw in degrees of the climbing
// direction: +Z is 0, +X is 90, -Z is 180, -X is 270.
type Staircase struct {
	Cells     [4]geom.Cell
	Base      geom.Cell
	Direction geom.Cell
	Rise      int
	Rotation  float64
}

// Corridor is the carving result for one selected edge.
type Corridor struct {
	Edge   geom.WeightedEdge
	Status CarveStatus
	Path   []geom.Cell
	Stairs []Staircase
}

// Marker is a spawn or exit point. Cell lies just outside the grid on a Z
// face, Entry is the first grid cell in front of it and Vertex is the graph
// vertex the marker is attached to.
type Marker struct {
	Cell   geom.Cell
	Entry  geom.Cell
	Vertex geom.Vertex
}

// Stats counts what happened during generation.
type Stats struct {
	Attempts int
	// RoomsPlaced and RoomsRejected count the room budget draws of the
	// successful attempt and always sum to RoomBudget. Spawn and exit rooms
	// are not included.
	RoomsPlaced      int
	RoomsRejected    int
	RoomsCulled      int
	CorridorsCarved  int
	CorridorsSkipped int
	// Connected reports whether spawn and exit are joined in the carved grid.
	Connected bool
	// CarveGaps is the minimum number of None cells that would have to be
	// opened to join spawn and exit; zero when Connected.
	CarveGaps int
}

// Level is the output of a successful generation.
type Level struct {
	Grid *gridgraph.VoxelGrid

	// Vertices holds the graph vertices after culling: spawn, exit, rooms.
	Vertices []geom.Vertex
	Rooms    []Room
	Culled   []Room

	// Candidates are the Delaunay edges, Edges the selected subset.
	Candidates []geom.Edge
	Edges      []geom.WeightedEdge
	Corridors  []Corridor

	Spawn    Marker
	Exit     Marker
	Entrance []geom.Cell

	CellScale float64
	Seed      int64
	Stats     Stats
}

// World converts a cell to render-layer coordinates.
func (l *Level) World(c geom.Cell) mgl64.Vec3 {
	return mgl64.Vec3{float64(c.X), float64(c.Y), float64(c.Z)}.Mul(l.CellScale)
}

// RoomAt returns the room containing c.
func (l *Level) RoomAt(c geom.Cell) (Room, bool) {
	for _, r := range l.Rooms {
		if r.Contains(c) {
			return r, true
		}
	}

	return Room{}, false
}
