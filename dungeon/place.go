package dungeon

import (
	"fmt"

	"github.com/katalvlaran/lvldungeon/geom"
	"github.com/katalvlaran/lvldungeon/gridgraph"
)

// placeSpawnAndExit sets up markers and the spawn and exit areas.
//
// Steps:
//  1. Draw spawn and exit X in [MaxRoomSize.X, GridSize.X-MaxRoomSize.X).
//  2. Spawn: tutorial hallway on a first level, otherwise a room at z=0
//     centred on the spawn X and containing the entrance layer.
//  3. Exit: a room flush with the far Z face, same rules.
func (a *attempt) placeSpawnAndExit() error {
	g, lo, hi := a.cfg.GridSize, a.cfg.MinRoomSize, a.cfg.MaxRoomSize
	y := a.cfg.Entrance()

	// 1) Marker columns.
	spawnX := hi.X + a.rng.Intn(g.X-2*hi.X)
	exitX := hi.X + a.rng.Intn(g.X-2*hi.X)
	a.spawn = Marker{Cell: geom.C(spawnX, y, -1), Entry: geom.C(spawnX, y, 0)}
	a.exit = Marker{Cell: geom.C(exitX, y, g.Z), Entry: geom.C(exitX, y, g.Z-1)}

	// 2) Spawn area.
	if a.cfg.FirstLevel {
		origin, size := geom.C(spawnX, y, 0), geom.C(1, 1, TutorialLength)
		a.grid.Stamp(origin, size, gridgraph.Corridor)
		for z := 0; z < TutorialLength; z++ {
			a.entrance = append(a.entrance, geom.C(spawnX, y, z))
		}
		if err := a.index.Insert(-1, origin, size); err != nil {
			return err
		}
		a.spawn.Vertex = a.entrance[len(a.entrance)-1].Vertex()
		a.vertices = append(a.vertices, a.spawn.Vertex)
	} else {
		size := roomSize(a.rng, lo, hi)
		origin := geom.C(spawnX-size.X/2, min(y, g.Y-size.Y), 0)
		room := a.addRoom(RoomSpawn, origin, size)
		a.spawn.Vertex = room.Vertex
	}

	// 3) Exit area.
	size := roomSize(a.rng, lo, hi)
	origin := geom.C(exitX-size.X/2, min(y, g.Y-size.Y), g.Z-size.Z)
	if a.index.Collides(origin, size, RoomMargin) {
		return fmt.Errorf("%w: exit room at %s size %s", ErrExitBlocked, origin, size)
	}
	room := a.addRoom(RoomExit, origin, size)
	a.exit.Vertex = room.Vertex

	return nil
}

// placeRooms spends the room budget. Every draw counts whether or not the
// room fits.
func (a *attempt) placeRooms() {
	g, lo, hi := a.cfg.GridSize, a.cfg.MinRoomSize, a.cfg.MaxRoomSize
	for i := 0; i < a.cfg.RoomBudget; i++ {
		size := roomSize(a.rng, lo, hi)
		origin := geom.C(
			a.rng.Intn(g.X-size.X+1),
			0,
			a.rng.Intn(g.Z-size.Z+1),
		)
		if a.rng.Float64() < a.cfg.UpperLayerChance && g.Y > size.Y {
			origin.Y = 1 + a.rng.Intn(g.Y-size.Y)
		}

		if a.index.Collides(origin, size, RoomMargin) {
			a.stats.RoomsRejected++
			continue
		}
		a.addRoom(RoomStandard, origin, size)
		a.stats.RoomsPlaced++
	}
}

// addRoom stamps, indexes and records a room that is known to fit.
func (a *attempt) addRoom(kind RoomKind, origin, size geom.Cell) Room {
	room := Room{
		ID:     len(a.rooms),
		Kind:   kind,
		Origin: origin,
		Size:   size,
		Vertex: Centroid(origin, size),
	}
	a.grid.Stamp(origin, size, gridgraph.Room)
	// Rects built from positive extents never fail.
	_ = a.index.Insert(room.ID, origin, size)
	a.rooms = append(a.rooms, room)
	a.vertices = append(a.vertices, room.Vertex)

	return room
}
