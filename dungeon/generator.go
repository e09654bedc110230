package dungeon

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/lvldungeon/astar"
	"github.com/katalvlaran/lvldungeon/geom"
	"github.com/katalvlaran/lvldungeon/gridgraph"
)

// Generator produces levels from one configuration and one random stream.
// Consecutive Generate calls continue the stream and yield different levels.
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	log    *slog.Logger
	paths  *astar.Pathfinder
	seeded bool
}

// NewGenerator validates cfg with opts applied and allocates the pathfinder
// that every attempt reuses.
func NewGenerator(cfg Config, opts ...Option) (*Generator, error) {
	s := settings{cfg: cfg}
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{cfg: s.cfg, rng: s.rng, log: s.logger}
	if g.rng == nil {
		g.rng = rngFromSeed(s.cfg.Seed)
		g.seeded = true
	}
	if g.log == nil {
		g.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	paths, err := astar.New(s.cfg.GridSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	g.paths = paths

	return g, nil
}

// Generate builds one level with DefaultConfig and opts.
func Generate(opts ...Option) (*Level, error) {
	g, err := NewGenerator(DefaultConfig(), opts...)
	if err != nil {
		return nil, err
	}

	return g.Generate()
}

// Config returns the validated configuration.
func (g *Generator) Config() Config { return g.cfg }

// Generate runs attempts until one succeeds or MaxAttempts is spent.
func (g *Generator) Generate() (*Level, error) {
	var last error
	for n := 1; n <= g.cfg.MaxAttempts; n++ {
		a, err := g.attempt()
		if err == nil {
			lvl := a.level()
			lvl.Stats.Attempts = n
			if g.seeded {
				lvl.Seed = g.cfg.Seed
			}
			g.log.Info("level generated",
				"attempts", n,
				"rooms", len(lvl.Rooms),
				"corridors", lvl.Stats.CorridorsCarved,
				"skipped", lvl.Stats.CorridorsSkipped,
				"connected", lvl.Stats.Connected)

			return lvl, nil
		}
		last = err
		g.log.Debug("attempt failed", "attempt", n, "reason", err)
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrGenerationFailed, g.cfg.MaxAttempts, last)
}

// attempt holds the state of one generation attempt.
type attempt struct {
	cfg   *Config
	rng   *rand.Rand
	log   *slog.Logger
	paths *astar.Pathfinder

	grid  *gridgraph.VoxelGrid
	index *boxIndex

	vertices []geom.Vertex
	rooms    []Room
	culled   []Room
	entrance []geom.Cell
	spawn    Marker
	exit     Marker
	stats    Stats

	candidates []geom.Edge
	selected   []geom.WeightedEdge
	corridors  []Corridor
}

// attempt runs every stage once on a fresh grid.
func (g *Generator) attempt() (*attempt, error) {
	grid, err := gridgraph.NewVoxelGrid(g.cfg.GridSize)
	if err != nil {
		return nil, err
	}
	a := &attempt{
		cfg:   &g.cfg,
		rng:   g.rng,
		log:   g.log,
		paths: g.paths,
		grid:  grid,
		index: newBoxIndex(),
	}

	if err := a.placeSpawnAndExit(); err != nil {
		return nil, err
	}
	a.placeRooms()
	a.triangulate()
	if err := a.selectEdges(); err != nil {
		return nil, err
	}
	if err := a.validateReachability(); err != nil {
		return nil, err
	}
	a.cullDisconnected()
	a.carveCorridors()

	if err := a.checkCarved(); err != nil {
		return nil, err
	}

	return a, nil
}

// checkCarved records whether spawn and exit are linked in the grid and
// fails the attempt when that is required but missing.
func (a *attempt) checkCarved() error {
	ok, err := a.grid.Reachable(a.spawn.Entry, a.exit.Entry, gridgraph.ConnCarved)
	if err != nil {
		return err
	}
	a.stats.Connected = ok
	if !ok {
		if _, gaps, berr := a.grid.Bridge(a.spawn.Entry, a.exit.Entry, gridgraph.ConnCarved); berr == nil {
			a.stats.CarveGaps = gaps
		}
		if a.cfg.VerifyCarvedConnectivity {
			return fmt.Errorf("%w: %d cells missing", ErrDisconnectedCarve, a.stats.CarveGaps)
		}
	}

	return nil
}

// level packages the attempt result.
func (a *attempt) level() *Level {
	return &Level{
		Grid:       a.grid,
		Vertices:   a.vertices,
		Rooms:      a.rooms,
		Culled:     a.culled,
		Candidates: a.candidates,
		Edges:      a.selected,
		Corridors:  a.corridors,
		Spawn:      a.spawn,
		Exit:       a.exit,
		Entrance:   a.entrance,
		CellScale:  a.cfg.CellScale,
		Stats:      a.stats,
	}
}
