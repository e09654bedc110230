package dungeon

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvldungeon/geom"
)

// Config holds every generation parameter. The zero value is not usable;
// start from DefaultConfig or LoadConfig.
type Config struct {
	// GridSize is the X×Y×Z extent of the voxel grid.
	GridSize geom.Cell `yaml:"grid_size"`
	// MinRoomSize and MaxRoomSize bound room extents per axis, inclusive.
	MinRoomSize geom.Cell `yaml:"min_room_size"`
	MaxRoomSize geom.Cell `yaml:"max_room_size"`
	// RoomBudget is the number of placement draws, accepted or not.
	RoomBudget int `yaml:"room_budget"`
	// MaxAttempts caps full regenerations.
	MaxAttempts int `yaml:"max_attempts"`
	// LoopChance is the probability of keeping a non-MST Delaunay edge.
	LoopChance float64 `yaml:"loop_chance"`
	// UpperLayerChance is the probability of lifting a room off the ground layer.
	UpperLayerChance float64 `yaml:"upper_layer_chance"`
	// EntranceLayer is the Y layer of spawn and exit. Negative means GridSize.Y/2.
	EntranceLayer int `yaml:"entrance_layer"`
	// FirstLevel replaces the spawn room with a straight hallway.
	FirstLevel bool `yaml:"first_level"`
	// Seed feeds the generator RNG. Zero selects a fixed default seed.
	Seed int64 `yaml:"seed"`
	// VerifyCarvedConnectivity retries attempts whose carved grid does not
	// join spawn and exit.
	VerifyCarvedConnectivity bool `yaml:"verify_carved_connectivity"`
	// CellScale is the world size of one cell, passed through to Level.
	CellScale float64 `yaml:"cell_scale"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		GridSize:         geom.C(30, 5, 30),
		MinRoomSize:      geom.C(3, 1, 3),
		MaxRoomSize:      geom.C(6, 2, 6),
		RoomBudget:       30,
		MaxAttempts:      1000,
		LoopChance:       0.25,
		UpperLayerChance: 0.25,
		EntranceLayer:    -1,
		CellScale:        1,
	}
}

// LoadConfig decodes YAML from r on top of DefaultConfig. Unknown keys are
// rejected. The result is validated.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Entrance returns the effective spawn and exit layer.
func (c Config) Entrance() int {
	if c.EntranceLayer < 0 {
		return c.GridSize.Y / 2
	}

	return c.EntranceLayer
}

// Validate checks c before any generation work.
//
// Checks (in order):
//  1. every extent positive, 1 <= MinRoomSize <= MaxRoomSize per axis;
//  2. RoomBudget, MaxAttempts, CellScale positive; chances in [0,1];
//  3. EntranceLayer inside the grid;
//  4. grid room for spawn range, ceiling height, spawn and exit depth.
func (c Config) Validate() error {
	// 1) Extents.
	if c.GridSize.X <= 0 || c.GridSize.Y <= 0 || c.GridSize.Z <= 0 {
		return fmt.Errorf("%w: grid_size %s must be positive", ErrInvalidConfig, c.GridSize)
	}
	if c.MinRoomSize.X < 1 || c.MinRoomSize.Y < 1 || c.MinRoomSize.Z < 1 {
		return fmt.Errorf("%w: min_room_size %s must be at least 1", ErrInvalidConfig, c.MinRoomSize)
	}
	if c.MaxRoomSize.X < c.MinRoomSize.X || c.MaxRoomSize.Y < c.MinRoomSize.Y || c.MaxRoomSize.Z < c.MinRoomSize.Z {
		return fmt.Errorf("%w: max_room_size %s below min_room_size %s", ErrInvalidConfig, c.MaxRoomSize, c.MinRoomSize)
	}

	// 2) Scalars.
	if c.RoomBudget <= 0 {
		return fmt.Errorf("%w: room_budget %d must be positive", ErrInvalidConfig, c.RoomBudget)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("%w: max_attempts %d must be positive", ErrInvalidConfig, c.MaxAttempts)
	}
	if !(c.CellScale > 0) {
		return fmt.Errorf("%w: cell_scale %g must be positive", ErrInvalidConfig, c.CellScale)
	}
	if !(c.LoopChance >= 0 && c.LoopChance <= 1) {
		return fmt.Errorf("%w: loop_chance %g outside [0,1]", ErrInvalidConfig, c.LoopChance)
	}
	if !(c.UpperLayerChance >= 0 && c.UpperLayerChance <= 1) {
		return fmt.Errorf("%w: upper_layer_chance %g outside [0,1]", ErrInvalidConfig, c.UpperLayerChance)
	}

	// 3) Entrance.
	if c.EntranceLayer >= c.GridSize.Y {
		return fmt.Errorf("%w: entrance_layer %d outside grid height %d", ErrInvalidConfig, c.EntranceLayer, c.GridSize.Y)
	}

	// 4) Fit.
	if c.GridSize.X <= 2*c.MaxRoomSize.X {
		return fmt.Errorf("%w: grid x %d must exceed twice max room x %d", ErrGridTooSmall, c.GridSize.X, c.MaxRoomSize.X)
	}
	if c.MaxRoomSize.Y > c.GridSize.Y {
		return fmt.Errorf("%w: max room y %d exceeds grid y %d", ErrGridTooSmall, c.MaxRoomSize.Y, c.GridSize.Y)
	}
	if c.MaxRoomSize.Z > c.GridSize.Z {
		return fmt.Errorf("%w: max room z %d exceeds grid z %d", ErrGridTooSmall, c.MaxRoomSize.Z, c.GridSize.Z)
	}
	near := c.MinRoomSize.Z
	if c.FirstLevel {
		near = TutorialLength
	}
	if c.GridSize.Z < near+RoomMargin+c.MinRoomSize.Z {
		return fmt.Errorf("%w: grid z %d cannot hold spawn and exit areas", ErrGridTooSmall, c.GridSize.Z)
	}

	return nil
}

// settings collects what Options configure.
type settings struct {
	cfg    Config
	rng    *rand.Rand
	logger *slog.Logger
}

// Option customizes a Generator.
type Option func(*settings)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(s *settings) { s.cfg = cfg }
}

// WithSeed sets Config.Seed.
func WithSeed(seed int64) Option {
	return func(s *settings) { s.cfg.Seed = seed }
}

// WithRand injects the random source. It takes precedence over the seed.
func WithRand(r *rand.Rand) Option {
	return func(s *settings) { s.rng = r }
}

// WithGridSize sets Config.GridSize.
func WithGridSize(size geom.Cell) Option {
	return func(s *settings) { s.cfg.GridSize = size }
}

// WithRoomSize sets the inclusive per-axis room extent bounds.
func WithRoomSize(lo, hi geom.Cell) Option {
	return func(s *settings) {
		s.cfg.MinRoomSize = lo
		s.cfg.MaxRoomSize = hi
	}
}

// WithRoomBudget sets Config.RoomBudget.
func WithRoomBudget(n int) Option {
	return func(s *settings) { s.cfg.RoomBudget = n }
}

// WithMaxAttempts sets Config.MaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(s *settings) { s.cfg.MaxAttempts = n }
}

// WithLoopChance sets Config.LoopChance.
func WithLoopChance(p float64) Option {
	return func(s *settings) { s.cfg.LoopChance = p }
}

// WithUpperLayerChance sets Config.UpperLayerChance.
func WithUpperLayerChance(p float64) Option {
	return func(s *settings) { s.cfg.UpperLayerChance = p }
}

// WithFirstLevel enables the tutorial hallway in front of spawn.
func WithFirstLevel() Option {
	return func(s *settings) { s.cfg.FirstLevel = true }
}

// WithVerifyCarvedConnectivity retries attempts whose carved grid is split.
func WithVerifyCarvedConnectivity() Option {
	return func(s *settings) { s.cfg.VerifyCarvedConnectivity = true }
}

// WithLogger routes generator logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}
