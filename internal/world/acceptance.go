package world

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/samdwyer/tilemaze/internal/telemetry"
	"github.com/samdwyer/tilemaze/internal/tile"
)

const (
	DefaultMinFillPercent = 60
	DefaultMaxAttempts    = 10
	DefaultTargetFullness = 80
)

// AcceptConfig controls how many generator attempts are made and what counts
// as usable output.
type AcceptConfig struct {
	// MinFillPercent is the lowest fullness accepted without falling back.
	MinFillPercent float64
	// MaxAttempts bounds the primary generator calls. Values below 1 are
	// raised to 1 by NewAcceptor.
	MaxAttempts int
	// TargetFullness is passed through to the generator untouched.
	TargetFullness int
}

// DefaultAcceptConfig returns the standard acceptance parameters.
func DefaultAcceptConfig() AcceptConfig {
	return AcceptConfig{
		MinFillPercent: DefaultMinFillPercent,
		MaxAttempts:    DefaultMaxAttempts,
		TargetFullness: DefaultTargetFullness,
	}
}

// AcceptState is the terminal state of an acceptance run.
type AcceptState int

const (
	StateAttempting AcceptState = iota
	StateAccepted
	StateExhaustedFallback
)

// String returns a human-readable state name.
func (s AcceptState) String() string {
	switch s {
	case StateAttempting:
		return "attempting"
	case StateAccepted:
		return "accepted"
	case StateExhaustedFallback:
		return "exhausted_fallback"
	default:
		return "unknown"
	}
}

// AcceptResult is the grid kept by an acceptance run and how it was reached.
type AcceptResult struct {
	Grid           [][]tile.Code // [row][col], crossroad alias canonicalized
	State          AcceptState
	Attempts       int     // primary attempts made
	GeneratorCalls int     // primary attempts plus any fallback call
	Seed           int64   // seed of the kept grid
	Fullness       float64 // fullness of the kept grid, in percent
}

// Acceptor drives a Generator until it produces a sufficiently full grid.
type Acceptor struct {
	gen    Generator
	cfg    AcceptConfig
	logger *slog.Logger
	calls  metric.Int64Counter
}

// NewAcceptor creates an acceptor. A nil logger uses slog.Default() and a
// MaxAttempts below 1 is treated as 1.
func NewAcceptor(gen Generator, cfg AcceptConfig, logger *slog.Logger) *Acceptor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	calls, err := telemetry.Meter("world").Int64Counter("maze.generator.calls",
		metric.WithDescription("Number of maze generator invocations"))
	if err != nil {
		logger.Warn("generator call counter unavailable", "error", err)
	}
	return &Acceptor{
		gen:    gen,
		cfg:    cfg,
		logger: logger,
		calls:  calls,
	}
}

// Accept runs attempts with seeds baseSeed, baseSeed+1, ... and keeps the
// first grid whose fullness reaches MinFillPercent. If none does, the last
// seed is generated once more and kept regardless.
func (a *Acceptor) Accept(ctx context.Context, width, height int, baseSeed int64) (*AcceptResult, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "maze.accept")
	defer span.End()

	result := &AcceptResult{State: StateAttempting}

	for k := 1; k <= a.cfg.MaxAttempts; k++ {
		seed := baseSeed + int64(k-1)
		grid, err := a.generate(ctx, width, height, seed)
		result.Attempts = k
		result.GeneratorCalls++
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("attempt %d (seed %d): %w", k, seed, err)
		}

		valid := navigableCount(grid)
		if meetsFill(valid, width, height, a.cfg.MinFillPercent) {
			result.Grid = grid
			result.State = StateAccepted
			result.Seed = seed
			result.Fullness = percent(valid, width*height)
			break
		}
	}

	if result.State != StateAccepted {
		seed := baseSeed + int64(a.cfg.MaxAttempts-1)
		grid, err := a.generate(ctx, width, height, seed)
		result.GeneratorCalls++
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("fallback (seed %d): %w", seed, err)
		}
		result.Grid = grid
		result.State = StateExhaustedFallback
		result.Seed = seed
		result.Fullness = Fullness(grid, width, height)

		a.logger.Warn("maze acceptance exhausted, using fallback grid",
			"attempts", result.Attempts,
			"seed", seed,
			"fullness", result.Fullness,
			"min_fill_percent", a.cfg.MinFillPercent,
		)
	}

	span.SetAttributes(
		attribute.Int("maze.attempts", result.Attempts),
		attribute.Int("maze.generator_calls", result.GeneratorCalls),
		attribute.Int64("maze.seed", result.Seed),
		attribute.Float64("maze.fullness", result.Fullness),
		attribute.Bool("maze.fallback", result.State == StateExhaustedFallback),
	)

	return result, nil
}

// generate makes one generator call and converts layer 0 to canonical codes.
func (a *Acceptor) generate(ctx context.Context, width, height int, seed int64) ([][]tile.Code, error) {
	if a.calls != nil {
		a.calls.Add(ctx, 1, metric.WithAttributes(attribute.Int64("maze.seed", seed)))
	}

	raw, err := a.gen.Generate(ctx, width, height, 1, seed, a.cfg.TargetFullness)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneratorFailed, err)
	}
	if len(raw) == 0 || len(raw[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	layer := raw[0]
	if len(layer) != height {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrGridShape, len(layer), height)
	}

	grid := make([][]tile.Code, height)
	for row := range layer {
		if len(layer[row]) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrGridShape, row, len(layer[row]), width)
		}
		grid[row] = make([]tile.Code, width)
		for col, v := range layer[row] {
			grid[row][col] = tile.Code(v).Canonical()
		}
	}
	return grid, nil
}

// Fullness returns the percentage of cells in grid that decode to a navigable shape.
// It is for reporting; acceptance uses meetsFill.
func Fullness(grid [][]tile.Code, width, height int) float64 {
	return percent(navigableCount(grid), width*height)
}

func navigableCount(grid [][]tile.Code) int {
	valid := 0
	for _, row := range grid {
		for _, c := range row {
			if c.IsNavigable() {
				valid++
			}
		}
	}
	return valid
}

// meetsFill reports valid/(width*height) >= minPercent/100 without dividing,
// so a grid exactly on the threshold is accepted.
func meetsFill(valid, width, height int, minPercent float64) bool {
	return float64(valid)*100 >= minPercent*float64(width*height)
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n*100) / float64(total)
}
