package world

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilemaze/internal/telemetry"
)

// Builder turns generator output into playable mazes. Random choices are
// drawn from the injected rng, so a builder seeded the same way decorates
// the same grid the same way.
type Builder struct {
	acceptor *Acceptor
	rng      *rand.Rand
	logger   *slog.Logger
}

// NewBuilder creates a builder. A nil rng is seeded from the clock; a nil
// logger uses slog.Default().
func NewBuilder(gen Generator, cfg AcceptConfig, rng *rand.Rand, logger *slog.Logger) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		acceptor: NewAcceptor(gen, cfg, logger),
		rng:      rng,
		logger:   logger,
	}
}

// Build generates, validates and decorates a width x height maze starting
// from seed. Only generator failures are returned as errors.
func (b *Builder) Build(ctx context.Context, width, height int, seed int64) (*Maze, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "maze.build")
	defer span.End()

	startTime := time.Now()

	accepted, err := b.acceptor.Accept(ctx, width, height, seed)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("build maze %dx%d: %w", width, height, err)
	}

	m := NewMaze(width, height, accepted.Grid)
	m.Seed = accepted.Seed
	m.Fallback = accepted.State == StateExhaustedFallback
	if id, err := uuid.NewRandomFromReader(b.rng); err == nil {
		m.ID = id
	}

	_, placeSpan := tracer.Start(ctx, "maze.place")
	placement, ok := PlaceSpawnAndGoal(m, b.rng)
	if ok {
		placeSpan.SetAttributes(
			attribute.String("maze.spawn_edge", placement.SpawnEdge.String()),
			attribute.Bool("maze.goal_from_edge", placement.GoalFromEdge),
		)
	} else {
		placeSpan.SetAttributes(attribute.String("warning", "no edge tiles, spawn and goal unset"))
		b.logger.Warn("maze has no navigable edge tiles, spawn and goal unset",
			"maze_id", m.ID.String(),
			"seed", m.Seed,
		)
	}
	placeSpan.End()

	span.SetAttributes(
		attribute.String("maze.id", m.ID.String()),
		attribute.Int("maze.width", width),
		attribute.Int("maze.height", height),
		attribute.Int64("maze.seed", m.Seed),
		attribute.Int("maze.attempts", accepted.Attempts),
		attribute.Float64("maze.fullness", accepted.Fullness),
		attribute.Bool("maze.fallback", m.Fallback),
		attribute.Int64("maze.build_ms", time.Since(startTime).Milliseconds()),
	)

	return m, nil
}

// RandomNavigableTiles picks up to n distinct navigable tiles, skipping the
// spawn, the goal and any point in exclude.
func RandomNavigableTiles(m *Maze, rng *rand.Rand, n int, exclude ...Point) []Point {
	if n <= 0 {
		return nil
	}
	skip := make(map[Point]bool, len(exclude)+2)
	for _, p := range exclude {
		skip[p] = true
	}
	if p, ok := m.Spawn(); ok {
		skip[p] = true
	}
	if p, ok := m.Goal(); ok {
		skip[p] = true
	}

	var pool []Point
	for _, t := range m.NavigableTiles() {
		if p := t.Position(); !skip[p] {
			pool = append(pool, p)
		}
	}

	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if n < len(pool) {
		pool = pool[:n]
	}
	return pool
}
