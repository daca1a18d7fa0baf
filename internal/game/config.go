package game

import (
	"log/slog"
	"math/rand"

	"github.com/samdwyer/tilemaze/internal/config"
	"github.com/samdwyer/tilemaze/internal/generator"
	"github.com/samdwyer/tilemaze/internal/world"
)

// NewBuilder wires the default generator and acceptance settings from cfg.
func NewBuilder(cfg *config.Config, rng *rand.Rand, logger *slog.Logger) *world.Builder {
	gen := &generator.Backtracker{Braiding: cfg.Generator.Braiding}
	accept := world.AcceptConfig{
		MinFillPercent: cfg.Acceptance.MinFillPercent,
		MaxAttempts:    cfg.Acceptance.MaxAttempts,
		TargetFullness: cfg.Acceptance.TargetFullness,
	}
	return world.NewBuilder(gen, accept, rng, logger)
}
