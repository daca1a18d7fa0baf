// Package main is the entry point for TileMaze.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/samdwyer/tilemaze/internal/config"
	"github.com/samdwyer/tilemaze/internal/game"
	"github.com/samdwyer/tilemaze/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults are embedded)")
	seed := flag.Int64("seed", 0, "base seed, 0 picks one from the clock")
	width := flag.Int("width", 0, "maze width in tiles")
	height := flag.Int("height", 0, "maze height in tiles")
	dump := flag.Bool("dump", false, "print one maze as text and exit")
	logPath := flag.String("log", "tilemaze.log", "file that receives warnings while the game owns the terminal")
	flag.Parse()

	// Load .env file for local development
	if err := config.LoadEnv(".env"); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	cfg, err := loadConfig(*configPath, *seed, *width, *height)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Continuing without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if *dump {
		if err := dumpMaze(ctx, cfg); err != nil {
			log.Fatalf("Failed to build maze: %v", err)
		}
		return
	}

	// The terminal belongs to tcell while the game runs, so warnings go to a file.
	logger, closeLog, err := newFileLogger(*logPath)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	g, err := game.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// newFileLogger appends WARN and above to path.
func newFileLogger(path string) (*slog.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelWarn})
	return slog.New(handler), f.Close, nil
}

// loadConfig layers the file, environment and flags, in that order.
func loadConfig(path string, seed int64, width, height int) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if seed != 0 {
		cfg.Maze.Seed = seed
	}
	if width != 0 {
		cfg.Maze.Width = width
	}
	if height != 0 {
		cfg.Maze.Height = height
	}
	return cfg, cfg.Validate()
}

func dumpMaze(ctx context.Context, cfg *config.Config) error {
	seed := cfg.Maze.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	builder := game.NewBuilder(cfg, rand.New(rand.NewSource(seed)), slog.Default())

	m, err := builder.Build(ctx, cfg.Maze.Width, cfg.Maze.Height, seed)
	if err != nil {
		return err
	}

	fmt.Printf("maze %s  seed %d  fullness %.1f%%  fallback %v\n", m.ID, m.Seed, m.Fullness(), m.Fallback)
	fmt.Print(m.String())
	return nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// The .env file may hold an unexpanded variable reference, so the header
	// is built here from the key itself.
	apiKey := os.Getenv("HONEYCOMB_TILEMAZE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_TILEMAZE_DATASET")
	if dataset == "" {
		dataset = "tilemaze"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
