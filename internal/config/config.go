// Package config loads tilemaze settings from YAML with environment overrides.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultYAML []byte

// Config holds all tilemaze configuration values.
type Config struct {
	Maze       MazeConfig       `yaml:"maze"`
	Acceptance AcceptanceConfig `yaml:"acceptance"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Game       GameConfig       `yaml:"game"`
}

type MazeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Seed for maze generation and decoration. 0 means a time-based seed.
	Seed int64 `yaml:"seed"`
}

type AcceptanceConfig struct {
	MinFillPercent float64 `yaml:"min_fill_percent"`
	MaxAttempts    int     `yaml:"max_attempts"`
	TargetFullness int     `yaml:"target_fullness"`
}

type GeneratorConfig struct {
	Braiding float64 `yaml:"braiding"`
}

type GameConfig struct {
	Enemies int `yaml:"enemies"`
}

// Default returns the embedded default configuration.
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic("embedded defaults.yaml is invalid: " + err.Error())
	}
	return &cfg
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML from %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return cfg, nil
}

// MustLoad loads the configuration and panics on error.
func MustLoad(filename string) *Config {
	cfg, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Environment variables that override file settings.
const (
	EnvSeed   = "TILEMAZE_SEED"
	EnvWidth  = "TILEMAZE_WIDTH"
	EnvHeight = "TILEMAZE_HEIGHT"
)

// LoadEnv loads .env files into the process environment. Missing files are
// not an error.
func LoadEnv(filenames ...string) error {
	for _, f := range filenames {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides maze settings from TILEMAZE_* environment variables.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		c.Maze.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvWidth); ok {
		w, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvWidth, err)
		}
		c.Maze.Width = w
	}
	if v, ok := os.LookupEnv(EnvHeight); ok {
		h, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvHeight, err)
		}
		c.Maze.Height = h
	}
	return c.Validate()
}

// Validate checks that values are usable.
func (c *Config) Validate() error {
	switch {
	case c.Maze.Width < 1 || c.Maze.Height < 1:
		return fmt.Errorf("maze size %dx%d must be positive", c.Maze.Width, c.Maze.Height)
	case c.Acceptance.MinFillPercent < 0 || c.Acceptance.MinFillPercent > 100:
		return fmt.Errorf("min_fill_percent %v outside [0,100]", c.Acceptance.MinFillPercent)
	case c.Acceptance.MaxAttempts < 1:
		return fmt.Errorf("max_attempts %d must be at least 1", c.Acceptance.MaxAttempts)
	case c.Acceptance.TargetFullness < 0 || c.Acceptance.TargetFullness > 100:
		return fmt.Errorf("target_fullness %d outside [0,100]", c.Acceptance.TargetFullness)
	case c.Generator.Braiding < 0 || c.Generator.Braiding > 1:
		return fmt.Errorf("braiding %v outside [0,1]", c.Generator.Braiding)
	case c.Game.Enemies < 0:
		return fmt.Errorf("enemies %d must not be negative", c.Game.Enemies)
	}
	return nil
}
