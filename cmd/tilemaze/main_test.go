package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileLoggerKeepsWarnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tilemaze.log")

	logger, closeLog, err := newFileLogger(path)
	if err != nil {
		t.Fatalf("newFileLogger failed: %v", err)
	}
	logger.Info("dropped")
	logger.Warn("maze acceptance exhausted, using fallback grid", "attempts", 10)
	if err := closeLog(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "attempts=10") {
		t.Errorf("Expected the warning in the log, got %q", out)
	}
	if strings.Contains(out, "dropped") {
		t.Errorf("INFO should be filtered, got %q", out)
	}
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	cfg, err := loadConfig("", 99, 7, 4)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Maze.Seed != 99 || cfg.Maze.Width != 7 || cfg.Maze.Height != 4 {
		t.Errorf("Flags not applied: %+v", cfg.Maze)
	}

	if _, err := loadConfig("", 0, -1, 0); err == nil {
		t.Error("Expected a negative width to be rejected")
	}
}
