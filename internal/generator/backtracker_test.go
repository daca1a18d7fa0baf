package generator

import (
	"context"
	"testing"

	"github.com/samdwyer/tilemaze/internal/tile"
)

func TestGenerateShape(t *testing.T) {
	grid, err := New().Generate(context.Background(), 7, 5, 2, 42, 80)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(grid) != 2 {
		t.Fatalf("Expected 2 layers, got %d", len(grid))
	}
	for l, layer := range grid {
		if len(layer) != 5 {
			t.Fatalf("Layer %d: expected 5 rows, got %d", l, len(layer))
		}
		for y, row := range layer {
			if len(row) != 7 {
				t.Errorf("Layer %d row %d: expected 7 columns, got %d", l, y, len(row))
			}
		}
	}
}

func TestGenerateReproducibility(t *testing.T) {
	ctx := context.Background()
	g1, err := New().Generate(ctx, 12, 9, 1, 12345, 80)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	g2, err := New().Generate(ctx, 12, 9, 1, 12345, 80)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for y := range g1[0] {
		for x := range g1[0][y] {
			if g1[0][y][x] != g2[0][y][x] {
				t.Errorf("Tile mismatch at (%d,%d): %d != %d", x, y, g1[0][y][x], g2[0][y][x])
			}
		}
	}
}

func TestGenerateFullness(t *testing.T) {
	tests := []struct {
		target int
		want   int
	}{
		{80, 80},
		{100, 100},
		{55, 55},
		{0, 0},
	}

	for _, tt := range tests {
		b := &Backtracker{}
		grid, err := b.Generate(context.Background(), 10, 10, 1, 7, tt.target)
		if err != nil {
			t.Fatalf("Generate(%d) failed: %v", tt.target, err)
		}
		navigable := 0
		for _, row := range grid[0] {
			for _, v := range row {
				if tile.Code(v).IsNavigable() {
					navigable++
				}
			}
		}
		if navigable != tt.want {
			t.Errorf("target %d: expected %d navigable tiles, got %d", tt.target, tt.want, navigable)
		}
	}
}

// Every opening must be matched by the neighbour, and nothing may open off the grid.
func TestGenerateConsistentOpenings(t *testing.T) {
	grid, err := New().Generate(context.Background(), 15, 11, 1, 99, 90)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	layer := grid[0]
	depth, width := len(layer), len(layer[0])

	for y := 0; y < depth; y++ {
		for x := 0; x < width; x++ {
			c := tile.Code(layer[y][x])
			for _, d := range tile.AllDirections() {
				if !tile.CanExit(c, d) {
					continue
				}
				dx, dy := d.Delta()
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= width || ny < 0 || ny >= depth {
					t.Errorf("(%d,%d) %v opens %v off the grid", x, y, c, d)
					continue
				}
				if !tile.CanEnter(tile.Code(layer[ny][nx]), d.Opposite()) {
					t.Errorf("(%d,%d) opens %v but neighbour %v does not open back", x, y, d, tile.Code(layer[ny][nx]))
				}
			}
		}
	}
}

func TestGenerateInvalidArguments(t *testing.T) {
	tests := []struct {
		name                 string
		width, depth, layers int
		target               int
	}{
		{"zero width", 0, 5, 1, 80},
		{"zero depth", 5, 0, 1, 80},
		{"zero layers", 5, 5, 0, 80},
		{"negative target", 5, 5, 1, -1},
		{"target over 100", 5, 5, 1, 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New().Generate(context.Background(), tt.width, tt.depth, tt.layers, 1, tt.target); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Generate(ctx, 5, 5, 1, 1, 80); err == nil {
		t.Error("Expected an error from a cancelled context")
	}
}
