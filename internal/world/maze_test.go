package world

import (
	"strings"
	"testing"

	"github.com/samdwyer/tilemaze/internal/tile"
)

func TestNewMazeDecodesTiles(t *testing.T) {
	m := NewMaze(2, 2, [][]tile.Code{
		{tile.CornerEastSouth, tile.CornerSouthWest},
		{tile.DeadEndNorth, 3},
	})

	tests := []struct {
		x, y  int
		shape tile.Shape
		rot   tile.Rotation
	}{
		{1, 1, tile.ShapeCorner, 1},
		{2, 1, tile.ShapeCorner, 2},
		{1, 2, tile.ShapeDeadEnd, 0},
		{2, 2, tile.ShapeEmpty, 0},
	}

	for _, tt := range tests {
		tl := m.At(tt.x, tt.y)
		if tl == nil {
			t.Fatalf("At(%d,%d) returned nil", tt.x, tt.y)
		}
		if tl.Shape != tt.shape || tl.Rotation != tt.rot {
			t.Errorf("At(%d,%d) = (%v, %d), want (%v, %d)", tt.x, tt.y, tl.Shape, tl.Rotation, tt.shape, tt.rot)
		}
		if tl.X != tt.x || tl.Y != tt.y {
			t.Errorf("Tile at (%d,%d) reports position (%d,%d)", tt.x, tt.y, tl.X, tl.Y)
		}
		if tl.Grid() != tile.CollisionGrid(tt.shape, tt.rot) {
			t.Errorf("At(%d,%d): grid does not match its shape and rotation", tt.x, tt.y)
		}
	}
}

func TestNewMazePadsMissingCells(t *testing.T) {
	m := NewMaze(3, 2, [][]tile.Code{{tile.Crossroad}})
	if !m.IsPassable(1, 1) {
		t.Error("Expected (1,1) to be passable")
	}
	if m.IsPassable(3, 2) {
		t.Error("Missing cells should be empty")
	}
}

func TestMazeBounds(t *testing.T) {
	m := uniformMaze(4, 3, tile.Crossroad)
	tests := []struct {
		x, y int
		want bool
	}{
		{1, 1, true},
		{4, 3, true},
		{0, 1, false},
		{1, 0, false},
		{5, 1, false},
		{1, 4, false},
	}
	for _, tt := range tests {
		if got := m.InBounds(tt.x, tt.y); got != tt.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
		if got := m.At(tt.x, tt.y) != nil; got != tt.want {
			t.Errorf("At(%d,%d) != nil is %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	var nilMaze *Maze
	if nilMaze.At(1, 1) != nil {
		t.Error("At on a nil maze should return nil")
	}
}

func TestMazeFullness(t *testing.T) {
	m := NewMaze(2, 2, [][]tile.Code{
		{tile.Crossroad, 0},
		{tile.DeadEndEast, tile.DeadEndWest},
	})
	if got := m.Fullness(); got != 75 {
		t.Errorf("Fullness() = %v, want 75", got)
	}
	if got := len(m.NavigableTiles()); got != 3 {
		t.Errorf("NavigableTiles() has %d entries, want 3", got)
	}
}

func TestMazeString(t *testing.T) {
	m := NewMaze(2, 1, [][]tile.Code{{tile.DeadEndEast, tile.DeadEndWest}})
	m.markSpawn(Point{1, 1})
	m.markGoal(Point{2, 1})

	want := strings.Join([]string{
		"######",
		"#S..G#",
		"######",
	}, "\n") + "\n"
	if got := m.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
