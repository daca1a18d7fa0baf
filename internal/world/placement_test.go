package world

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/tilemaze/internal/tile"
)

func onEdge(m *Maze, p Point, e Edge) bool {
	switch e {
	case EdgeTop:
		return p.Y == 1
	case EdgeBottom:
		return p.Y == m.Height
	case EdgeLeft:
		return p.X == 1
	default:
		return p.X == m.Width
	}
}

func TestEdgeTiles(t *testing.T) {
	m := NewMaze(3, 3, [][]tile.Code{
		{tile.Crossroad, 0, tile.Crossroad},
		{0, tile.Crossroad, tile.Crossroad},
		{0, 0, tile.Crossroad},
	})

	tests := []struct {
		edge Edge
		want []Point
	}{
		{EdgeTop, []Point{{1, 1}, {3, 1}}},
		{EdgeBottom, []Point{{3, 3}}},
		{EdgeLeft, []Point{{1, 1}}},
		{EdgeRight, []Point{{3, 1}, {3, 2}, {3, 3}}},
	}

	for _, tt := range tests {
		got := m.EdgeTiles(tt.edge)
		if len(got) != len(tt.want) {
			t.Errorf("%v: got %v, want %v", tt.edge, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%v[%d] = %v, want %v", tt.edge, i, got[i], tt.want[i])
			}
		}
	}
}

func TestPlaceGoalOnOppositeEdge(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		m := uniformMaze(6, 4, tile.Crossroad)
		placement, ok := PlaceSpawnAndGoal(m, rand.New(rand.NewSource(seed)))
		if !ok {
			t.Fatalf("seed %d: placement failed", seed)
		}
		if !placement.GoalFromEdge {
			t.Fatalf("seed %d: goal came from the distance fallback", seed)
		}
		if !onEdge(m, placement.Spawn, placement.SpawnEdge) {
			t.Errorf("seed %d: spawn %v is not on the %v edge", seed, placement.Spawn, placement.SpawnEdge)
		}
		if !onEdge(m, placement.Goal, placement.SpawnEdge.Opposite()) {
			t.Errorf("seed %d: goal %v is not on the %v edge", seed, placement.Goal, placement.SpawnEdge.Opposite())
		}
	}
}

func TestPlaceCornerPriority(t *testing.T) {
	// Only the top-left corner is on an edge, so it belongs to the top edge.
	m := NewMaze(3, 3, [][]tile.Code{
		{tile.Crossroad, 0, 0},
		{0, tile.Crossroad, 0},
		{0, 0, 0},
	})
	placement, ok := PlaceSpawnAndGoal(m, rand.New(rand.NewSource(1)))
	if !ok {
		t.Fatal("Expected placement to succeed")
	}
	if placement.SpawnEdge != EdgeTop {
		t.Errorf("Expected corner tile to count as top, got %v", placement.SpawnEdge)
	}
	if placement.Goal != (Point{2, 2}) {
		t.Errorf("Expected goal at the tile closest to the bottom, got %v", placement.Goal)
	}
}

func TestPlaceGoalFallsBackToClosestTile(t *testing.T) {
	build := func() *Maze {
		return NewMaze(3, 5, [][]tile.Code{
			{tile.EastWestCorridor, tile.JunctionNoNorth, tile.EastWestCorridor},
			{0, tile.NorthSouthCorridor, 0},
			{0, tile.DeadEndNorth, 0},
			{0, 0, 0},
			{0, 0, 0},
		})
	}

	for seed := int64(0); seed < 50; seed++ {
		placement, ok := PlaceSpawnAndGoal(build(), rand.New(rand.NewSource(seed)))
		if !ok {
			t.Fatalf("seed %d: placement failed", seed)
		}
		if placement.SpawnEdge != EdgeTop {
			t.Errorf("seed %d: spawn edge %v, want top", seed, placement.SpawnEdge)
		}
		if placement.GoalFromEdge {
			t.Errorf("seed %d: bottom edge is empty, goal cannot come from it", seed)
		}
		if placement.Goal != (Point{2, 3}) {
			t.Errorf("seed %d: goal %v, want (2,3)", seed, placement.Goal)
		}
	}
}

func TestPlaceMarksTiles(t *testing.T) {
	m := uniformMaze(4, 4, tile.Crossroad)
	placement, ok := PlaceSpawnAndGoal(m, rand.New(rand.NewSource(5)))
	if !ok {
		t.Fatal("Expected placement to succeed")
	}

	spawns, goals := 0, 0
	for _, row := range m.Tiles {
		for _, tl := range row {
			if tl.IsSpawn {
				spawns++
			}
			if tl.IsFinish {
				goals++
			}
		}
	}
	if spawns != 1 || goals != 1 {
		t.Errorf("Expected exactly one spawn and one goal, got %d and %d", spawns, goals)
	}

	if p, ok := m.Spawn(); !ok || p != placement.Spawn || !m.At(p.X, p.Y).IsSpawn {
		t.Errorf("Spawn() = %v, %v; placement spawn %v", p, ok, placement.Spawn)
	}
	if p, ok := m.Goal(); !ok || p != placement.Goal || !m.At(p.X, p.Y).IsFinish {
		t.Errorf("Goal() = %v, %v; placement goal %v", p, ok, placement.Goal)
	}
}

func TestPlaceDegenerate(t *testing.T) {
	m := NewMaze(3, 3, [][]tile.Code{
		{0, 0, 0},
		{0, tile.Crossroad, 0},
		{0, 0, 0},
	})
	if _, ok := PlaceSpawnAndGoal(m, rand.New(rand.NewSource(1))); ok {
		t.Error("Expected placement to report no edge tiles")
	}
	if _, ok := m.Spawn(); ok {
		t.Error("Spawn should be unset")
	}
	if _, ok := m.Goal(); ok {
		t.Error("Goal should be unset")
	}
}

func TestPlaceReproducible(t *testing.T) {
	m1 := uniformMaze(8, 8, tile.Crossroad)
	m2 := uniformMaze(8, 8, tile.Crossroad)
	p1, _ := PlaceSpawnAndGoal(m1, rand.New(rand.NewSource(77)))
	p2, _ := PlaceSpawnAndGoal(m2, rand.New(rand.NewSource(77)))
	if p1 != p2 {
		t.Errorf("Same seed gave different placements: %+v != %+v", p1, p2)
	}
}

func TestEdgeOpposite(t *testing.T) {
	for _, e := range []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight} {
		if e.Opposite().Opposite() != e {
			t.Errorf("%v: opposite is not an involution", e)
		}
		if e.Opposite() == e {
			t.Errorf("%v is its own opposite", e)
		}
	}
}
