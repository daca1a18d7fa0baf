package world

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// Edge is one of the four borders of the maze.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the facing edge.
func (e Edge) Opposite() Edge {
	switch e {
	case EdgeTop:
		return EdgeBottom
	case EdgeBottom:
		return EdgeTop
	case EdgeLeft:
		return EdgeRight
	default:
		return EdgeLeft
	}
}

// distance returns how far p is from edge e, 0 when on it.
func (m *Maze) distance(p Point, e Edge) int {
	switch e {
	case EdgeTop:
		return p.Y - 1
	case EdgeBottom:
		return m.Height - p.Y
	case EdgeLeft:
		return p.X - 1
	default:
		return m.Width - p.X
	}
}

// EdgeTiles returns the navigable tiles on edge e in scan order.
func (m *Maze) EdgeTiles(e Edge) []Point {
	var out []Point
	add := func(x, y int) {
		if m.IsPassable(x, y) {
			out = append(out, Point{X: x, Y: y})
		}
	}
	switch e {
	case EdgeTop, EdgeBottom:
		y := 1
		if e == EdgeBottom {
			y = m.Height
		}
		for x := 1; x <= m.Width; x++ {
			add(x, y)
		}
	case EdgeLeft, EdgeRight:
		x := 1
		if e == EdgeRight {
			x = m.Width
		}
		for y := 1; y <= m.Height; y++ {
			add(x, y)
		}
	}
	return out
}

// Placement records the spawn and goal chosen for a maze.
type Placement struct {
	Spawn     Point
	Goal      Point
	SpawnEdge Edge
	// GoalFromEdge is false when the opposite edge had no navigable tile and
	// the goal was the closest navigable tile to it instead.
	GoalFromEdge bool
}

// PlaceSpawnAndGoal picks a spawn on a maze edge and a goal on the opposite
// edge, marking both tiles. It reports false, leaving the maze untouched,
// when no edge has a navigable tile.
func PlaceSpawnAndGoal(m *Maze, rng *rand.Rand) (Placement, bool) {
	edges := []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}
	lists := make(map[Edge][]Point, len(edges))

	// Corner tiles sit on two edges; the first edge in priority order owns them.
	seen := mapset.New[Point]()
	var union []Point
	owner := make(map[Point]Edge)
	for _, e := range edges {
		lists[e] = m.EdgeTiles(e)
		for _, p := range lists[e] {
			if seen.Has(p) {
				continue
			}
			seen.Put(p)
			owner[p] = e
			union = append(union, p)
		}
	}

	if len(union) == 0 {
		return Placement{}, false
	}

	spawn := union[rng.Intn(len(union))]
	placement := Placement{
		Spawn:     spawn,
		SpawnEdge: owner[spawn],
	}

	target := placement.SpawnEdge.Opposite()
	if candidates := withoutPoint(lists[target], spawn); len(candidates) > 0 {
		placement.Goal = candidates[rng.Intn(len(candidates))]
		placement.GoalFromEdge = true
	} else {
		placement.Goal = m.closestTo(target, spawn)
	}

	m.markSpawn(placement.Spawn)
	m.markGoal(placement.Goal)
	return placement, true
}

// closestTo returns the first navigable tile in scan order with minimum
// distance to edge e. The excluded point is only chosen if nothing else is navigable.
func (m *Maze) closestTo(e Edge, exclude Point) Point {
	best := exclude
	bestDist := -1
	for _, t := range m.NavigableTiles() {
		p := t.Position()
		if p == exclude {
			continue
		}
		if d := m.distance(p, e); bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// withoutPoint drops p from points unless it is the only entry.
func withoutPoint(points []Point, p Point) []Point {
	out := make([]Point, 0, len(points))
	for _, q := range points {
		if q != p {
			out = append(out, q)
		}
	}
	if len(out) == 0 {
		return points
	}
	return out
}

func (m *Maze) markSpawn(p Point) {
	if t := m.At(p.X, p.Y); t != nil {
		t.IsSpawn = true
		m.spawn = &p
	}
}

func (m *Maze) markGoal(p Point) {
	if t := m.At(p.X, p.Y); t != nil {
		t.IsFinish = true
		m.goal = &p
	}
}
