package world

import (
	"strings"

	"github.com/google/uuid"

	"github.com/samdwyer/tilemaze/internal/tile"
)

const (
	// Default maze dimensions in tiles
	DefaultWidth  = 10
	DefaultHeight = 10
)

// Point is a 1-based tile coordinate.
type Point struct {
	X, Y int
}

// Maze is a decoded, decorated tile grid. It is built once and replaced
// wholesale on regeneration.
type Maze struct {
	ID       uuid.UUID
	Width    int
	Height   int
	Seed     int64 // generator seed of the grid that was kept
	Fallback bool  // true if no attempt met the fullness threshold
	Tiles    [][]Tile

	spawn *Point
	goal  *Point
}

// NewMaze decodes a [row][col] grid of codes. Rows or columns missing from
// codes become empty tiles.
func NewMaze(width, height int, codes [][]tile.Code) *Maze {
	tiles := make([][]Tile, height)
	for row := range tiles {
		tiles[row] = make([]Tile, width)
		for col := range tiles[row] {
			code := tile.CodeEmpty
			if row < len(codes) && col < len(codes[row]) {
				code = codes[row][col]
			}
			tiles[row][col] = newTile(col+1, row+1, code)
		}
	}

	return &Maze{
		Width:  width,
		Height: height,
		Tiles:  tiles,
	}
}

// InBounds returns true if (x, y) is a tile coordinate inside the maze.
func (m *Maze) InBounds(x, y int) bool {
	return x >= 1 && x <= m.Width && y >= 1 && y <= m.Height
}

// At returns the tile at (x, y), or nil if out of bounds.
func (m *Maze) At(x, y int) *Tile {
	if m == nil || !m.InBounds(x, y) {
		return nil
	}
	return &m.Tiles[y-1][x-1]
}

// IsPassable returns true if the tile at (x, y) exists and is navigable.
func (m *Maze) IsPassable(x, y int) bool {
	t := m.At(x, y)
	return t != nil && t.IsNavigable()
}

// Spawn returns the spawn tile position, if one was placed.
func (m *Maze) Spawn() (Point, bool) {
	if m.spawn == nil {
		return Point{}, false
	}
	return *m.spawn, true
}

// Goal returns the goal tile position, if one was placed.
func (m *Maze) Goal() (Point, bool) {
	if m.goal == nil {
		return Point{}, false
	}
	return *m.goal, true
}

// NavigableTiles returns every navigable tile in row-major scan order.
func (m *Maze) NavigableTiles() []*Tile {
	var out []*Tile
	for row := range m.Tiles {
		for col := range m.Tiles[row] {
			if m.Tiles[row][col].IsNavigable() {
				out = append(out, &m.Tiles[row][col])
			}
		}
	}
	return out
}

// Fullness returns the percentage of tiles that are navigable.
func (m *Maze) Fullness() float64 {
	return percent(len(m.NavigableTiles()), m.Width*m.Height)
}

// String renders the maze at sub-cell resolution: '#' closed, '.' open,
// 'S' and 'G' at the centre of the spawn and goal tiles.
func (m *Maze) String() string {
	var sb strings.Builder
	for row := range m.Tiles {
		for sub := 0; sub < 3; sub++ {
			for col := range m.Tiles[row] {
				t := &m.Tiles[row][col]
				for x := 0; x < 3; x++ {
					sb.WriteByte(subCellGlyph(t, x, sub))
				}
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func subCellGlyph(t *Tile, x, y int) byte {
	if x == 1 && y == 1 {
		switch {
		case t.IsSpawn:
			return 'S'
		case t.IsFinish:
			return 'G'
		}
	}
	if t.Walkable(x, y) {
		return '.'
	}
	return '#'
}
