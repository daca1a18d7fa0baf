// Package world builds playable mazes from generator output and answers
// movement queries against them.
package world

import "github.com/samdwyer/tilemaze/internal/tile"

// Tile is one decoded cell of a maze.
type Tile struct {
	X, Y     int // 1-based grid position, row 1 is the north edge
	Code     tile.Code
	Shape    tile.Shape
	Rotation tile.Rotation
	IsSpawn  bool
	IsFinish bool

	grid tile.SubGrid
}

// newTile decodes code into a tile at (x, y).
func newTile(x, y int, code tile.Code) Tile {
	shape, rot := code.Decode()
	return Tile{
		X:        x,
		Y:        y,
		Code:     code,
		Shape:    shape,
		Rotation: rot,
		grid:     tile.CollisionGrid(shape, rot),
	}
}

// Grid returns a copy of the tile's sub-cell walkability grid.
func (t *Tile) Grid() tile.SubGrid {
	return t.grid
}

// IsNavigable returns true if the tile has a non-empty shape.
func (t *Tile) IsNavigable() bool {
	return t.Shape != tile.ShapeEmpty
}

// Walkable reports whether local sub-cell (subX, subY) of this tile is open.
func (t *Tile) Walkable(subX, subY int) bool {
	return t.grid.Walkable(subX, subY)
}

// Position returns the tile's grid coordinates.
func (t *Tile) Position() Point {
	return Point{X: t.X, Y: t.Y}
}
