// Package entity provides the agents that move through a maze.
package entity

import "github.com/samdwyer/tilemaze/internal/world"

// Player moves at sub-cell precision: each tile is a 3x3 block of cells.
type Player struct {
	SubX, SubY int  // 1-based maze-wide sub-cell position
	Symbol     rune // Display symbol
}

// NewPlayer creates a player standing on the centre cell of tile p.
func NewPlayer(p world.Point) *Player {
	x, y := world.TileCenter(p)
	return &Player{
		SubX:   x,
		SubY:   y,
		Symbol: '@',
	}
}

// TryMove moves the player one sub-cell by (dx, dy) if the maze allows it.
func (p *Player) TryMove(m *world.Maze, dx, dy int) bool {
	if !world.CanMoveTo(m, p.SubX, p.SubY, p.SubX+dx, p.SubY+dy) {
		return false
	}
	p.SubX += dx
	p.SubY += dy
	return true
}

// Tile returns the tile the player is standing in.
func (p *Player) Tile() world.Point {
	x, _ := world.SubToTile(p.SubX)
	y, _ := world.SubToTile(p.SubY)
	return world.Point{X: x, Y: y}
}

// Position returns the current sub-cell coordinates.
func (p *Player) Position() (int, int) {
	return p.SubX, p.SubY
}
