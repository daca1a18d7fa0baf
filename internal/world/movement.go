package world

import "github.com/samdwyer/tilemaze/internal/tile"

// SubToTile splits a 1-based maze-wide sub-cell coordinate into a 1-based
// tile coordinate and a 0-based local index within that tile.
func SubToTile(sub int) (tileCoord, local int) {
	return floorDiv(sub-1, 3) + 1, floorMod(sub-1, 3)
}

// TileCenter returns the maze-wide sub-cell coordinates of a tile's centre cell.
func TileCenter(p Point) (subX, subY int) {
	return (p.X-1)*3 + 2, (p.Y-1)*3 + 2
}

// CanMoveTo reports whether an agent at sub-cell (fromSubX, fromSubY) may
// step to (toSubX, toSubY). Only single cardinal steps are accepted.
func CanMoveTo(m *Maze, fromSubX, fromSubY, toSubX, toSubY int) bool {
	if m == nil {
		return false
	}
	dir, ok := tile.DirectionOf(toSubX-fromSubX, toSubY-fromSubY)
	if !ok {
		return false
	}

	fromTX, fromLX := SubToTile(fromSubX)
	fromTY, fromLY := SubToTile(fromSubY)
	toTX, toLX := SubToTile(toSubX)
	toTY, toLY := SubToTile(toSubY)

	target := m.At(toTX, toTY)
	if target == nil {
		return false
	}
	source := m.At(fromTX, fromTY)
	if source == nil || !source.Walkable(fromLX, fromLY) {
		return false
	}

	if source == target {
		return target.Walkable(toLX, toLY)
	}

	if !tile.OnEdge(fromLX, fromLY, dir) {
		return false
	}
	return target.Walkable(toLX, toLY)
}

// CanMoveInDirection reports whether a whole-tile agent may leave t toward d.
func CanMoveInDirection(t *Tile, d tile.Direction) bool {
	if t == nil || !t.IsNavigable() {
		return false
	}
	return tile.CanExit(t.Code, d)
}

// CanStep reports whether a whole-tile agent at (x, y) may move one tile toward d.
// The destination must be in bounds and open on the side facing back.
func CanStep(m *Maze, x, y int, d tile.Direction) bool {
	if m == nil {
		return false
	}
	if !CanMoveInDirection(m.At(x, y), d) {
		return false
	}
	dx, dy := d.Delta()
	dest := m.At(x+dx, y+dy)
	if dest == nil || !dest.IsNavigable() {
		return false
	}
	return tile.CanEnter(dest.Code, d.Opposite())
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
