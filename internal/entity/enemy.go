package entity

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tilemaze/internal/gamedata"
	"github.com/samdwyer/tilemaze/internal/tile"
	"github.com/samdwyer/tilemaze/internal/world"
)

// Enemy occupies whole tiles and walks corridors.
type Enemy struct {
	Def    *gamedata.EnemyDef
	Symbol rune
	X, Y   int // 1-based tile position
	Facing tile.Direction
}

// NewEnemy creates an enemy of the given kind at tile p.
func NewEnemy(def *gamedata.EnemyDef, p world.Point) *Enemy {
	return &Enemy{
		Def:    def,
		Symbol: def.GlyphRune(),
		X:      p.X,
		Y:      p.Y,
	}
}

// Position returns the enemy's current tile.
func (e *Enemy) Position() world.Point {
	return world.Point{X: e.X, Y: e.Y}
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Def == nil {
		return tcell.ColorPurple
	}
	return e.Def.TCellColor()
}

// Wander takes at most one corridor step. It keeps to open directions other
// than straight back, and turns around only at a dead end. Returns true if
// the enemy moved.
func (e *Enemy) Wander(m *world.Maze, rng *rand.Rand) bool {
	if e.Def != nil && rng.Float64() >= e.Def.MoveChance {
		return false
	}

	var options []tile.Direction
	canReverse := false
	for _, d := range tile.AllDirections() {
		if !world.CanStep(m, e.X, e.Y, d) {
			continue
		}
		if d == e.Facing.Opposite() {
			canReverse = true
			continue
		}
		options = append(options, d)
	}

	if len(options) == 0 {
		if !canReverse {
			return false
		}
		options = append(options, e.Facing.Opposite())
	}

	d := options[rng.Intn(len(options))]
	dx, dy := d.Delta()
	e.X += dx
	e.Y += dy
	e.Facing = d
	return true
}
