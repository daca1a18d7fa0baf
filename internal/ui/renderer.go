package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/tilemaze/internal/entity"
	"github.com/samdwyer/tilemaze/internal/gamedata"
	"github.com/samdwyer/tilemaze/internal/world"
)

// Renderer draws a maze one terminal cell per sub-cell.
type Renderer struct {
	screen  *Screen
	tileset *gamedata.Tileset
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, tileset *gamedata.Tileset) *Renderer {
	return &Renderer{screen: screen, tileset: tileset}
}

// Render draws the maze, enemies, player and a status line.
// If the terminal cannot hold the maze and status line, only a notice is drawn.
func (r *Renderer) Render(m *world.Maze, player *entity.Player, enemies []*entity.Enemy, status string) {
	r.screen.Clear()

	needW, needH := m.Width*3, m.Height*3+2
	if !r.screen.Fits(needW, needH) {
		r.RenderMessage(fmt.Sprintf("Terminal too small: need %dx%d", needW, needH), 0)
		r.screen.Show()
		return
	}

	for row := range m.Tiles {
		for col := range m.Tiles[row] {
			r.drawTile(&m.Tiles[row][col])
		}
	}

	for _, e := range enemies {
		x, y := world.TileCenter(e.Position())
		r.screen.SetContent(x-1, y-1, e.Symbol, tcell.StyleDefault.Foreground(e.Color()))
	}

	if player != nil {
		style := tcell.StyleDefault.Foreground(r.tileset.Player.TCellColor()).Bold(true)
		x, y := player.Position()
		r.screen.SetContent(x-1, y-1, player.Symbol, style)
	}

	r.RenderMessage(status, m.Height*3+1)
	r.screen.Show()
}

// drawTile draws the 3x3 block for t. Screen cells are 0-based, sub-cells 1-based.
func (r *Renderer) drawTile(t *world.Tile) {
	originX, originY := (t.X-1)*3, (t.Y-1)*3
	wall := tcell.StyleDefault.Background(r.tileset.Wall.TCellColor())
	floor := tcell.StyleDefault.Foreground(r.tileset.ShapeColor(t.Shape))

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if t.Walkable(x, y) {
				r.screen.SetContent(originX+x, originY+y, r.tileset.Floor.Rune(), floor)
			} else {
				r.screen.SetContent(originX+x, originY+y, r.tileset.Wall.Rune(), wall)
			}
		}
	}

	var marker *gamedata.GlyphDef
	switch {
	case t.IsSpawn:
		marker = &r.tileset.Spawn
	case t.IsFinish:
		marker = &r.tileset.Goal
	}
	if marker != nil {
		style := tcell.StyleDefault.Foreground(marker.TCellColor()).Bold(true)
		r.screen.SetContent(originX+1, originY+1, marker.Rune(), style)
	}
}

// RenderMessage writes msg on row y, advancing by each rune's display width.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	width, _ := r.screen.Size()
	x := 0
	for _, ch := range msg {
		w := runewidth.RuneWidth(ch)
		if width > 0 && x+w > width {
			break
		}
		r.screen.SetContent(x, y, ch, style)
		x += w
	}
}
