package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tilemaze/internal/tile"
)

// GlyphDef is a single display character and its colour.
type GlyphDef struct {
	Glyph string `json:"glyph"`
	Color string `json:"color"`
}

// Rune returns the glyph as a rune for rendering.
func (g GlyphDef) Rune() rune {
	for _, r := range g.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the colour as a tcell.Color.
func (g GlyphDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(g.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// Tileset describes how maze sub-cells and markers are drawn.
type Tileset struct {
	Wall   GlyphDef          `json:"wall"`
	Floor  GlyphDef          `json:"floor"`
	Shapes map[string]string `json:"shapes"` // shape name -> floor colour
	Spawn  GlyphDef          `json:"spawn"`
	Goal   GlyphDef          `json:"goal"`
	Player GlyphDef          `json:"player"`
}

// ShapeColor returns the floor colour for a shape, falling back to the plain floor colour.
func (ts *Tileset) ShapeColor(s tile.Shape) tcell.Color {
	if hex, ok := ts.Shapes[s.String()]; ok {
		if color, err := ParseHexColor(hex); err == nil {
			return color
		}
	}
	return ts.Floor.TCellColor()
}

// LoadTileset loads the embedded tileset.json file.
func LoadTileset() (*Tileset, error) {
	ts, err := Load[Tileset]("tileset.json")
	if err != nil {
		return nil, err
	}
	for _, name := range []string{"dead_end", "straight", "corner", "t_junction", "crossroad"} {
		if _, ok := ts.Shapes[name]; !ok {
			return nil, fmt.Errorf("tileset.json: missing colour for shape %q", name)
		}
	}
	return &ts, nil
}

// MustLoadTileset loads the tileset, panicking on error.
func MustLoadTileset() *Tileset {
	ts, err := LoadTileset()
	if err != nil {
		panic(err)
	}
	return ts
}
