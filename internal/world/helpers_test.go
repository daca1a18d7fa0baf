package world

import (
	"context"

	"github.com/samdwyer/tilemaze/internal/tile"
)

// uniformMaze builds a maze where every tile has the same code.
func uniformMaze(width, height int, code tile.Code) *Maze {
	codes := make([][]tile.Code, height)
	for y := range codes {
		codes[y] = make([]tile.Code, width)
		for x := range codes[y] {
			codes[y][x] = code
		}
	}
	return NewMaze(width, height, codes)
}

// layerWith returns a single-layer grid whose first valid cells, in scan
// order, hold code and the rest are empty.
func layerWith(width, height, valid int, code uint16) [][][]uint16 {
	layer := make([][]uint16, height)
	n := 0
	for y := range layer {
		layer[y] = make([]uint16, width)
		for x := range layer[y] {
			if n < valid {
				layer[y][x] = code
				n++
			}
		}
	}
	return [][][]uint16{layer}
}

// scriptedGenerator returns output chosen per call and records the seeds it saw.
type scriptedGenerator struct {
	seeds  []int64
	output func(call int, seed int64) ([][][]uint16, error)
}

func (g *scriptedGenerator) Generate(_ context.Context, _, _, _ int, seed int64, _ int) ([][][]uint16, error) {
	g.seeds = append(g.seeds, seed)
	return g.output(len(g.seeds), seed)
}

// layerCodes is layerWith's single layer as crossroad codes.
func layerCodes(width, height, valid int) [][]tile.Code {
	layer := layerWith(width, height, valid, uint16(tile.Crossroad))[0]
	out := make([][]tile.Code, len(layer))
	for y, row := range layer {
		out[y] = make([]tile.Code, len(row))
		for x, v := range row {
			out[y][x] = tile.Code(v)
		}
	}
	return out
}
