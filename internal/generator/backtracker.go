// Package generator produces raw tile-code grids for the world builder.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilemaze/internal/telemetry"
	"github.com/samdwyer/tilemaze/internal/tile"
)

type cell struct {
	x, y int
}

// Backtracker carves a spanning tree with a recursive backtracker and stops
// once the requested share of cells has been carved.
type Backtracker struct {
	// Braiding is the chance (0.0 to 1.0) that a dead end is joined to a
	// carved neighbour, adding loops.
	Braiding float64
}

// New creates a backtracker with light braiding.
func New() *Backtracker {
	return &Backtracker{Braiding: 0.2}
}

// Generate returns a [layer][row][col] grid of tile codes. Layer i is carved
// from seed+i.
func (b *Backtracker) Generate(ctx context.Context, width, depth, layers int, seed int64, targetFullness int) ([][][]uint16, error) {
	if width < 1 || depth < 1 || layers < 1 {
		return nil, fmt.Errorf("invalid size %dx%dx%d", width, depth, layers)
	}
	if targetFullness < 0 || targetFullness > 100 {
		return nil, fmt.Errorf("target fullness %d outside [0,100]", targetFullness)
	}

	tracer := telemetry.Tracer("generator")
	ctx, span := tracer.Start(ctx, "generator.generate")
	defer span.End()

	startTime := time.Now()

	out := make([][][]uint16, layers)
	carvedTotal := 0
	for layer := range out {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rng := rand.New(rand.NewSource(seed + int64(layer)))
		open, carved := b.carve(width, depth, targetFullness, rng)
		carvedTotal += carved
		out[layer] = encode(open)
	}

	span.SetAttributes(
		attribute.Int("generator.width", width),
		attribute.Int("generator.depth", depth),
		attribute.Int("generator.layers", layers),
		attribute.Int64("generator.seed", seed),
		attribute.Int("generator.target_fullness", targetFullness),
		attribute.Int("generator.carved", carvedTotal),
		attribute.Int64("generator.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return out, nil
}

// carve fills an openings grid and returns it with the number of carved cells.
func (b *Backtracker) carve(width, depth, targetFullness int, rng *rand.Rand) ([][]tile.Openings, int) {
	open := make([][]tile.Openings, depth)
	for y := range open {
		open[y] = make([]tile.Openings, width)
	}

	target := (width*depth*targetFullness + 99) / 100
	if target == 0 {
		return open, 0
	}

	inBounds := func(c cell) bool {
		return c.x >= 0 && c.x < width && c.y >= 0 && c.y < depth
	}

	start := cell{rng.Intn(width), rng.Intn(depth)}
	carved := mapset.New[cell]()
	carved.Put(start)
	stack := []cell{start}

	for len(stack) > 0 && carved.Size() < target {
		curr := stack[len(stack)-1]
		candidates := make([]tile.Direction, 0, 4)

		for _, d := range tile.AllDirections() {
			dx, dy := d.Delta()
			next := cell{curr.x + dx, curr.y + dy}
			if inBounds(next) && !carved.Has(next) {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		dx, dy := d.Delta()
		next := cell{curr.x + dx, curr.y + dy}
		open[curr.y][curr.x] = open[curr.y][curr.x].With(d)
		open[next.y][next.x] = open[next.y][next.x].With(d.Opposite())
		carved.Put(next)
		stack = append(stack, next)
	}

	if b.Braiding > 0 {
		braid(open, carved, b.Braiding, rng)
	}

	return open, carved.Size()
}

// braid joins dead ends to another carved neighbour with the given probability.
func braid(open [][]tile.Openings, carved mapset.Set[cell], probability float64, rng *rand.Rand) {
	depth, width := len(open), len(open[0])
	for y := 0; y < depth; y++ {
		for x := 0; x < width; x++ {
			if open[y][x].Count() != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]tile.Direction, 0, 3)
			for _, d := range tile.AllDirections() {
				dx, dy := d.Delta()
				n := cell{x + dx, y + dy}
				if n.x < 0 || n.x >= width || n.y < 0 || n.y >= depth {
					continue
				}
				if !open[y][x].Has(d) && carved.Has(n) {
					candidates = append(candidates, d)
				}
			}

			if len(candidates) > 0 {
				d := candidates[rng.Intn(len(candidates))]
				dx, dy := d.Delta()
				open[y][x] = open[y][x].With(d)
				open[y+dy][x+dx] = open[y+dy][x+dx].With(d.Opposite())
			}
		}
	}
}

// encode converts an openings grid to raw tile codes.
func encode(open [][]tile.Openings) [][]uint16 {
	out := make([][]uint16, len(open))
	for y := range open {
		out[y] = make([]uint16, len(open[y]))
		for x, o := range open[y] {
			out[y][x] = uint16(tile.Encode(o))
		}
	}
	return out
}
