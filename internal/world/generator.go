package world

import (
	"context"
	"errors"
)

var (
	// ErrGeneratorFailed wraps any error returned by a Generator.
	ErrGeneratorFailed = errors.New("maze generator failed")
	// ErrEmptyGrid is returned when a Generator reports success but yields no data.
	ErrEmptyGrid = errors.New("maze generator returned an empty grid")
	// ErrGridShape is returned when generator output does not match the requested size.
	ErrGridShape = errors.New("maze generator returned a grid of the wrong shape")
	// ErrInvalidDimensions is returned for non-positive maze sizes.
	ErrInvalidDimensions = errors.New("maze dimensions must be positive")
)

// Generator produces raw maze content. The result is indexed
// [layer][row][col]; rows run north to south.
type Generator interface {
	Generate(ctx context.Context, width, depth, layers int, seed int64, targetFullness int) ([][][]uint16, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(ctx context.Context, width, depth, layers int, seed int64, targetFullness int) ([][][]uint16, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, width, depth, layers int, seed int64, targetFullness int) ([][][]uint16, error) {
	return f(ctx, width, depth, layers, seed, targetFullness)
}
