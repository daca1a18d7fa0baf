package gamedata

import (
	"errors"
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

// EnemyDef defines a wandering enemy kind loaded from JSON.
type EnemyDef struct {
	ID          string  `json:"id"`          // Unique identifier (e.g., "rat")
	Name        string  `json:"name"`        // Display name
	Glyph       string  `json:"glyph"`       // Single character for rendering
	Color       string  `json:"color"`       // Hex color code
	MoveChance  float64 `json:"moveChance"`  // Chance to take a step each tick
	SpawnWeight int     `json:"spawnWeight"` // Relative spawn frequency
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	return GlyphDef{Glyph: e.Glyph}.Rune()
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	return GlyphDef{Color: e.Color}.TCellColor()
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// EnemyRegistry holds loaded enemy kinds and picks among them by weight.
type EnemyRegistry struct {
	enemies     []EnemyDef
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	total := 0
	for _, e := range enemies {
		total += e.SpawnWeight
	}
	return &EnemyRegistry{enemies: enemies, totalWeight: total}
}

// LoadEnemyRegistry builds a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	if len(file.Enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(file.Enemies), nil
}

// SpawnRandom selects an enemy kind using weighted probability.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	if r.totalWeight <= 0 || len(r.enemies) == 0 {
		return nil
	}
	roll := rng.Intn(r.totalWeight)
	cumulative := 0
	for i := range r.enemies {
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return &r.enemies[i]
		}
	}
	return &r.enemies[len(r.enemies)-1]
}

// Count returns the number of enemy kinds in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}
