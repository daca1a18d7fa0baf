// Package game provides the interactive maze loop.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode where the player walks the maze.
	StateExplore State = iota
	// StateLevelComplete is entered when the player reaches the goal tile.
	StateLevelComplete
	// StateNoSpawn means the maze has no navigable edge tile to start from.
	StateNoSpawn
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateLevelComplete:
		return "level_complete"
	case StateNoSpawn:
		return "no_spawn"
	default:
		return "unknown"
	}
}
