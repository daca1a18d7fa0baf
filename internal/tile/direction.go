package tile

// Direction is a compass direction on the maze grid.
// Values run clockwise so a quarter-turn is Direction+1 mod 4.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns the four cardinal directions in clockwise order.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Rotate turns the direction clockwise by r quarter-turns.
func (d Direction) Rotate(r Rotation) Direction {
	return Direction((int(d) + int(r.Normalize())) % 4)
}

// Delta returns the grid offset of one step in this direction.
// Rows grow southwards, columns grow eastwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// DirectionOf infers the cardinal direction of a unit step.
// Zero, diagonal or longer deltas report false.
func DirectionOf(dx, dy int) (Direction, bool) {
	switch {
	case dx == 0 && dy == -1:
		return North, true
	case dx == 0 && dy == 1:
		return South, true
	case dx == 1 && dy == 0:
		return East, true
	case dx == -1 && dy == 0:
		return West, true
	default:
		return North, false
	}
}

// Openings is a set of directions a tile is open toward.
type Openings uint8

// OpeningsOf builds a set from the given directions.
func OpeningsOf(dirs ...Direction) Openings {
	var o Openings
	for _, d := range dirs {
		o = o.With(d)
	}
	return o
}

// With returns the set with d added.
func (o Openings) With(d Direction) Openings {
	return o | 1<<uint(d)
}

// Has reports whether d is in the set.
func (o Openings) Has(d Direction) bool {
	return o&(1<<uint(d)) != 0
}

// Count returns the number of open directions.
func (o Openings) Count() int {
	n := 0
	for _, d := range AllDirections() {
		if o.Has(d) {
			n++
		}
	}
	return n
}
