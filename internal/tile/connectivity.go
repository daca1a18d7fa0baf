package tile

import "math/bits"

// exitMasks lists, per direction, every code whose tile is open on that side.
// Codes are single bits, so membership is a mask test.
var exitMasks = [4]Code{
	North: DeadEndNorth | NorthSouthCorridor | CornerNorthEast | CornerWestNorth |
		JunctionNoSouth | JunctionNoWest | JunctionNoEast | Crossroad | CrossroadSpecial,
	East: DeadEndEast | EastWestCorridor | CornerNorthEast | CornerEastSouth |
		JunctionNoSouth | JunctionNoWest | JunctionNoNorth | Crossroad | CrossroadSpecial,
	South: DeadEndSouth | NorthSouthCorridor | CornerEastSouth | CornerSouthWest |
		JunctionNoWest | JunctionNoNorth | JunctionNoEast | Crossroad | CrossroadSpecial,
	West: DeadEndWest | EastWestCorridor | CornerSouthWest | CornerWestNorth |
		JunctionNoSouth | JunctionNoNorth | JunctionNoEast | Crossroad | CrossroadSpecial,
}

// CanExit returns true if a tile with code c is open toward d.
func CanExit(c Code, d Direction) bool {
	if d < North || d > West {
		return false
	}
	if bits.OnesCount16(uint16(c)) != 1 {
		return false
	}
	return c&exitMasks[d] != 0
}

// CanEnter returns true if a tile with code c can be entered from side d.
// Entering from a side needs the same opening as leaving toward it.
func CanEnter(c Code, from Direction) bool {
	return CanExit(c, from)
}

// ExitsOf returns the set of directions code c is open toward.
func ExitsOf(c Code) Openings {
	var o Openings
	for _, d := range AllDirections() {
		if CanExit(c, d) {
			o = o.With(d)
		}
	}
	return o
}
