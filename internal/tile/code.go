// Package tile decodes generator tile codes into navigable shapes and answers
// connectivity questions about them, both at whole-tile and sub-cell level.
package tile

// Code is the raw tile identifier produced by the maze generator.
// Every navigable code is a single bit; 0 is empty.
type Code uint16

const (
	CodeEmpty Code = 0

	DeadEndNorth Code = 1 << 0
	DeadEndEast  Code = 1 << 1
	DeadEndSouth Code = 1 << 2
	DeadEndWest  Code = 1 << 3

	NorthSouthCorridor Code = 1 << 4
	EastWestCorridor   Code = 1 << 5

	CornerNorthEast Code = 1 << 6
	CornerEastSouth Code = 1 << 7
	CornerSouthWest Code = 1 << 8
	CornerWestNorth Code = 1 << 9

	JunctionNoSouth Code = 1 << 10 // north, east, west
	JunctionNoWest  Code = 1 << 11 // north, east, south
	JunctionNoNorth Code = 1 << 12 // east, south, west
	JunctionNoEast  Code = 1 << 13 // north, south, west

	Crossroad Code = 1 << 14
	// CrossroadSpecial is an alias the generator emits for marked crossroads.
	// It behaves exactly like Crossroad.
	CrossroadSpecial Code = 1 << 15
)

// Shape is the navigable outline of a tile.
type Shape int

const (
	ShapeEmpty Shape = iota
	ShapeDeadEnd
	ShapeStraight
	ShapeCorner
	ShapeTJunction
	ShapeCrossroad
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeEmpty:
		return "empty"
	case ShapeDeadEnd:
		return "dead_end"
	case ShapeStraight:
		return "straight"
	case ShapeCorner:
		return "corner"
	case ShapeTJunction:
		return "t_junction"
	case ShapeCrossroad:
		return "crossroad"
	default:
		return "unknown"
	}
}

// Rotation counts clockwise quarter-turns from a shape's north-opening orientation.
type Rotation int

// Normalize folds r into [0,3].
func (r Rotation) Normalize() Rotation {
	r %= 4
	if r < 0 {
		r += 4
	}
	return r
}

type shapeRotation struct {
	shape    Shape
	rotation Rotation
	name     string
}

var catalog = map[Code]shapeRotation{
	DeadEndNorth:       {ShapeDeadEnd, 0, "dead_end_north"},
	DeadEndEast:        {ShapeDeadEnd, 1, "dead_end_east"},
	DeadEndSouth:       {ShapeDeadEnd, 2, "dead_end_south"},
	DeadEndWest:        {ShapeDeadEnd, 3, "dead_end_west"},
	NorthSouthCorridor: {ShapeStraight, 0, "north_south_corridor"},
	EastWestCorridor:   {ShapeStraight, 1, "east_west_corridor"},
	CornerNorthEast:    {ShapeCorner, 0, "corner_north_east"},
	CornerEastSouth:    {ShapeCorner, 1, "corner_east_south"},
	CornerSouthWest:    {ShapeCorner, 2, "corner_south_west"},
	CornerWestNorth:    {ShapeCorner, 3, "corner_west_north"},
	JunctionNoSouth:    {ShapeTJunction, 0, "junction_no_south"},
	JunctionNoWest:     {ShapeTJunction, 1, "junction_no_west"},
	JunctionNoNorth:    {ShapeTJunction, 2, "junction_no_north"},
	JunctionNoEast:     {ShapeTJunction, 3, "junction_no_east"},
	Crossroad:          {ShapeCrossroad, 0, "crossroad"},
	CrossroadSpecial:   {ShapeCrossroad, 0, "crossroad_special"},
}

// FromUint converts an arbitrary unsigned value to a Code.
// Values that do not fit in 16 bits are treated as empty rather than truncated.
func FromUint(raw uint) Code {
	if raw > 0xFFFF {
		return CodeEmpty
	}
	return Code(raw)
}

// Decode maps a code to its shape and rotation.
// Unrecognized codes, including 0, decode to (ShapeEmpty, 0).
func (c Code) Decode() (Shape, Rotation) {
	sr, ok := catalog[c]
	if !ok {
		return ShapeEmpty, 0
	}
	return sr.shape, sr.rotation
}

// Decode is the package-level form of Code.Decode, total over every uint.
func Decode(raw uint) (Shape, Rotation) {
	return FromUint(raw).Decode()
}

// IsNavigable returns true if the code decodes to a non-empty shape.
func (c Code) IsNavigable() bool {
	_, ok := catalog[c]
	return ok
}

// IsNavigable is the package-level form of Code.IsNavigable.
func IsNavigable(raw uint) bool {
	return FromUint(raw).IsNavigable()
}

// Canonical rewrites the crossroad alias to the primary crossroad code.
func (c Code) Canonical() Code {
	if c == CrossroadSpecial {
		return Crossroad
	}
	return c
}

// String returns a descriptive name for the code.
func (c Code) String() string {
	if sr, ok := catalog[c]; ok {
		return sr.name
	}
	return "empty"
}

// Codes returns every navigable code, alias included, in bit order.
func Codes() []Code {
	codes := make([]Code, 0, 16)
	for bit := 0; bit < 16; bit++ {
		codes = append(codes, Code(1)<<bit)
	}
	return codes
}

var encodeTable = buildEncodeTable()

func buildEncodeTable() map[Openings]Code {
	table := make(map[Openings]Code, 15)
	for _, c := range Codes() {
		if c == CrossroadSpecial {
			continue
		}
		table[ExitsOf(c)] = c
	}
	return table
}

// Encode returns the primary code whose openings are exactly o.
// An empty set, or one no tile can express, encodes to CodeEmpty.
func Encode(o Openings) Code {
	return encodeTable[o]
}
