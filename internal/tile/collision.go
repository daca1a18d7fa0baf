package tile

// SubGrid is a tile's 3x3 walkability grid, indexed [row][col] with row 0 at
// the north edge and col 0 at the west edge.
type SubGrid [3][3]bool

// canonicalGrids holds each shape in its 0° (north-opening) orientation.
var canonicalGrids = map[Shape]SubGrid{
	ShapeEmpty: {},
	ShapeDeadEnd: {
		{false, true, false},
		{false, true, false},
		{false, false, false},
	},
	ShapeStraight: {
		{false, true, false},
		{false, true, false},
		{false, true, false},
	},
	ShapeCorner: {
		{false, true, false},
		{false, true, true},
		{false, false, false},
	},
	ShapeTJunction: {
		{false, true, false},
		{true, true, true},
		{false, false, false},
	},
	ShapeCrossroad: {
		{false, true, false},
		{true, true, true},
		{false, true, false},
	},
}

// CanonicalGrid returns the unrotated grid for a shape.
func CanonicalGrid(s Shape) SubGrid {
	return canonicalGrids[s]
}

// Rotate returns the grid turned 90° clockwise.
func (g SubGrid) Rotate() SubGrid {
	var out SubGrid
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[c][2-r] = g[r][c]
		}
	}
	return out
}

// CollisionGrid returns the canonical grid for shape turned rot quarter-turns clockwise.
func CollisionGrid(shape Shape, rot Rotation) SubGrid {
	g := canonicalGrids[shape]
	for i := Rotation(0); i < rot.Normalize(); i++ {
		g = g.Rotate()
	}
	return g
}

// Walkable reports whether local cell (subX, subY) is open.
// Coordinates outside [0,2] are never walkable.
func (g SubGrid) Walkable(subX, subY int) bool {
	if subX < 0 || subX > 2 || subY < 0 || subY > 2 {
		return false
	}
	return g[subY][subX]
}

// OpenToward reports whether the boundary cell in direction d is open.
func (g SubGrid) OpenToward(d Direction) bool {
	switch d {
	case North:
		return g[0][1]
	case South:
		return g[2][1]
	case East:
		return g[1][2]
	case West:
		return g[1][0]
	default:
		return false
	}
}

// OnEdge reports whether local cell (subX, subY) lies on the grid boundary facing d.
func OnEdge(subX, subY int, d Direction) bool {
	switch d {
	case North:
		return subY == 0
	case South:
		return subY == 2
	case East:
		return subX == 2
	case West:
		return subX == 0
	default:
		return false
	}
}
