package dungeon

// Point is a grid coordinate. X is the column, Y the row.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ManhattanDistance returns |x1-x2| + |y1-y2|.
func ManhattanDistance(a, b Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Grid is a rectangular tile field indexed [row][col]. It is mutated freely
// during generation; callers receive snapshots (Clone) in recorded steps so
// history stays stable while the live grid keeps changing.
type Grid [][]Tile

// NewGrid returns a height x width grid filled with wall.
func NewGrid(width, height int) Grid {
	g := make(Grid, height)
	for y := range g {
		g[y] = make([]Tile, width)
	}
	return g
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// InBounds reports whether (x, y) lies inside the grid.
func (g Grid) InBounds(x, y int) bool {
	return y >= 0 && y < len(g) && x >= 0 && x < len(g[y])
}

// Interior reports whether (x, y) lies strictly inside the border.
func (g Grid) Interior(x, y int) bool {
	return y >= 1 && y < g.Height()-1 && x >= 1 && x < g.Width()-1
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = make([]Tile, len(row))
		copy(out[y], row)
	}
	return out
}

// Count returns the number of cells holding the given tile.
func (g Grid) Count(t Tile) int {
	n := 0
	for _, row := range g {
		for _, cell := range row {
			if cell == t {
				n++
			}
		}
	}
	return n
}

// WalkableCells returns every non-wall coordinate in row-major order.
func (g Grid) WalkableCells() []Point {
	var cells []Point
	for y, row := range g {
		for x, cell := range row {
			if cell.Walkable() {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}
