package world

// Grid is a static maze layout: a rectangle of wall and floor cells plus named markers
type Grid struct {
	cells [][]*Cell
	rows  int
	cols  int

	markers map[rune]Pos
}

// NewGrid creates a grid of the given dimensions with every cell a wall
func NewGrid(cols, rows int) *Grid {
	g := &Grid{}
	g.Build(cols, rows)
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Bounds returns the cell rectangle covered by the grid
func (g *Grid) Bounds() Bounds {
	return Bounds{Cols: g.cols, Rows: g.rows}
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(p Pos) bool {
	return g.Bounds().Contains(p)
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(p Pos) *Cell {
	if !g.IsValidPosition(p) {
		return nil
	}
	return g.cells[p.Row][p.Col]
}

// IsWalkable reports whether the position is inside the grid and not a wall
func (g *Grid) IsWalkable(p Pos) bool {
	c := g.GetCell(p)
	return c != nil && c.Walkable
}

// MarkWalkable marks the cell at the given position as floor. Returns false if out of bounds.
func (g *Grid) MarkWalkable(p Pos) bool {
	cell := g.GetCell(p)
	if cell == nil {
		return false
	}
	cell.Walkable = true
	cell.Glyph = GlyphFloor
	return true
}

// SetMarker records a named marker (e.g. a spawn point) at p. Returns false if out of bounds.
func (g *Grid) SetMarker(r rune, p Pos) bool {
	if !g.IsValidPosition(p) {
		return false
	}
	g.markers[r] = p
	return true
}

// Marker returns the position of a named marker
func (g *Grid) Marker(r rune) (Pos, bool) {
	p, ok := g.markers[r]
	return p, ok
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(cols, rows int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.markers = make(map[rune]Pos)

	g.cells = make([][]*Cell, rows)
	for row := 0; row < rows; row++ {
		g.cells[row] = make([]*Cell, cols)
		for col := 0; col < cols; col++ {
			g.cells[row][col] = NewCell(Pos{Col: col, Row: row})
		}
	}
	g.BuildAllCellConnections()
}

// BuildAllCellConnections connects all cells to their in-bounds neighbors.
// Links ignore walkability, which can change after the grid is built.
func (g *Grid) BuildAllCellConnections() {
	g.ForEachCell(func(cell *Cell) {
		for _, dir := range AllDirections() {
			adj := g.GetCell(dir.Step(cell.Pos))
			if adj == nil {
				continue
			}
			cell.SetNeighbor(dir, adj)
			adj.SetNeighbor(dir.Opposite(), cell)
		}
	})
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(g.cells[row][col])
		}
	}
}

// WalkableCount returns the number of floor cells
func (g *Grid) WalkableCount() int {
	n := 0
	g.ForEachCell(func(cell *Cell) {
		if cell.Walkable {
			n++
		}
	})
	return n
}
