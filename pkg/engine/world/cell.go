// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Cell represents a single cell/tile in the grid.
type Cell struct {
	Pos Pos

	// Glyph is the layout character the cell was parsed from
	Glyph rune

	// Walkable is false for walls and void
	Walkable bool

	// Navigation - links to adjacent cells inside the grid
	North *Cell
	East  *Cell
	South *Cell
	West  *Cell
}

// NewCell creates a new wall cell at the given position
func NewCell(p Pos) *Cell {
	return &Cell{Pos: p, Glyph: GlyphWall}
}

// SetNeighbor sets the neighboring cell in the given direction
func (c *Cell) SetNeighbor(dir Direction, neighbor *Cell) {
	if c == nil {
		return
	}
	switch dir {
	case North:
		c.North = neighbor
	case East:
		c.East = neighbor
	case South:
		c.South = neighbor
	case West:
		c.West = neighbor
	}
}
