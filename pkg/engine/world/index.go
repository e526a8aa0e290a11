package world

import "math"

// Index maps grid cells to world-space cell centres and back.
// World Y points up, so row 0 sits just below the origin and rows descend.
type Index struct {
	CellSize float64
}

// NewIndex creates an index for the given cell size
func NewIndex(cellSize float64) Index {
	return Index{CellSize: cellSize}
}

// ToWorld returns the world-space centre of the cell
func (ix Index) ToWorld(p Pos) Vec2 {
	return Vec2{
		X: (float64(p.Col) + 0.5) * ix.CellSize,
		Y: -(float64(p.Row) + 0.5) * ix.CellSize,
	}
}

// ToCell returns the cell containing the world-space point
func (ix Index) ToCell(v Vec2) Pos {
	return Pos{
		Col: int(math.Floor(v.X / ix.CellSize)),
		Row: int(math.Floor(-v.Y / ix.CellSize)),
	}
}
