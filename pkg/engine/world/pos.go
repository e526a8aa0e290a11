package world

import "fmt"

// Pos addresses a single grid cell by column and row.
// It is a plain value and compares by value, so it can key maps and sets.
type Pos struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// P is shorthand for Pos{Col: col, Row: row}
func P(col, row int) Pos {
	return Pos{Col: col, Row: row}
}

// String renders the position as "(col,row)"
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Neighbors returns the four axis neighbours in North, East, South, West order
func (p Pos) Neighbors() [4]Pos {
	return [4]Pos{North.Step(p), East.Step(p), South.Step(p), West.Step(p)}
}

// Bounds is the rectangle of cells a layout covers, from (0,0) to (Cols-1,Rows-1)
type Bounds struct {
	Cols int
	Rows int
}

// Contains reports whether p lies inside the bounds
func (b Bounds) Contains(p Pos) bool {
	return p.Col >= 0 && p.Col < b.Cols && p.Row >= 0 && p.Row < b.Rows
}
