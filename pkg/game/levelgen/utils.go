// Package levelgen places level content around the hazard sequences.
package levelgen

import (
	"github.com/zyedidia/generic/mapset"

	"frostfire/pkg/engine/world"
)

// Layout is the part of a level the reachability search needs
type Layout interface {
	GetCell(p world.Pos) *world.Cell
	IsWalkable(p world.Pos) bool
}

// GetReachableCells returns all cells reachable from start without passing through blocked cells
func GetReachableCells(layout Layout, start world.Pos, blocked *mapset.Set[world.Pos]) *mapset.Set[world.Pos] {
	return GetReachableCellsExcluding(layout, start, blocked, nil)
}

// GetReachableCellsExcluding returns all cells reachable from start without passing through blocked
// cells or the exclude cell. Exclude is treated as impassable (e.g. to test if a cell is an
// articulation point). Pass nil for no exclusion.
func GetReachableCellsExcluding(layout Layout, start world.Pos, blocked *mapset.Set[world.Pos], exclude *world.Pos) *mapset.Set[world.Pos] {
	reachable := mapset.New[world.Pos]()
	queue := []*world.Cell{layout.GetCell(start)}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == nil || reachable.Has(current.Pos) || !layout.IsWalkable(current.Pos) {
			continue
		}

		if exclude != nil && current.Pos == *exclude {
			continue // treat as impassable
		}

		if blocked != nil && blocked.Has(current.Pos) {
			continue
		}

		reachable.Put(current.Pos)

		for _, n := range []*world.Cell{current.North, current.East, current.South, current.West} {
			if n != nil && !reachable.Has(n.Pos) {
				queue = append(queue, n)
			}
		}
	}

	return &reachable
}

// IsArticulationPoint returns true if blocking this cell would disconnect the reachable set
// (i.e. the cell is a chokepoint). Static hazards are never placed on articulation points.
func IsArticulationPoint(layout Layout, start, cell world.Pos, blocked *mapset.Set[world.Pos]) bool {
	fullReach := GetReachableCells(layout, start, blocked)
	if !fullReach.Has(cell) {
		return false
	}
	reachWithoutCell := GetReachableCellsExcluding(layout, start, blocked, &cell)
	// If blocking this cell loses more than just the cell itself, it's an articulation point
	return reachWithoutCell.Size() < fullReach.Size()-1
}

// ManhattanDistance calculates the Manhattan distance between two cells
func ManhattanDistance(a, b world.Pos) int {
	rowDist := a.Row - b.Row
	colDist := a.Col - b.Col
	if rowDist < 0 {
		rowDist = -rowDist
	}
	if colDist < 0 {
		colDist = -colDist
	}
	return rowDist + colDist
}
