// Package displace finds a safe cell to move a player to when a hazard needs the
// cell the player is standing on.
package displace

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"frostfire/pkg/engine/world"
)

// Layout is the static maze topology the search walks
type Layout interface {
	IsWalkable(p world.Pos) bool
	Bounds() world.Bounds
}

// Searcher runs the displacement BFS over a layout
type Searcher struct {
	Layout   Layout
	Index    world.Index
	Reserved *mapset.Set[world.Pos]
}

// NewSearcher creates a searcher. reserved may be nil when no cells are reserved.
func NewSearcher(layout Layout, index world.Index, reserved *mapset.Set[world.Pos]) *Searcher {
	return &Searcher{Layout: layout, Index: index, Reserved: reserved}
}

// FindSafeCell searches outward from blocked for the nearest cell a player standing at
// from can be moved to. Candidates must be in bounds, walkable and not reserved, and must
// have breathing room: a walkable neighbour other than blocked. Neighbours are explored
// toward the player first. Returns false when the reachable pocket holds no candidate.
func (s *Searcher) FindSafeCell(blocked world.Pos, from world.Vec2) (world.Pos, bool) {
	order := s.DirectionOrder(blocked, from)

	visited := mapset.New[world.Pos]()
	visited.Put(blocked)

	var queue []world.Pos
	for _, dir := range order {
		queue = append(queue, dir.Step(blocked))
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited.Has(current) {
			continue
		}
		visited.Put(current)

		if !s.passable(current) {
			continue
		}

		if s.hasBreathingRoom(current, blocked) {
			return current, true
		}

		for _, dir := range order {
			n := dir.Step(current)
			if !visited.Has(n) {
				queue = append(queue, n)
			}
		}
	}

	return world.Pos{}, false
}

// DirectionOrder returns the neighbour order for a search around blocked: the axis along
// which the player is furthest from the cell centre first (toward the player), then the
// other axis toward the player, then the other axis away, then the first axis away.
// Equal offsets prefer the horizontal axis; a zero offset counts as East/North.
func (s *Searcher) DirectionOrder(blocked world.Pos, from world.Vec2) [4]world.Direction {
	offset := from.Sub(s.Index.ToWorld(blocked))

	horizontal := world.East
	if offset.X < 0 {
		horizontal = world.West
	}
	// World Y points up, so a positive offset is toward smaller rows
	vertical := world.North
	if offset.Y < 0 {
		vertical = world.South
	}

	primary, secondary := horizontal, vertical
	if math.Abs(offset.Y) > math.Abs(offset.X) {
		primary, secondary = vertical, horizontal
	}

	return [4]world.Direction{primary, secondary, secondary.Opposite(), primary.Opposite()}
}

// passable reports whether the search may stand on or pass through p
func (s *Searcher) passable(p world.Pos) bool {
	if !s.Layout.Bounds().Contains(p) || !s.Layout.IsWalkable(p) {
		return false
	}
	return s.Reserved == nil || !s.Reserved.Has(p)
}

// hasBreathingRoom reports whether p has a walkable neighbour besides blocked,
// so a displaced player is not boxed in against the new hazard
func (s *Searcher) hasBreathingRoom(p, blocked world.Pos) bool {
	for _, n := range p.Neighbors() {
		if n == blocked {
			continue
		}
		if s.Layout.Bounds().Contains(n) && s.Layout.IsWalkable(n) {
			return true
		}
	}
	return false
}
