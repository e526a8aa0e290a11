package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"frostfire/pkg/engine/world"
	"frostfire/pkg/game/entities"
	"frostfire/pkg/game/state"
)

// CanEnter checks if a player of role can step onto cell: it must be floor
// without a static hazard, and any live hazard on it must be one the role
// walks through
func CanEnter(l *state.Level, pool *HazardPool, role entities.Role, cell world.Pos) bool {
	if !l.IsWalkable(cell) {
		return false
	}
	if pool != nil {
		if h := pool.At(cell); h != nil && entities.Vulnerable(role, h.Kind) {
			return false
		}
	}
	return true
}

// MoveCell moves p to the centre of cell if it may enter. Returns whether it moved.
func MoveCell(l *state.Level, pool *HazardPool, p *entities.Player, cell world.Pos) bool {
	if !CanEnter(l, pool, p.Role(), cell) {
		return false
	}
	p.MoveTo(l.Index.ToWorld(cell))
	return true
}

// Walker moves a player along a fixed route, one cell per tick, and turns
// around at either end
type Walker struct {
	Player *entities.Player
	Route  []world.Pos

	at      int
	forward bool
	// Blocked counts ticks the walker could not move
	Blocked int
}

// NewWalker creates a walker for p. The route is expanded so every pair of
// consecutive waypoints is joined cell by cell, horizontal leg first.
func NewWalker(p *entities.Player, waypoints ...world.Pos) *Walker {
	return &Walker{
		Player:  p,
		Route:   Route(waypoints...),
		forward: true,
	}
}

// Route joins waypoints with straight horizontal then vertical legs
func Route(waypoints ...world.Pos) []world.Pos {
	if len(waypoints) == 0 {
		return nil
	}
	route := []world.Pos{waypoints[0]}
	for _, next := range waypoints[1:] {
		cur := route[len(route)-1]
		for cur.Col != next.Col {
			cur.Col += sign(next.Col - cur.Col)
			route = append(route, cur)
		}
		for cur.Row != next.Row {
			cur.Row += sign(next.Row - cur.Row)
			route = append(route, cur)
		}
	}
	return route
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// Step advances the walker by one cell if it can enter it.
// A displaced player resumes from the route cell nearest to where it landed.
func (w *Walker) Step(l *state.Level, pool *HazardPool) {
	if len(w.Route) < 2 {
		return
	}

	here := l.Index.ToCell(w.Player.Position())
	if w.Route[w.at] != here {
		w.at = nearest(w.Route, here)
	}

	next := w.at + 1
	if !w.forward {
		next = w.at - 1
	}
	if next < 0 || next >= len(w.Route) {
		w.forward = !w.forward
		next = w.at + (w.at - next)
	}

	if MoveCell(l, pool, w.Player, w.Route[next]) {
		w.at = next
	} else {
		w.Blocked++
	}
}

func nearest(route []world.Pos, p world.Pos) int {
	best, bestDist := 0, -1
	for i, r := range route {
		d := abs(r.Col-p.Col) + abs(r.Row-p.Row)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func logMessage(l *state.Level, msg string, a ...any) {
	l.AddMessage(gotext.Get(msg, a...))
}
