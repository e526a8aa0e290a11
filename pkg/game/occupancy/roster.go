package occupancy

import (
	"frostfire/pkg/engine/world"
	"frostfire/pkg/game/entities"
)

// Roster is an in-memory Provider over a fixed set of players
type Roster struct {
	Players []*entities.Player
}

// NewRoster creates a roster for the given players
func NewRoster(players ...*entities.Player) *Roster {
	return &Roster{Players: players}
}

// Add tracks another player
func (r *Roster) Add(p *entities.Player) {
	r.Players = append(r.Players, p)
}

// QueryPlayersInRegion returns players whose footprint overlaps region, in roster order
func (r *Roster) QueryPlayersInRegion(region world.Rect) []Occupant {
	var found []Occupant
	for _, p := range r.Players {
		if p != nil && p.Bounds().Overlaps(region) {
			found = append(found, p)
		}
	}
	return found
}
