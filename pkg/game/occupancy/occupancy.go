// Package occupancy answers whether a player currently stands on a grid cell.
package occupancy

import (
	"frostfire/pkg/engine/world"
	"frostfire/pkg/game/entities"
)

// DefaultRegionFactor is the share of a cell's side the blocking region covers
const DefaultRegionFactor = 0.8

// Occupant is a player actor as seen by occupancy and displacement
type Occupant interface {
	Role() entities.Role
	Position() world.Vec2
	Teleport(dest world.Vec2)
}

// Provider is the physics collaborator that finds player actors in a region
type Provider interface {
	QueryPlayersInRegion(region world.Rect) []Occupant
}

// Query checks cells for player occupancy
type Query struct {
	provider Provider
	cellSize float64
	factor   float64
}

// NewQuery creates an occupancy query. A factor of zero selects DefaultRegionFactor.
func NewQuery(provider Provider, cellSize, factor float64) *Query {
	if factor <= 0 {
		factor = DefaultRegionFactor
	}
	return &Query{provider: provider, cellSize: cellSize, factor: factor}
}

// Region returns the square checked around a cell centre
func (q *Query) Region(center world.Vec2) world.Rect {
	return world.SquareAt(center, q.cellSize*q.factor)
}

// IsCellBlocked reports whether any player overlaps the region around center
func (q *Query) IsCellBlocked(center world.Vec2) bool {
	return len(q.Blocking(center)) > 0
}

// Blocking returns the players overlapping the region around center
func (q *Query) Blocking(center world.Vec2) []Occupant {
	if q == nil || q.provider == nil {
		return nil
	}
	return q.provider.QueryPlayersInRegion(q.Region(center))
}
