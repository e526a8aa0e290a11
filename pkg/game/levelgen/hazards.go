package levelgen

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"frostfire/pkg/engine/world"
	"frostfire/pkg/game/entities"
	"frostfire/pkg/game/state"
)

// Spawn markers in level layouts
const (
	MarkerEmber = 'E'
	MarkerFrost = 'F'
)

// minSpawnDistance keeps static hazards from landing right next to a spawn point
const minSpawnDistance = 2

// PlaceStaticHazards places up to count permanent hazards on free floor cells.
// Cells in reserved (sequence cells) and spawn markers are never used, and a hazard
// is never placed where it would cut off part of the level. Returns the cells used.
func PlaceStaticHazards(l *state.Level, count int, reserved *mapset.Set[world.Pos], rng *rand.Rand) []world.Pos {
	if count <= 0 {
		return nil
	}

	avoid := mapset.New[world.Pos]()
	if reserved != nil {
		reserved.Each(func(p world.Pos) { avoid.Put(p) })
	}

	var spawns []world.Pos
	for _, marker := range []rune{MarkerEmber, MarkerFrost} {
		if p, ok := l.Grid.Marker(marker); ok {
			spawns = append(spawns, p)
			avoid.Put(p)
		}
	}

	var candidates []world.Pos
	var anchor *world.Pos
	l.Grid.ForEachCell(func(cell *world.Cell) {
		if anchor == nil && l.IsWalkable(cell.Pos) {
			p := cell.Pos
			anchor = &p
		}
		if !l.IsWalkable(cell.Pos) || avoid.Has(cell.Pos) {
			return
		}
		for _, s := range spawns {
			if ManhattanDistance(s, cell.Pos) < minSpawnDistance {
				return
			}
		}
		candidates = append(candidates, cell.Pos)
	})

	// Shuffle candidates for variety
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	var placed []world.Pos
	for _, cell := range candidates {
		if len(placed) >= count {
			break
		}

		var start world.Pos
		switch {
		case len(spawns) > 0:
			start = spawns[0]
		case anchor != nil && *anchor != cell:
			start = *anchor
		default:
			continue
		}
		if IsArticulationPoint(l, start, cell, nil) {
			continue
		}
		if !spawnsConnected(l, spawns, cell) {
			continue
		}

		kind := entities.KindHot
		if rng.Intn(2) == 1 {
			kind = entities.KindCold
		}
		l.AddStaticHazard(cell, kind)
		placed = append(placed, cell)
	}

	if len(placed) < count {
		l.AddMessage(gotext.Get("Only %d of %d static hazards fit the level", len(placed), count))
	}
	return placed
}

// spawnsConnected reports whether every spawn can still reach the others with
// extra treated as a wall
func spawnsConnected(l *state.Level, spawns []world.Pos, extra world.Pos) bool {
	if len(spawns) < 2 {
		return true
	}
	reach := GetReachableCellsExcluding(l, spawns[0], nil, &extra)
	for _, s := range spawns[1:] {
		if !reach.Has(s) {
			return false
		}
	}
	return true
}
