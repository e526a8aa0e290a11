package levelgen

import (
	"math/rand"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"frostfire/pkg/engine/world"
	"frostfire/pkg/game/entities"
	"frostfire/pkg/game/state"
)

const testLevel = `
##########
#E.......#
#.##.###.#
#........#
#.###.##.#
#.......F#
##########
`

func mustLevel(t *testing.T, layout string) *state.Level {
	t.Helper()
	grid, err := world.ParseLayoutString(layout)
	if err != nil {
		t.Fatalf("ParseLayoutString: %v", err)
	}
	return state.NewLevel(grid, world.NewIndex(1), 0)
}

func TestPlaceStaticHazards_AvoidsReservedAndSpawns(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		l := mustLevel(t, testLevel)
		reserved := mapset.New[world.Pos]()
		reserved.Put(world.P(4, 3))
		reserved.Put(world.P(5, 3))

		placed := PlaceStaticHazards(l, 4, &reserved, rand.New(rand.NewSource(seed)))

		ember, _ := l.Grid.Marker(MarkerEmber)
		frost, _ := l.Grid.Marker(MarkerFrost)
		for _, p := range placed {
			if reserved.Has(p) {
				t.Fatalf("seed %d: hazard on reserved cell %v", seed, p)
			}
			if ManhattanDistance(p, ember) < minSpawnDistance || ManhattanDistance(p, frost) < minSpawnDistance {
				t.Fatalf("seed %d: hazard %v next to a spawn", seed, p)
			}
			if _, ok := l.StaticHazardAt(p); !ok {
				t.Fatalf("seed %d: placed %v but level has no hazard there", seed, p)
			}
		}

		reach := GetReachableCells(l, ember, nil)
		if !reach.Has(frost) {
			t.Fatalf("seed %d: frost spawn cut off from ember spawn by %v", seed, placed)
		}
		reserved.Each(func(p world.Pos) {
			if !reach.Has(p) {
				t.Fatalf("seed %d: reserved cell %v cut off by %v", seed, p, placed)
			}
		})
		if got := reach.Size(); got != l.Grid.WalkableCount()-len(placed) {
			t.Fatalf("seed %d: reachable = %d, want every free floor cell (%d)", seed, got, l.Grid.WalkableCount()-len(placed))
		}
	}
}

func TestPlaceStaticHazards_CorridorStaysOpen(t *testing.T) {
	l := mustLevel(t, `
#########
#E.....F#
#########
`)
	placed := PlaceStaticHazards(l, 3, nil, rand.New(rand.NewSource(1)))

	if len(placed) != 0 {
		t.Errorf("placed %v in a single corridor, want none", placed)
	}
	if len(l.Messages) != 1 {
		t.Errorf("Messages = %v, want one shortfall message", l.Messages)
	}
}

func TestPlaceStaticHazards_ZeroCount(t *testing.T) {
	l := mustLevel(t, testLevel)
	if placed := PlaceStaticHazards(l, 0, nil, rand.New(rand.NewSource(1))); placed != nil {
		t.Errorf("PlaceStaticHazards(0) = %v, want nil", placed)
	}
}

func TestIsArticulationPoint(t *testing.T) {
	l := mustLevel(t, `
#######
#.....#
#.#.###
#.....#
#######
`)
	start := world.P(1, 1)
	cases := []struct {
		cell world.Pos
		want bool
	}{
		{world.P(5, 1), false},
		{world.P(4, 1), true},
		{world.P(3, 2), false},
		{world.P(2, 1), false},
	}
	for _, tc := range cases {
		t.Run(tc.cell.String(), func(t *testing.T) {
			if got := IsArticulationPoint(l, start, tc.cell, nil); got != tc.want {
				t.Errorf("IsArticulationPoint(%v) = %v, want %v", tc.cell, got, tc.want)
			}
		})
	}
}

func TestGetReachableCells_FollowsCellLinks(t *testing.T) {
	grid := world.NewGrid(4, 1)
	for _, p := range []world.Pos{world.P(0, 0), world.P(1, 0), world.P(3, 0)} {
		grid.MarkWalkable(p)
	}
	l := state.NewLevel(grid, world.NewIndex(1), 0)
	start := world.P(0, 0)

	if got := GetReachableCells(l, start, nil).Size(); got != 2 {
		t.Errorf("reachable before opening (2,0) = %d, want 2", got)
	}

	grid.MarkWalkable(world.P(2, 0))
	if got := GetReachableCells(l, start, nil); got.Size() != 4 || !got.Has(world.P(3, 0)) {
		t.Errorf("reachable after opening (2,0) = %d, want 4 including (3,0)", got.Size())
	}

	l.AddStaticHazard(world.P(1, 0), entities.KindHot)
	if got := GetReachableCells(l, start, nil).Size(); got != 1 {
		t.Errorf("reachable past a static hazard = %d, want 1", got)
	}

	if got := GetReachableCells(l, world.P(9, 9), nil).Size(); got != 0 {
		t.Errorf("reachable from out of bounds = %d, want 0", got)
	}
}

func TestManhattanDistance(t *testing.T) {
	if got := ManhattanDistance(world.P(1, 5), world.P(4, 1)); got != 7 {
		t.Errorf("ManhattanDistance = %d, want 7", got)
	}
}
