package displace

import (
	"math/rand"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"frostfire/pkg/engine/world"
)

// mustLayout parses an ASCII layout or fails the test
func mustLayout(t *testing.T, s string) *world.Grid {
	t.Helper()
	grid, err := world.ParseLayoutString(s)
	if err != nil {
		t.Fatalf("ParseLayoutString: %v", err)
	}
	return grid
}

// nudge returns a point just off the centre of cell p
func nudge(ix world.Index, p world.Pos, dx, dy float64) world.Vec2 {
	return ix.ToWorld(p).Add(world.Vec2{X: dx, Y: dy})
}

const openRoom = `
#######
#.....#
#.....#
#.....#
#.....#
#.....#
#######
`

func TestFindSafeCell_PrefersDirectionTowardPlayer(t *testing.T) {
	grid := mustLayout(t, openRoom)
	ix := world.NewIndex(1)
	s := NewSearcher(grid, ix, nil)
	blocked := world.P(3, 3)

	cases := []struct {
		name   string
		dx, dy float64
		want   world.Pos
	}{
		{"east", 0.2, 0.05, world.P(4, 3)},
		{"west", -0.2, 0.05, world.P(2, 3)},
		{"north", 0.05, 0.2, world.P(3, 2)},
		{"south", -0.05, -0.2, world.P(3, 4)},
		{"tie goes horizontal", -0.1, 0.1, world.P(2, 3)},
		{"dead centre", 0, 0, world.P(4, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.FindSafeCell(blocked, nudge(ix, blocked, tc.dx, tc.dy))
			if !ok {
				t.Fatal("FindSafeCell found nothing in an open room")
			}
			if got != tc.want {
				t.Errorf("FindSafeCell = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDirectionOrder(t *testing.T) {
	ix := world.NewIndex(1)
	s := NewSearcher(nil, ix, nil)
	blocked := world.P(3, 3)

	got := s.DirectionOrder(blocked, nudge(ix, blocked, -0.1, -0.3))
	want := [4]world.Direction{world.South, world.West, world.East, world.North}
	if got != want {
		t.Errorf("DirectionOrder = %v, want %v", got, want)
	}
}

func TestFindSafeCell_SkipsReservedCells(t *testing.T) {
	grid := mustLayout(t, `
#######
#.....#
#######
`)
	ix := world.NewIndex(1)
	blocked := world.P(3, 1)
	from := nudge(ix, blocked, 0.2, 0)

	free := NewSearcher(grid, ix, nil)
	if got, ok := free.FindSafeCell(blocked, from); !ok || got != world.P(4, 1) {
		t.Fatalf("unreserved FindSafeCell = %v, %v; want (4,1), true", got, ok)
	}

	reserved := mapset.New[world.Pos]()
	reserved.Put(world.P(4, 1))
	s := NewSearcher(grid, ix, &reserved)
	got, ok := s.FindSafeCell(blocked, from)
	if !ok {
		t.Fatal("FindSafeCell found nothing, want west side")
	}
	if got != world.P(2, 1) {
		t.Errorf("FindSafeCell = %v, want (2,1)", got)
	}
}

func TestFindSafeCell_ReservedCellsAreNotTraversed(t *testing.T) {
	grid := mustLayout(t, `
######
#....#
######
`)
	ix := world.NewIndex(1)
	reserved := mapset.New[world.Pos]()
	reserved.Put(world.P(2, 1))
	s := NewSearcher(grid, ix, &reserved)

	// Only way out of (1,1) is through the reserved cell
	if got, ok := s.FindSafeCell(world.P(1, 1), ix.ToWorld(world.P(1, 1))); ok {
		t.Errorf("FindSafeCell = %v, want none (path runs through a reserved cell)", got)
	}
}

func TestFindSafeCell_RequiresBreathingRoom(t *testing.T) {
	grid := mustLayout(t, `
######
#....#
######
`)
	ix := world.NewIndex(1)
	s := NewSearcher(grid, ix, nil)
	blocked := world.P(2, 1)

	// (1,1) is the nearest cell toward the player but a dead end behind the hazard
	got, ok := s.FindSafeCell(blocked, nudge(ix, blocked, -0.3, 0))
	if !ok {
		t.Fatal("FindSafeCell found nothing, want (3,1)")
	}
	if got != world.P(3, 1) {
		t.Errorf("FindSafeCell = %v, want (3,1)", got)
	}
}

func TestFindSafeCell_EnclosedPocket(t *testing.T) {
	grid := mustLayout(t, `
#####
##.##
#...#
##.##
#####
`)
	ix := world.NewIndex(1)
	s := NewSearcher(grid, ix, nil)

	if got, ok := s.FindSafeCell(world.P(2, 2), ix.ToWorld(world.P(2, 2))); ok {
		t.Errorf("FindSafeCell = %v, want none (every neighbour is a dead end)", got)
	}
}

func TestFindSafeCell_PropertiesOnRandomLayouts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ix := world.NewIndex(1)

	for trial := 0; trial < 50; trial++ {
		grid := world.NewGrid(9, 9)
		reserved := mapset.New[world.Pos]()
		grid.ForEachCell(func(cell *world.Cell) {
			if rng.Intn(100) < 65 {
				grid.MarkWalkable(cell.Pos)
				if rng.Intn(100) < 15 {
					reserved.Put(cell.Pos)
				}
			}
		})
		grid.BuildAllCellConnections()
		s := NewSearcher(grid, ix, &reserved)

		grid.ForEachCell(func(cell *world.Cell) {
			if !cell.Walkable {
				return
			}
			from := nudge(ix, cell.Pos, rng.Float64()-0.5, rng.Float64()-0.5)
			got, ok := s.FindSafeCell(cell.Pos, from)
			if !ok {
				return
			}
			if got == cell.Pos {
				t.Fatalf("trial %d: FindSafeCell(%v) returned the blocked cell", trial, cell.Pos)
			}
			if reserved.Has(got) {
				t.Fatalf("trial %d: FindSafeCell(%v) = %v, a reserved cell", trial, cell.Pos, got)
			}
			if !grid.IsWalkable(got) {
				t.Fatalf("trial %d: FindSafeCell(%v) = %v, not walkable", trial, cell.Pos, got)
			}
			room := false
			for _, n := range got.Neighbors() {
				if n != cell.Pos && grid.IsWalkable(n) {
					room = true
				}
			}
			if !room {
				t.Fatalf("trial %d: FindSafeCell(%v) = %v has no breathing room", trial, cell.Pos, got)
			}
		})
	}
}
