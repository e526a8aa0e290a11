package state

import (
	"fmt"
	"testing"

	"frostfire/pkg/engine/world"
	"frostfire/pkg/game/entities"
)

func newTestLevel(t *testing.T, maxMessages int) *Level {
	t.Helper()
	grid, err := world.ParseLayoutString(`
#####
#E.F#
#...#
#####
`)
	if err != nil {
		t.Fatalf("ParseLayoutString: %v", err)
	}
	return NewLevel(grid, world.NewIndex(1), maxMessages)
}

func TestAddMessage_KeepsLastN(t *testing.T) {
	l := newTestLevel(t, 3)
	for i := 1; i <= 5; i++ {
		l.AddMessage(fmt.Sprintf("msg %d", i))
	}

	want := []string{"msg 3", "msg 4", "msg 5"}
	if len(l.Messages) != len(want) {
		t.Fatalf("Messages = %v, want %v", l.Messages, want)
	}
	for i := range want {
		if l.Messages[i] != want[i] {
			t.Errorf("Messages[%d] = %q, want %q", i, l.Messages[i], want[i])
		}
	}

	l.ClearMessages()
	if len(l.Messages) != 0 {
		t.Errorf("Messages after ClearMessages = %v, want empty", l.Messages)
	}
}

func TestNewLevel_DefaultMessageLimit(t *testing.T) {
	l := newTestLevel(t, 0)
	if l.MaxMessages != DefaultMaxMessages {
		t.Errorf("MaxMessages = %d, want %d", l.MaxMessages, DefaultMaxMessages)
	}
}

func TestIsWalkable_StaticHazardsBlock(t *testing.T) {
	l := newTestLevel(t, 0)
	cell := world.P(2, 2)
	if !l.IsWalkable(cell) {
		t.Fatalf("IsWalkable(%v) = false before placing a hazard", cell)
	}

	l.AddStaticHazard(cell, entities.KindCold)
	if l.IsWalkable(cell) {
		t.Errorf("IsWalkable(%v) = true with a static hazard", cell)
	}
	if kind, ok := l.StaticHazardAt(cell); !ok || kind != entities.KindCold {
		t.Errorf("StaticHazardAt(%v) = %v, %v; want cold, true", cell, kind, ok)
	}
	if l.IsWalkable(world.P(0, 0)) {
		t.Error("IsWalkable((0,0)) = true for a wall")
	}
}

func TestOutlines(t *testing.T) {
	l := newTestLevel(t, 0)
	cell := world.P(1, 2)

	l.SetOutlineVisible(cell, true)
	if !l.OutlineVisible(cell) {
		t.Error("OutlineVisible = false after showing")
	}
	l.SetOutlineVisible(cell, false)
	if l.OutlineVisible(cell) {
		t.Error("OutlineVisible = true after hiding")
	}
}

func TestPlayers(t *testing.T) {
	l := newTestLevel(t, 0)
	spawn, _ := l.Grid.Marker('F')
	frost := l.AddPlayer("frost", entities.RoleFrost, spawn, 0.3)

	if got := l.PlayerAt(spawn); got != frost {
		t.Errorf("PlayerAt(%v) = %v, want frost", spawn, got)
	}
	if got := l.PlayerAt(world.P(1, 1)); got != nil {
		t.Errorf("PlayerAt((1,1)) = %v, want nil", got)
	}
	if len(l.Roster.Players) != 1 {
		t.Errorf("Roster has %d players, want 1", len(l.Roster.Players))
	}
}
