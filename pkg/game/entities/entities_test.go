package entities

import (
	"testing"

	"frostfire/pkg/engine/world"
)

func TestVulnerable(t *testing.T) {
	cases := []struct {
		role Role
		kind ActionKind
		want bool
	}{
		{RoleFrost, KindHot, true},
		{RoleEmber, KindHot, false},
		{RoleEmber, KindCold, true},
		{RoleFrost, KindCold, false},
		{RoleEmber, KindNone, true},
		{RoleFrost, KindNone, true},
	}
	for _, tc := range cases {
		t.Run(tc.role.String()+"/"+tc.kind.String(), func(t *testing.T) {
			if got := Vulnerable(tc.role, tc.kind); got != tc.want {
				t.Errorf("Vulnerable(%v, %v) = %v, want %v", tc.role, tc.kind, got, tc.want)
			}
		})
	}
}

func TestActionKind_IsValid(t *testing.T) {
	if KindNone.IsValid() {
		t.Error("KindNone.IsValid() = true, want false")
	}
	if !KindHot.IsValid() || !KindCold.IsValid() {
		t.Error("hot/cold should be valid kinds")
	}
	if ActionKind(42).IsValid() {
		t.Error("ActionKind(42).IsValid() = true, want false")
	}
}

func TestActionKind_Tag(t *testing.T) {
	cases := []struct {
		kind ActionKind
		want string
	}{
		{KindHot, "HOT{x}"},
		{KindCold, "COLD{x}"},
		{KindNone, "x"},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := tc.kind.Tag("x"); got != tc.want {
				t.Errorf("Tag(x) = %q, want %q", got, tc.want)
			}
		})
	}

	if k, ok := KindForMarkup("COLD"); !ok || k != KindCold {
		t.Errorf("KindForMarkup(COLD) = %v, %v; want cold, true", k, ok)
	}
	if _, ok := KindForMarkup("CELL"); ok {
		t.Error("KindForMarkup(CELL) = true, want false")
	}
}

func TestHazard_DestroyFiresEveryListenerEachTime(t *testing.T) {
	h := NewHazard(1, KindHot, world.Vec2{}, 0)
	calls := 0
	h.OnDestroyed(func() { calls++ })
	h.OnDestroyed(func() { calls++ })
	h.Destroy()
	h.Destroy()
	if calls != 4 {
		t.Errorf("listener calls = %d, want 4", calls)
	}
	if !h.IsDestroyed() {
		t.Error("IsDestroyed() = false after Destroy")
	}
}

func TestPlayer_TeleportCounts(t *testing.T) {
	p := NewPlayer("frost", RoleFrost, world.Vec2{X: 1, Y: -1}, 0.3)
	p.MoveTo(world.Vec2{X: 2, Y: -1})
	p.Teleport(world.Vec2{X: 5, Y: -5})
	if p.Teleports != 1 {
		t.Errorf("Teleports = %d, want 1", p.Teleports)
	}
	if p.Position() != (world.Vec2{X: 5, Y: -5}) {
		t.Errorf("Position() = %v, want (5,-5)", p.Position())
	}
}
