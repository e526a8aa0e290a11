package gameplay

import (
	"testing"

	"frostfire/pkg/engine/world"
	"frostfire/pkg/game/entities"
)

func TestHazardPool_MissingKind(t *testing.T) {
	pool := NewHazardPool(world.NewIndex(1), 3, entities.KindHot)

	if h := pool.Spawn(entities.KindCold, world.Vec2{}); h != nil {
		t.Errorf("Spawn(cold) = %v, want nil for an unloaded kind", h)
	}
	if h := pool.Spawn(entities.KindHot, world.Vec2{}); h == nil {
		t.Error("Spawn(hot) = nil, want a hazard")
	}
}

func TestHazardPool_DefaultLoadsAllKinds(t *testing.T) {
	pool := NewHazardPool(world.NewIndex(1), 3)
	for kind := range entities.HazardTypes {
		if pool.Spawn(kind, world.Vec2{}) == nil {
			t.Errorf("Spawn(%v) = nil, want a hazard", kind)
		}
	}
	if pool.Spawn(entities.KindNone, world.Vec2{}) != nil {
		t.Error("Spawn(none) != nil")
	}
}

func TestHazardPool_Expiry(t *testing.T) {
	ix := world.NewIndex(1)
	pool := NewHazardPool(ix, 2)
	h := pool.Spawn(entities.KindHot, ix.ToWorld(world.P(1, 1))).(*entities.Hazard)

	destroyed := 0
	h.OnDestroyed(func() { destroyed++ })

	if n := pool.Tick(); n != 0 {
		t.Errorf("first Tick expired %d, want 0", n)
	}
	if n := pool.Tick(); n != 1 {
		t.Errorf("second Tick expired %d, want 1", n)
	}
	if destroyed != 1 || !h.IsDestroyed() {
		t.Errorf("destroyed = %d (IsDestroyed %v), want 1 (true)", destroyed, h.IsDestroyed())
	}
	if len(pool.Live()) != 0 {
		t.Errorf("Live() = %v, want empty", pool.Live())
	}
}

func TestHazardPool_ReplacementSpawnedDuringExpiry(t *testing.T) {
	ix := world.NewIndex(1)
	pool := NewHazardPool(ix, 1)
	h := pool.Spawn(entities.KindHot, ix.ToWorld(world.P(1, 1))).(*entities.Hazard)
	h.OnDestroyed(func() {
		pool.Spawn(entities.KindCold, ix.ToWorld(world.P(2, 1)))
	})

	pool.Tick()

	live := pool.Live()
	if len(live) != 1 || live[0].Kind != entities.KindCold {
		t.Fatalf("Live() = %v, want the cold replacement", live)
	}
	if live[0].TicksLeft != 1 {
		t.Errorf("replacement TicksLeft = %d, want 1 (not aged by the tick that spawned it)", live[0].TicksLeft)
	}
}

func TestHazardPool_DespawnAndClear(t *testing.T) {
	ix := world.NewIndex(1)
	pool := NewHazardPool(ix, 0)
	a := pool.Spawn(entities.KindHot, ix.ToWorld(world.P(1, 1))).(*entities.Hazard)
	b := pool.Spawn(entities.KindCold, ix.ToWorld(world.P(2, 1))).(*entities.Hazard)

	if got := pool.At(world.P(2, 1)); got != b {
		t.Errorf("At((2,1)) = %v, want b", got)
	}

	pool.Despawn(a)
	if !a.IsDestroyed() || pool.At(world.P(1, 1)) != nil {
		t.Error("Despawn left a live")
	}

	for i := 0; i < 5; i++ {
		pool.Tick()
	}
	if b.IsDestroyed() {
		t.Error("zero-lifetime hazard expired")
	}

	pool.Clear()
	if !b.IsDestroyed() || len(pool.Live()) != 0 {
		t.Error("Clear left hazards alive")
	}
}
