package gameplay

import (
	"github.com/zyedidia/generic/mapset"

	"frostfire/pkg/engine/world"
	"frostfire/pkg/game/entities"
	"frostfire/pkg/game/sequence"
)

// HazardPool instantiates sequence hazards and expires them after their lifetime
type HazardPool struct {
	index    world.Index
	lifetime int
	loaded   mapset.Set[entities.ActionKind]
	live     []*entities.Hazard
	nextID   int
}

// NewHazardPool creates a pool that can spawn the given kinds. With no kinds,
// every kind in entities.HazardTypes is loaded.
func NewHazardPool(index world.Index, lifetime int, kinds ...entities.ActionKind) *HazardPool {
	loaded := mapset.New[entities.ActionKind]()
	if len(kinds) == 0 {
		for kind := range entities.HazardTypes {
			loaded.Put(kind)
		}
	}
	for _, kind := range kinds {
		loaded.Put(kind)
	}
	return &HazardPool{
		index:    index,
		lifetime: lifetime,
		loaded:   loaded,
	}
}

// Spawn creates a hazard of kind at center. Returns nil if the kind is not loaded.
func (p *HazardPool) Spawn(kind entities.ActionKind, center world.Vec2) sequence.HazardHandle {
	if !p.loaded.Has(kind) {
		return nil
	}
	p.nextID++
	h := entities.NewHazard(p.nextID, kind, center, p.lifetime)
	p.live = append(p.live, h)
	return h
}

// Tick counts down hazard lifetimes and destroys the hazards that expire.
// Returns how many expired.
func (p *HazardPool) Tick() int {
	var expired, kept []*entities.Hazard
	for _, h := range p.live {
		if h.TicksLeft > 0 {
			h.TicksLeft--
			if h.TicksLeft == 0 {
				expired = append(expired, h)
				continue
			}
		}
		kept = append(kept, h)
	}
	p.live = kept

	// Destroying may spawn replacements into p.live
	for _, h := range expired {
		h.Destroy()
	}
	return len(expired)
}

// Despawn destroys h ahead of its lifetime
func (p *HazardPool) Despawn(h *entities.Hazard) {
	for i, live := range p.live {
		if live == h {
			p.live = append(p.live[:i], p.live[i+1:]...)
			break
		}
	}
	h.Destroy()
}

// At returns the live hazard on cell, or nil
func (p *HazardPool) At(cell world.Pos) *entities.Hazard {
	for _, h := range p.live {
		if p.index.ToCell(h.Center) == cell {
			return h
		}
	}
	return nil
}

// Live returns the live hazards in spawn order
func (p *HazardPool) Live() []*entities.Hazard {
	return append([]*entities.Hazard(nil), p.live...)
}

// Clear destroys every live hazard
func (p *HazardPool) Clear() {
	live := p.live
	p.live = nil
	for _, h := range live {
		h.Destroy()
	}
}
