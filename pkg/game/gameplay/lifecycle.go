package gameplay

import (
	"fmt"
	"math/rand"

	"frostfire/pkg/engine/world"
	"frostfire/pkg/game/entities"
	"frostfire/pkg/game/levelgen"
	"frostfire/pkg/game/occupancy"
	"frostfire/pkg/game/sequence"
	"frostfire/pkg/game/state"
)

// Session is one loaded level with its sequences running
type Session struct {
	Config Config

	Level        *state.Level
	Pool         *HazardPool
	Orchestrator *sequence.Orchestrator
	Walkers      []*Walker

	// Ember and Frost are the players placed on the E and F markers, if present
	Ember *entities.Player
	Frost *entities.Player

	closed bool
}

// NewSession loads layout, places static hazards and players, and starts the
// sequences. events may be nil.
func NewSession(cfg Config, layout string, defs []sequence.Definition, events sequence.EventSink) (*Session, error) {
	grid, err := world.ParseLayoutString(layout)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	if err := sequence.Validate(defs); err != nil {
		return nil, fmt.Errorf("load sequences: %w", err)
	}

	index := world.NewIndex(cfg.CellSize)
	l := state.NewLevel(grid, index, cfg.MaxMessages)

	// Every sequence cell starts outlined; spawning a hazard hides it
	reserved := sequence.ReservedCells(defs)
	reserved.Each(func(p world.Pos) {
		if l.Bounds().Contains(p) {
			l.SetOutlineVisible(p, true)
		}
	})

	rng := rand.New(rand.NewSource(cfg.Seed))
	levelgen.PlaceStaticHazards(l, cfg.StaticHazards, &reserved, rng)

	s := &Session{
		Config: cfg,
		Level:  l,
		Pool:   NewHazardPool(index, cfg.HazardLifetime),
	}
	if p, ok := grid.Marker(levelgen.MarkerEmber); ok {
		s.Ember = l.AddPlayer("Ember", entities.RoleEmber, p, cfg.PlayerHalf)
	}
	if p, ok := grid.Marker(levelgen.MarkerFrost); ok {
		s.Frost = l.AddPlayer("Frost", entities.RoleFrost, p, cfg.PlayerHalf)
	}

	s.Orchestrator = sequence.New(sequence.Config{
		Layout:    l,
		Index:     index,
		Factory:   s.Pool,
		Occupancy: occupancy.NewQuery(l.Roster, cfg.CellSize, cfg.OccupancyFactor),
		Outlines:  l,
		Log:       l,
		Events:    events,
	})

	l.ClearMessages()
	logMessage(l, "Loaded SEQ{%d} sequence(s) over %d floor cells.", len(defs), grid.WalkableCount())
	if err := s.Orchestrator.Initialize(defs); err != nil {
		return nil, fmt.Errorf("start sequences: %w", err)
	}
	return s, nil
}

// AddWalker makes p follow a route through waypoints every tick
func (s *Session) AddWalker(p *entities.Player, waypoints ...world.Pos) *Walker {
	w := NewWalker(p, waypoints...)
	s.Walkers = append(s.Walkers, w)
	return w
}

// Tick advances the session: players walk, hazards age and expire (advancing
// their sequences), then stalled sequences re-check their cells
func (s *Session) Tick() {
	if s.closed {
		return
	}
	s.Level.Tick++
	for _, w := range s.Walkers {
		w.Step(s.Level, s.Pool)
	}
	s.Pool.Tick()
	s.Orchestrator.Tick()
}

// Close tears the session down. Sequences stop before the remaining hazards are
// destroyed, so no sequence advances during teardown.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.Orchestrator.Teardown()
	s.Pool.Clear()
	logMessage(s.Level, "Level closed.")
}
