// Package sequence drives looping hazard sequences on fixed grid cells.
//
// An Orchestrator owns one state machine per sequence. Each step spawns a hazard
// at its cell; when the hazard is destroyed the sequence advances to the next step.
// If a player stands on the target cell the orchestrator first tries to displace
// them to a nearby safe cell, and otherwise suspends the sequence until the cell
// clears. Everything runs on the caller's goroutine: Initialize, Tick and the
// hazard destruction callbacks must not be called concurrently.
package sequence

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"frostfire/pkg/engine/world"
	"frostfire/pkg/game/entities"
)

// Step is one hazard spawn in a sequence
type Step struct {
	Kind entities.ActionKind
	Cell world.Pos
}

// Hot is shorthand for a hot step at (col,row)
func Hot(col, row int) Step {
	return Step{Kind: entities.KindHot, Cell: world.P(col, row)}
}

// Cold is shorthand for a cold step at (col,row)
func Cold(col, row int) Step {
	return Step{Kind: entities.KindCold, Cell: world.P(col, row)}
}

// Definition is an authored, read-only sequence of steps
type Definition struct {
	Name  string
	Steps []Step
	Loop  bool
}

// Validate checks that definitions have distinct, non-empty names
func Validate(defs []Definition) error {
	seen := mapset.New[string]()
	for i, def := range defs {
		if def.Name == "" {
			return fmt.Errorf("sequence %d has no name", i)
		}
		if seen.Has(def.Name) {
			return fmt.Errorf("duplicate sequence name %q", def.Name)
		}
		seen.Put(def.Name)
	}
	return nil
}

// ReservedCells returns every cell referenced by any step of any definition.
// Level construction keeps static hazards off these cells, and displacement never
// moves a player onto one.
func ReservedCells(defs []Definition) mapset.Set[world.Pos] {
	reserved := mapset.New[world.Pos]()
	for _, def := range defs {
		for _, step := range def.Steps {
			reserved.Put(step.Cell)
		}
	}
	return reserved
}
