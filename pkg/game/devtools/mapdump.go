// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"frostfire/pkg/engine/world"
	"frostfire/pkg/game/entities"
	"frostfire/pkg/game/gameplay"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell
func cellSymbol(s *gameplay.Session, p world.Pos) rune {
	l := s.Level
	if player := l.PlayerAt(p); player != nil {
		if player.Role() == entities.RoleFrost {
			return 'F'
		}
		return 'E'
	}
	if h := s.Pool.At(p); h != nil {
		if h.Kind == entities.KindCold {
			return 'c'
		}
		return 'h'
	}
	if kind, ok := l.StaticHazardAt(p); ok {
		if kind == entities.KindCold {
			return 'C'
		}
		return 'H'
	}
	switch {
	case !l.Grid.IsWalkable(p):
		return '#'
	case s.Orchestrator.Reserved(p):
		return 'o'
	default:
		return '.'
	}
}

// writeMapGrid writes the level grid to w
func writeMapGrid(w io.Writer, s *gameplay.Session) {
	grid := s.Level.Grid
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			fmt.Fprintf(w, "%c", cellSymbol(s, world.P(col, row)))
		}
		fmt.Fprintln(w)
	}
}

// DumpLevel writes a debug dump of the session to w: metadata, legend, map,
// sequence states, live and static hazards, and players.
func DumpLevel(w io.Writer, s *gameplay.Session) {
	l := s.Level
	o := s.Orchestrator

	// --- Metadata ---
	fmt.Fprintln(w, "=== LEVEL DUMP (layout, sequences, hazards, players) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "tick: %d\n", l.Tick)
	fmt.Fprintf(w, "seed: %d\n", s.Config.Seed)
	fmt.Fprintf(w, "grid_cols: %d\n", l.Grid.Cols())
	fmt.Fprintf(w, "grid_rows: %d\n", l.Grid.Rows())
	fmt.Fprintf(w, "cell_size: %g\n", l.Index.CellSize)
	fmt.Fprintf(w, "coordinate_system: col,row (0-based, row grows south, world y = -row)\n")
	fmt.Fprintf(w, "tearing_down: %v\n", o.TearingDown())
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = floor  # = wall  o = sequence cell  h/c = live hot/cold hazard  H/C = static hot/cold hazard  E/F = Ember/Frost player")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, s)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Sequences ---")
	for _, id := range o.Sequences() {
		fmt.Fprintf(w, "  name: %q phase: %s step: %d waiting: %v\n", id, o.Phase(id), o.Index(id), o.Waiting(id))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Live Hazards:")
	for _, h := range s.Pool.Live() {
		fmt.Fprintf(w, "  id: %d cell: %v kind: %s ticks_left: %d\n", h.ID, l.Index.ToCell(h.Center), h.Kind, h.TicksLeft)
	}
	fmt.Fprintln(w, "")

	// Sort static hazards for a stable dump
	var static []world.Pos
	for p := range l.StaticHazards {
		static = append(static, p)
	}
	sort.Slice(static, func(i, j int) bool {
		if static[i].Row != static[j].Row {
			return static[i].Row < static[j].Row
		}
		return static[i].Col < static[j].Col
	})
	fmt.Fprintln(w, "Static Hazards:")
	for _, p := range static {
		fmt.Fprintf(w, "  cell: %v kind: %s\n", p, l.StaticHazards[p])
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Players:")
	for _, p := range l.Roster.Players {
		fmt.Fprintf(w, "  name: %q role: %s cell: %v teleports: %d\n", p.Name, p.Role(), l.Index.ToCell(p.Position()), p.Teleports)
	}
}

// DumpLevelToFile writes DumpLevel output to map.txt in the working directory
// and returns its absolute path
func DumpLevelToFile(s *gameplay.Session) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	DumpLevel(f, s)
	return absPath, nil
}
