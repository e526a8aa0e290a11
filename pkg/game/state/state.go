package state

import (
	"github.com/zyedidia/generic/mapset"

	"frostfire/pkg/engine/world"
	"frostfire/pkg/game/entities"
	"frostfire/pkg/game/occupancy"
)

// DefaultMaxMessages is the message log size used when none is given
const DefaultMaxMessages = 5

// Level represents the state of one loaded maze
type Level struct {
	Grid  *world.Grid
	Index world.Index

	// Roster holds the players in the level
	Roster *occupancy.Roster

	// StaticHazards are permanent hazards placed at load time, keyed by cell
	StaticHazards map[world.Pos]entities.ActionKind

	// Outlines are the sequence cells whose outline is currently shown
	Outlines mapset.Set[world.Pos]

	Messages    []string
	MaxMessages int

	Tick int
}

// NewLevel creates a level over grid. maxMessages <= 0 selects DefaultMaxMessages.
func NewLevel(grid *world.Grid, index world.Index, maxMessages int) *Level {
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessages
	}
	return &Level{
		Grid:          grid,
		Index:         index,
		Roster:        occupancy.NewRoster(),
		StaticHazards: make(map[world.Pos]entities.ActionKind),
		Outlines:      mapset.New[world.Pos](),
		Messages:      make([]string, 0),
		MaxMessages:   maxMessages,
	}
}

// Bounds returns the grid bounds
func (l *Level) Bounds() world.Bounds {
	return l.Grid.Bounds()
}

// GetCell returns the grid cell at p, or nil if out of bounds
func (l *Level) GetCell(p world.Pos) *world.Cell {
	return l.Grid.GetCell(p)
}

// IsWalkable reports whether p is floor without a static hazard on it
func (l *Level) IsWalkable(p world.Pos) bool {
	if !l.Grid.IsWalkable(p) {
		return false
	}
	_, hazard := l.StaticHazards[p]
	return !hazard
}

// AddStaticHazard places a permanent hazard of kind at p
func (l *Level) AddStaticHazard(p world.Pos, kind entities.ActionKind) {
	l.StaticHazards[p] = kind
}

// StaticHazardAt returns the static hazard kind at p, if any
func (l *Level) StaticHazardAt(p world.Pos) (entities.ActionKind, bool) {
	kind, ok := l.StaticHazards[p]
	return kind, ok
}

// SetOutlineVisible shows or hides the outline drawn on a sequence cell
func (l *Level) SetOutlineVisible(cell world.Pos, visible bool) {
	if visible {
		l.Outlines.Put(cell)
	} else {
		l.Outlines.Remove(cell)
	}
}

// OutlineVisible reports whether the outline on cell is shown
func (l *Level) OutlineVisible(cell world.Pos) bool {
	return l.Outlines.Has(cell)
}

// AddPlayer places a player at the centre of cell
func (l *Level) AddPlayer(name string, role entities.Role, cell world.Pos, half float64) *entities.Player {
	p := entities.NewPlayer(name, role, l.Index.ToWorld(cell), half)
	l.Roster.Add(p)
	return p
}

// PlayerAt returns the first player whose centre lies in cell
func (l *Level) PlayerAt(cell world.Pos) *entities.Player {
	for _, p := range l.Roster.Players {
		if l.Index.ToCell(p.Position()) == cell {
			return p
		}
	}
	return nil
}

// AddMessage adds a message to the level's message log
func (l *Level) AddMessage(msg string) {
	l.Messages = append(l.Messages, msg)

	// Keep only the last MaxMessages
	if len(l.Messages) > l.MaxMessages {
		l.Messages = l.Messages[len(l.Messages)-l.MaxMessages:]
	}
}

// ClearMessages clears all messages
func (l *Level) ClearMessages() {
	l.Messages = make([]string, 0)
}
