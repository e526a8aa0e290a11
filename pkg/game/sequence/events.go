package sequence

import (
	"frostfire/pkg/engine/world"
	"frostfire/pkg/game/entities"
)

// EventType names a sequence lifecycle transition
type EventType string

const (
	EventSpawned   EventType = "spawned"
	EventCleared   EventType = "cleared"
	EventStalled   EventType = "stalled"
	EventResumed   EventType = "resumed"
	EventDisplaced EventType = "displaced"
	EventSkipped   EventType = "skipped"
	EventDone      EventType = "done"
)

// Event reports one lifecycle transition of a sequence
type Event struct {
	Tick     int                 `json:"tick"`
	Sequence string              `json:"sequence"`
	Type     EventType           `json:"type"`
	Step     int                 `json:"step"`
	Cell     world.Pos           `json:"cell"`
	Kind     entities.ActionKind `json:"kind"`
	// Reason is set for skipped steps
	Reason string `json:"reason,omitempty"`
	// Dest is the displacement destination for displaced events
	Dest *world.Pos `json:"dest,omitempty"`
}

// EventSink receives lifecycle events. Publish is called synchronously from the
// orchestrator and must not call back into it.
type EventSink interface {
	Publish(e Event)
}

// EventSinkFunc adapts a function to EventSink
type EventSinkFunc func(e Event)

// Publish calls f(e)
func (f EventSinkFunc) Publish(e Event) {
	f(e)
}

type discardSink struct{}

func (discardSink) Publish(Event) {}
