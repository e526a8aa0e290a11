package sequence

import (
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"frostfire/pkg/engine/world"
	"frostfire/pkg/game/displace"
	"frostfire/pkg/game/entities"
	"frostfire/pkg/game/occupancy"
)

// translate is a variable so go vet does not treat the message ids as format strings
var translate = gotext.Get

// HazardFactory spawns hazard instances. Spawn returns nil when the kind cannot be
// instantiated (e.g. a missing asset).
type HazardFactory interface {
	Spawn(kind entities.ActionKind, center world.Vec2) HazardHandle
}

// OutlineHook shows or hides the cosmetic outline marking a sequence cell
type OutlineHook interface {
	SetOutlineVisible(cell world.Pos, visible bool)
}

// Logger receives human-readable messages about skipped steps and displacements
type Logger interface {
	AddMessage(msg string)
}

// Phase is the state of one sequence's state machine
type Phase int

const (
	PhaseIdle     Phase = iota // Not initialized
	PhaseSpawning              // Working through the current step
	PhaseActive                // A hazard is live
	PhaseStalled               // Waiting for the target cell to clear
	PhaseDone                  // Non-looping sequence ran out of steps
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseActive:
		return "active"
	case PhaseStalled:
		return "stalled"
	case PhaseDone:
		return "done"
	default:
		return "idle"
	}
}

// Config wires the orchestrator to its collaborators. Layout, Factory and Occupancy
// are required; the rest default to no-ops.
type Config struct {
	Layout    displace.Layout
	Index     world.Index
	Factory   HazardFactory
	Occupancy *occupancy.Query
	Outlines  OutlineHook
	Log       Logger
	Events    EventSink
}

type sequenceState struct {
	def    Definition
	index  int
	active *ClearNotifier
	phase  Phase
}

// Orchestrator owns every sequence's state and the pending wait tasks
type Orchestrator struct {
	cfg Config

	states   map[string]*sequenceState
	order    []string
	pending  map[string]*waitTask
	reserved mapset.Set[world.Pos]
	searcher *displace.Searcher

	tick        int
	tearingDown bool
}

// New creates an orchestrator. Call Initialize to start sequences.
func New(cfg Config) *Orchestrator {
	if cfg.Events == nil {
		cfg.Events = discardSink{}
	}
	return &Orchestrator{
		cfg:      cfg,
		states:   make(map[string]*sequenceState),
		pending:  make(map[string]*waitTask),
		reserved: mapset.New[world.Pos](),
	}
}

// Initialize resets all sequence state to the first step and spawns every sequence
// once, in definition order. Wait tasks from an earlier run are cancelled and
// notifications from its hazards are ignored.
func (o *Orchestrator) Initialize(defs []Definition) error {
	if err := Validate(defs); err != nil {
		return err
	}

	o.cancelWaits()
	o.tearingDown = false
	o.states = make(map[string]*sequenceState, len(defs))
	o.order = make([]string, 0, len(defs))
	o.reserved = ReservedCells(defs)
	o.searcher = displace.NewSearcher(o.cfg.Layout, o.cfg.Index, &o.reserved)

	for _, def := range defs {
		o.states[def.Name] = &sequenceState{def: def, phase: PhaseSpawning}
		o.order = append(o.order, def.Name)
	}
	for _, id := range o.order {
		o.spawnNext(id)
	}
	return nil
}

// Tick runs one scheduler tick: every wait task registered before this tick polls
// its cell once.
func (o *Orchestrator) Tick() {
	if o.tearingDown {
		return
	}
	o.tick++

	var due []*waitTask
	for _, id := range o.order {
		if t := o.pending[id]; t != nil && t.since < o.tick {
			due = append(due, t)
		}
	}
	for _, t := range due {
		o.poll(t)
	}
}

// Teardown stops the orchestrator: wait tasks are cancelled and later hazard
// destruction notifications are ignored.
func (o *Orchestrator) Teardown() {
	o.tearingDown = true
	o.cancelWaits()
}

// TearingDown reports whether Teardown has been called since the last Initialize
func (o *Orchestrator) TearingDown() bool {
	return o.tearingDown
}

// CurrentTick returns the number of ticks run
func (o *Orchestrator) CurrentTick() int {
	return o.tick
}

// Sequences returns the sequence ids in definition order
func (o *Orchestrator) Sequences() []string {
	return append([]string(nil), o.order...)
}

// Phase returns the state of a sequence
func (o *Orchestrator) Phase(id string) Phase {
	if st := o.states[id]; st != nil {
		return st.phase
	}
	return PhaseIdle
}

// Index returns the current step index of a sequence, or -1 if unknown
func (o *Orchestrator) Index(id string) int {
	if st := o.states[id]; st != nil {
		return st.index
	}
	return -1
}

// Active returns the live hazard of a sequence, or nil
func (o *Orchestrator) Active(id string) HazardHandle {
	if st := o.states[id]; st != nil && st.active != nil {
		return st.active.handle
	}
	return nil
}

// Waiting reports whether a sequence has a pending wait task
func (o *Orchestrator) Waiting(id string) bool {
	_, ok := o.pending[id]
	return ok
}

// Reserved reports whether a cell belongs to any sequence step
func (o *Orchestrator) Reserved(p world.Pos) bool {
	return o.reserved.Has(p)
}

// spawnNext works through steps of sequence id until one spawns, the sequence
// stalls on an occupied cell, or a non-looping sequence runs out of steps.
// Broken steps are logged and skipped.
func (o *Orchestrator) spawnNext(id string) {
	st := o.states[id]
	if st == nil || o.tearingDown || st.active != nil {
		return
	}
	st.phase = PhaseSpawning
	steps := st.def.Steps
	skipped := 0

	for {
		if st.index >= len(steps) {
			if !st.def.Loop || len(steps) == 0 {
				o.finish(id, st)
				return
			}
			st.index = 0
		}
		if skipped >= len(steps) {
			o.logf("SEQ{%s}: every step was skipped; stopping", id)
			o.finish(id, st)
			return
		}

		step := steps[st.index]
		if !step.Kind.IsValid() {
			o.logf("SEQ{%s}: step %d has unsupported kind %s; skipping", id, st.index, step.Kind)
			o.skip(id, st, step, "unsupported kind")
			skipped++
			continue
		}
		if !o.cfg.Layout.Bounds().Contains(step.Cell) {
			o.logf("SEQ{%s}: no cell CELL{%v} in layout; skipping", id, step.Cell)
			o.setOutline(step.Cell, true)
			o.skip(id, st, step, "missing cell")
			skipped++
			continue
		}

		center := o.cfg.Index.ToWorld(step.Cell)
		if o.cfg.Occupancy.IsCellBlocked(center) && !o.displace(id, st, step, center) {
			o.suspend(id, st, step)
			return
		}

		handle := o.cfg.Factory.Spawn(step.Kind, center)
		if handle == nil {
			o.logf("SEQ{%s}: could not spawn %s at CELL{%v}; skipping", id, step.Kind.Tag(step.Kind.String()), step.Cell)
			o.setOutline(step.Cell, true)
			o.skip(id, st, step, "spawn failed")
			skipped++
			continue
		}

		o.setOutline(step.Cell, false)
		n := newClearNotifier(o, id, handle)
		st.active = n
		st.phase = PhaseActive
		o.emit(id, st, step, EventSpawned)
		n.watch()
		return
	}
}

// notifyCleared advances sequence id after its active hazard n is destroyed.
// Stale or repeated notifications are ignored.
func (o *Orchestrator) notifyCleared(id string, n *ClearNotifier) {
	if o.tearingDown {
		return
	}
	st := o.states[id]
	if st == nil || st.active == nil || st.active != n {
		return
	}

	step := st.def.Steps[st.index]
	o.setOutline(step.Cell, true)
	st.active = nil
	o.emit(id, st, step, EventCleared)
	st.index++
	o.spawnNext(id)
}

// displace tries to move vulnerable players off the step's cell and reports
// whether the cell is clear afterwards
func (o *Orchestrator) displace(id string, st *sequenceState, step Step, center world.Vec2) bool {
	for _, occ := range o.cfg.Occupancy.Blocking(center) {
		if !entities.Vulnerable(occ.Role(), step.Kind) {
			continue
		}
		dest, ok := o.searcher.FindSafeCell(step.Cell, occ.Position())
		if !ok {
			continue
		}
		occ.Teleport(o.cfg.Index.ToWorld(dest))
		o.logf("SEQ{%s}: moved %s player off %s CELL{%v} to CELL{%v}", id, occ.Role(), step.Kind.Tag(step.Kind.String()), step.Cell, dest)
		e := o.event(id, st, step, EventDisplaced)
		e.Dest = &dest
		o.cfg.Events.Publish(e)
	}
	return !o.cfg.Occupancy.IsCellBlocked(center)
}

func (o *Orchestrator) skip(id string, st *sequenceState, step Step, reason string) {
	e := o.event(id, st, step, EventSkipped)
	e.Reason = reason
	o.cfg.Events.Publish(e)
	st.index++
}

func (o *Orchestrator) finish(id string, st *sequenceState) {
	st.phase = PhaseDone
	o.cfg.Events.Publish(Event{Tick: o.tick, Sequence: id, Type: EventDone, Step: st.index})
}

func (o *Orchestrator) setOutline(cell world.Pos, visible bool) {
	if o.cfg.Outlines != nil {
		o.cfg.Outlines.SetOutlineVisible(cell, visible)
	}
}

func (o *Orchestrator) logf(msg string, a ...any) {
	if o.cfg.Log != nil {
		o.cfg.Log.AddMessage(translate(msg, a...))
	}
}

func (o *Orchestrator) event(id string, st *sequenceState, step Step, typ EventType) Event {
	return Event{
		Tick:     o.tick,
		Sequence: id,
		Type:     typ,
		Step:     st.index,
		Cell:     step.Cell,
		Kind:     step.Kind,
	}
}

func (o *Orchestrator) emit(id string, st *sequenceState, step Step, typ EventType) {
	o.cfg.Events.Publish(o.event(id, st, step, typ))
}
