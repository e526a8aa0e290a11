package sequence

// waitTask polls a stalled sequence's target cell once per tick until the cell
// clears. At most one task exists per sequence.
type waitTask struct {
	sequence  string
	since     int
	cancelled bool
}

// suspend parks sequence id on step until its cell clears
func (o *Orchestrator) suspend(id string, st *sequenceState, step Step) {
	st.phase = PhaseStalled
	if _, ok := o.pending[id]; ok {
		return
	}
	o.pending[id] = &waitTask{sequence: id, since: o.tick}
	o.logf("SEQ{%s}: CELL{%v} is occupied; waiting", id, step.Cell)
	o.emit(id, st, step, EventStalled)
}

// poll re-checks a task's cell. A cleared cell removes the task and resumes the
// sequence; otherwise displacement is tried again.
func (o *Orchestrator) poll(t *waitTask) {
	if t.cancelled || o.tearingDown || o.pending[t.sequence] != t {
		return
	}
	st := o.states[t.sequence]
	if st == nil || st.index >= len(st.def.Steps) {
		delete(o.pending, t.sequence)
		return
	}

	step := st.def.Steps[st.index]
	center := o.cfg.Index.ToWorld(step.Cell)
	if o.cfg.Occupancy.IsCellBlocked(center) && !o.displace(t.sequence, st, step, center) {
		return
	}

	delete(o.pending, t.sequence)
	o.emit(t.sequence, st, step, EventResumed)
	o.spawnNext(t.sequence)
}

func (o *Orchestrator) cancelWaits() {
	for id, t := range o.pending {
		t.cancelled = true
		delete(o.pending, id)
	}
}
