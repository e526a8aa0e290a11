package sequence

// HazardHandle is a spawned hazard instance. OnDestroyed subscribes to its
// destruction event; the event may fire more than once.
type HazardHandle interface {
	OnDestroyed(fn func())
}

// ClearNotifier is attached to one spawned hazard and tells the orchestrator,
// at most once, that the hazard is gone so the sequence can advance.
type ClearNotifier struct {
	sequence string
	handle   HazardHandle
	owner    *Orchestrator
	notified bool
}

func newClearNotifier(owner *Orchestrator, sequence string, handle HazardHandle) *ClearNotifier {
	return &ClearNotifier{
		sequence: sequence,
		handle:   handle,
		owner:    owner,
	}
}

// watch subscribes to the hazard's destruction event. The owner must record the
// notifier as active first, since a hazard may be destroyed during subscription.
func (n *ClearNotifier) watch() {
	n.handle.OnDestroyed(n.hazardDestroyed)
}

// Sequence returns the id of the sequence the hazard belongs to
func (n *ClearNotifier) Sequence() string {
	return n.sequence
}

// Handle returns the hazard the notifier watches
func (n *ClearNotifier) Handle() HazardHandle {
	return n.handle
}

// Notified reports whether the clear notification has been delivered
func (n *ClearNotifier) Notified() bool {
	return n.notified
}

// hazardDestroyed is the destruction event callback
func (n *ClearNotifier) hazardDestroyed() {
	if n.notified || n.owner.tearingDown {
		return
	}
	n.notified = true
	n.owner.notifyCleared(n.sequence, n)
}
