// Package entities defines the hazards and players that share the maze.
package entities

import "frostfire/pkg/engine/world"

// ActionKind is the kind of hazard a sequence step spawns
type ActionKind int

const (
	KindNone ActionKind = iota // Unspecified; never valid for a step
	KindHot                    // Flame burst, harms the Frost role
	KindCold                   // Ice spike, harms the Ember role
)

// HazardInfo contains display information for each hazard kind
type HazardInfo struct {
	Name   string
	Icon   string
	Markup string // Message markup tag, e.g. HOT{...}
}

// HazardTypes maps hazard kinds to their display information.
// KindNone has no entry.
var HazardTypes = map[ActionKind]HazardInfo{
	KindHot: {
		Name:   "Flame Burst",
		Icon:   "▲",
		Markup: "HOT",
	},
	KindCold: {
		Name:   "Ice Spike",
		Icon:   "◆",
		Markup: "COLD",
	},
}

// IsValid reports whether the kind can be spawned by a sequence step
func (k ActionKind) IsValid() bool {
	_, ok := HazardTypes[k]
	return ok
}

// String returns the lower-case kind name
func (k ActionKind) String() string {
	switch k {
	case KindHot:
		return "hot"
	case KindCold:
		return "cold"
	case KindNone:
		return "none"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name
func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Tag wraps text in the kind's message markup, e.g. HOT{text}.
// Kinds without markup return text unchanged.
func (k ActionKind) Tag(text string) string {
	info, ok := HazardTypes[k]
	if !ok || info.Markup == "" {
		return text
	}
	return info.Markup + "{" + text + "}"
}

// KindForMarkup returns the kind whose markup tag is name
func KindForMarkup(name string) (ActionKind, bool) {
	for k, info := range HazardTypes {
		if info.Markup == name {
			return k, true
		}
	}
	return KindNone, false
}

// Hazard is one spawned hazard instance.
// Destroy may be reached from several paths (expiry, despawn, level teardown);
// every call is reported to the listeners, which must tolerate repeats.
type Hazard struct {
	ID     int
	Kind   ActionKind
	Center world.Vec2

	// TicksLeft counts down to expiry; zero or less means it never expires on its own
	TicksLeft int

	destroyed bool
	listeners []func()
}

// NewHazard creates a live hazard
func NewHazard(id int, kind ActionKind, center world.Vec2, lifetime int) *Hazard {
	return &Hazard{
		ID:        id,
		Kind:      kind,
		Center:    center,
		TicksLeft: lifetime,
	}
}

// OnDestroyed subscribes fn to the hazard's destruction event
func (h *Hazard) OnDestroyed(fn func()) {
	h.listeners = append(h.listeners, fn)
}

// Destroy marks the hazard destroyed and fires the destruction event
func (h *Hazard) Destroy() {
	h.destroyed = true
	for _, fn := range h.listeners {
		fn()
	}
}

// IsDestroyed returns true once Destroy has been called
func (h *Hazard) IsDestroyed() bool {
	return h.destroyed
}

// GetIcon returns the map icon for this hazard
func (h *Hazard) GetIcon() string {
	return HazardTypes[h.Kind].Icon
}
