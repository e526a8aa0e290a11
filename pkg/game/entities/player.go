package entities

import "frostfire/pkg/engine/world"

// Role is one of the two mutually exclusive player roles
type Role int

const (
	RoleEmber Role = iota // Hot-aligned: walks through flame, hurt by ice
	RoleFrost             // Cold-aligned: walks through ice, hurt by flame
)

// String returns the role name
func (r Role) String() string {
	switch r {
	case RoleEmber:
		return "Ember"
	case RoleFrost:
		return "Frost"
	default:
		return "Unknown"
	}
}

// Vulnerable reports whether a player of role r is harmed by hazards of kind k.
// Hot harms Frost, Cold harms Ember, and an unspecified kind counts as harming anyone.
func Vulnerable(r Role, k ActionKind) bool {
	switch k {
	case KindHot:
		return r == RoleFrost
	case KindCold:
		return r == RoleEmber
	default:
		return true
	}
}

// Player is a player actor tracked by the occupancy roster
type Player struct {
	Name string
	role Role
	pos  world.Vec2

	// Half is half the side of the player's square footprint in world units
	Half float64

	// Teleports counts how many times the player has been displaced
	Teleports int
}

// NewPlayer creates a player at the given world position
func NewPlayer(name string, role Role, pos world.Vec2, half float64) *Player {
	return &Player{
		Name: name,
		role: role,
		pos:  pos,
		Half: half,
	}
}

// Role returns the player's role
func (p *Player) Role() Role {
	return p.role
}

// Position returns the player's world position
func (p *Player) Position() world.Vec2 {
	return p.pos
}

// MoveTo sets the player's position as regular movement
func (p *Player) MoveTo(v world.Vec2) {
	p.pos = v
}

// Teleport moves the player instantly to v as a displacement
func (p *Player) Teleport(v world.Vec2) {
	p.pos = v
	p.Teleports++
}

// Bounds returns the player's square footprint
func (p *Player) Bounds() world.Rect {
	return world.SquareAt(p.pos, p.Half*2)
}
