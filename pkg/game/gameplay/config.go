// Package gameplay wires a level, its hazard pool and the sequence orchestrator
// into a session driven one tick at a time.
package gameplay

// Config holds the tunables of a session
type Config struct {
	// CellSize is the world size of one grid cell
	CellSize float64

	// OccupancyFactor is the share of a cell's side checked for blocking players
	OccupancyFactor float64

	// HazardLifetime is how many ticks a spawned hazard lives; zero keeps it until despawned
	HazardLifetime int

	// PlayerHalf is half the side of a player's square footprint
	PlayerHalf float64

	// MaxMessages is the message log size
	MaxMessages int

	// StaticHazards is how many permanent hazards to scatter at load time
	StaticHazards int

	// Seed drives static hazard placement
	Seed int64
}

// DefaultConfig returns the standard session settings
func DefaultConfig() Config {
	return Config{
		CellSize:        1.0,
		OccupancyFactor: 0.8,
		HazardLifetime:  3,
		PlayerHalf:      0.3,
		MaxMessages:     5,
		StaticHazards:   2,
		Seed:            1,
	}
}
