package core

// TickRate is the fixed simulation rate in ticks per second.
const TickRate = 60

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in cells
	ScreenH int   // Terminal height in cells
	Seed    int64 // Entropy used for the initial pointer reading; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: ScreenCols,
		ScreenH: ScreenRows,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// SeedPointer derives the initial pointer reading from a runtime seed.
// Terminals report no pointer position until the mouse moves, so frontends
// hand this reading to the game in place of a real one.
func SeedPointer(seed int64) (x, y uint16) {
	u := uint64(seed)
	return uint16(u ^ u>>32), uint16(u>>16 ^ u>>48)
}
