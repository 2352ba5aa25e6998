package core

// RuntimeConfig contains what a backend knows about its surface when a
// session starts.
type RuntimeConfig struct {
	ScreenW  int // Surface width in backend units (cells or pixels)
	ScreenH  int // Surface height in backend units
	TickRate int // Frames per second requested from the backend
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
