package core

// RuntimeConfig contains frontend options chosen on the command line.
// None of it reaches the game core; it only shapes how a simulator shows the
// board.
type RuntimeConfig struct {
	Scale int  // Window pixels per display pixel
	Tint  Tint // Colour of lit pixels
	Mute  bool // Silence the simulated buzzer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Scale: 6,
		Tint:  TintWhite,
	}
}
