package core

// RuntimeConfig holds the settings a front-end is started with. They
// come from the command line and the terminal, not from the game config.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters, footer included
	TickRate int   // Frames per second; 0 defers to physics.frame_rate
	Seed     int64 // Obstacle seed, 0 means seed from the current time
}

// DefaultConfig returns the settings used when the terminal size is unknown.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
