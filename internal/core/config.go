package core

// RuntimeConfig contains configuration passed to the host at startup.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Frames per second delivered by the host (default 60)
	Seed      int64 // RNG seed, 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
	}
}

// GameState is the status the host reads after every frame.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the session has ended
	Reason   string // Why it ended, empty while running
}
