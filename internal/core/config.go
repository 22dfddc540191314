package core

// RuntimeConfig contains configuration passed to games at initialization.
// The arena size lives in the game config; the screen size is only used for rendering.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Base simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes a session for the platform layer.
type GameState struct {
	Score    int
	Frogs    int     // Good frogs eaten (growth counter)
	Portals  int     // Bonus worlds entered
	Elapsed  float64 // Simulated seconds since start
	Started  bool
	Paused   bool
	GameOver bool
	Reason   string // Human readable game-over reason, empty while playing
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State   GameState
	Notices []Notice
}
