package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for screen mapping and deterministic simulation.
type RuntimeConfig struct {
	ScreenW       int     // Window width in pixels
	ScreenH       int     // Window height in pixels
	PixelsPerUnit float64 // Simulation-to-screen scale (pixels per meter)
	TickRate      int     // Physics ticks per second (default 60)
	Seed          int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       800,
		ScreenH:       600,
		PixelsPerUnit: 50,
		TickRate:      60,
		Seed:          0, // 0 means use current time in platform layer
	}
}

// FixedDelta returns the constant physics timestep in seconds. Physics always
// advances by exactly this step regardless of measured frame time; only the
// visual subsystems consume wall-clock delta.
func (c RuntimeConfig) FixedDelta() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1.0 / float64(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Current score
	Paused bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
