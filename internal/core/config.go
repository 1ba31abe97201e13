package core

// RuntimeConfig contains configuration passed to scenes at initialization.
// Scenes use this for the tick rate and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 60,
		Seed:     0, // 0 means use current time in the engine
	}
}

// StepDuration returns the length of one tick in seconds.
func (c RuntimeConfig) StepDuration() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a running scene.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score     int  // Score of the current run
	HighScore int  // Best score loaded from storage
	Lives     int  // Lives remaining, including the current one
	Running   bool // Whether the run has been started
	Paused    bool // Whether the simulation is paused
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State     GameState
	Restarted bool // The scene restarted during this tick
}
