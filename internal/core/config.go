package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// Params carries launch parameters (e.g. "operator") the way a web page
	// carries query parameters. Games ignore keys they do not understand.
	Params map[string]string
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

// Param returns a launch parameter, or "" when it is not set.
func (c RuntimeConfig) Param(key string) string {
	if c.Params == nil {
		return ""
	}
	return c.Params[key]
}

// WithParam returns a copy of the config with the given launch parameter set.
func (c RuntimeConfig) WithParam(key, value string) RuntimeConfig {
	params := make(map[string]string, len(c.Params)+1)
	for k, v := range c.Params {
		params[k] = v
	}
	params[key] = value
	c.Params = params
	return c
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the current round has ended (lost or won)
	Paused   bool // Whether the game is paused
}

// RoundResult summarizes a finished round for the platform's journal.
type RoundResult struct {
	Round     int    // 1-based round counter within the session
	Operator  string // Operator identifier ("less", "greater", "equal")
	Won       bool
	LivesLeft int
	Mistakes  int // Wrong tiles and bombs touched during the round
	Score     int // Session score after the round
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState

	// Finished is set on the tick a round reaches a terminal state.
	Finished *RoundResult
}
