package core

import "time"

// DefaultPace is the tick interval used when none is configured.
const DefaultPace = 5 * time.Millisecond

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Pace    time.Duration // Interval between simulation ticks
	Seed    int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Pace:    DefaultPace,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the configured pace, falling back to DefaultPace.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.Pace <= 0 {
		return DefaultPace
	}
	return c.Pace
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Paused bool   // Whether the game is paused
	Notice string // Modal message awaiting acknowledgement, empty if none
}

// RoundResult describes a finished round.
type RoundResult struct {
	Outcome string // "won" or "lost"
	Ticks   int    // Ticks played in the round
	Cleared int    // Blocks destroyed in the round
	Seed    int64  // Seed the round's grid was generated from
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Round *RoundResult // Set on the tick a round ends
}
