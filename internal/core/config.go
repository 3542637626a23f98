// Package core holds the device-independent pieces shared by the game and
// its front ends: input actions, runtime parameters and the character
// screen buffer renderers draw into. It has no terminal dependencies.
package core

import "time"

// RuntimeConfig contains configuration passed to a game session at startup.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic tile spawns
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time
	}
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
