// Package core holds the small types shared by the simulation driver and the
// frontends: semantic input actions, the colored screen buffer and the
// runtime configuration. It imports nothing outside the standard library.
package core

import "time"

// RuntimeConfig is what a frontend and the game loop need to know at start.
type RuntimeConfig struct {
	ScreenW   int   // Terminal width in characters
	ScreenH   int   // Terminal height in characters
	TickRate  int   // Simulation ticks per second, 0 = lockstep
	FrameRate int   // Frames drawn per second
	Seed      int64 // RNG seed, 0 means pick one from the clock
}

// DefaultConfig returns the classic timing: a tick every 100ms and 30 frames
// per second on an 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  10,
		FrameRate: 30,
	}
}

// TickInterval converts TickRate to a duration. Zero means lockstep.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TickRate)
}

// FrameInterval converts FrameRate to a duration. Zero means draw every loop.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FrameRate)
}

// ResolveSeed returns the configured seed or a clock-derived one.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
