package common

import "time"

// FixedTimeStep is the simulation tick length in seconds (60 TPS).
const FixedTimeStep = 1.0 / 60.0

// Clock provides the current time to tick-driven systems. Gameplay code
// takes a Clock instead of calling time.Now so tests can drive time.
type Clock interface {
	Now() time.Time
}

// RealClock is the wall-clock Clock used by the game.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock advanced by hand. Zero value starts at the zero time.
type ManualClock struct {
	Current time.Time
}

func (c *ManualClock) Now() time.Time {
	return c.Current
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}
