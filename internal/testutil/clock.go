package testutil

import "time"

// FixedClock implements clock.Clock with a configurable frozen time and
// elapsed duration, letting tests control both the current moment and
// how long an operation appears to have taken.
type FixedClock struct {
	// FixedTime is returned from every Now call.
	FixedTime time.Time

	// Elapsed is returned from every Since call regardless of the argument.
	Elapsed time.Duration
}

// Now returns the configured fixed time.
func (c *FixedClock) Now() time.Time {
	return c.FixedTime
}

// Since returns the configured elapsed duration.
func (c *FixedClock) Since(_ time.Time) time.Duration {
	return c.Elapsed
}
