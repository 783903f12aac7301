package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	// Now returns the current time in UTC
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current UTC time truncated to milliseconds, the precision
// timestamps keep once encoded into snapshots and API responses
func (c *RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
