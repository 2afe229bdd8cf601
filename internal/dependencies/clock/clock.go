package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time

	// Sleep pauses the caller; the interactive loop uses it to hold a
	// message on screen before redrawing
	Sleep(d time.Duration)
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d
func (c *RealClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
