package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// Real implements Clock using the system clock
type Real struct{}

// New creates a new Real clock
func New() Real {
	return Real{}
}

// Now returns the current time
func (Real) Now() time.Time {
	return time.Now()
}
