package clocktest

import (
	"time"

	"academy-api/internal/clock"
)

// Mock is a controllable Clock for tests
type Mock struct {
	CurrentTime time.Time
}

var _ clock.Clock = (*Mock)(nil)

// NewMock creates a Mock set to the given time
func NewMock(t time.Time) *Mock {
	return &Mock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *Mock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward by the given duration
func (c *Mock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
