package clock

import "time"

// Clock abstracts time so commands and the booking factory stay
// deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewRealClock() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now() }

// MockClock reports a fixed instant that tests can move forward.
type MockClock struct {
	current time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

func (c *MockClock) Now() time.Time { return c.current }

func (c *MockClock) Set(t time.Time) { c.current = t }

func (c *MockClock) Add(d time.Duration) { c.current = c.current.Add(d) }
