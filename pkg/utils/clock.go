package utils

import (
	"sync"
	"time"
)

// Clock supplies the current time to components that stamp records.
type Clock interface {
	NowUTC() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// NewRealClock creates a clock backed by time.Now
func NewRealClock() *RealClock {
	return &RealClock{}
}

// NowUTC returns the current time in UTC
func (c *RealClock) NowUTC() time.Time {
	return time.Now().UTC()
}

// StubClock returns a settable time. Used by tests that need equal or ordered timestamps.
type StubClock struct {
	now  time.Time
	lock sync.Mutex
}

// NewStubClock creates a stub clock frozen at the given instant
func NewStubClock(now time.Time) *StubClock {
	return &StubClock{now: now.UTC()}
}

// NowUTC returns the frozen time
func (c *StubClock) NowUTC() time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.now
}

// Set moves the clock to now
func (c *StubClock) Set(now time.Time) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.now = now.UTC()
}

// Advance moves the clock forward by d and returns the new time
func (c *StubClock) Advance(d time.Duration) time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.now = c.now.Add(d)
	return c.now
}
