package engine

import (
	"sync"
	"time"
)

// Clock is the timing source that paces the tick loop.
type Clock interface {
	// Now returns a monotonic timestamp.
	Now() time.Time
	// SleepUntil blocks until t. Returns immediately if t has passed.
	SleepUntil(t time.Time)
}

// SystemClock uses the process monotonic clock.
type SystemClock struct{}

// Now returns the current time with monotonic clock reading.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// SleepUntil sleeps for the remaining time until t.
func (SystemClock) SleepUntil(t time.Time) {
	if d := time.Until(t); d > 0 {
		time.Sleep(d)
	}
}

// ManualClock is a controllable clock for tests. SleepUntil jumps straight
// to the requested time instead of blocking.
type ManualClock struct {
	mu     sync.RWMutex
	now    time.Time
	sleeps int
}

// NewManualClock creates a manual clock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current mocked time.
func (m *ManualClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SleepUntil advances the clock to t if t is in the future.
func (m *ManualClock) SleepUntil(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleeps++
	if t.After(m.now) {
		m.now = t
	}
}

// Advance moves the clock forward by d, simulating work that took d.
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Sleeps returns how many times SleepUntil was called.
func (m *ManualClock) Sleeps() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sleeps
}
