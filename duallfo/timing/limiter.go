package timing

import "time"

// Limiter paces the monitor loop.
type Limiter interface {
	// WaitForNextTick blocks until it's time for the next tick.
	WaitForNextTick()

	// Reset resets the timing state, useful after pauses.
	Reset()
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless mode).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextTick() {}
func (n *noOpLimiter) Reset()           {}

// DefaultRate is the tick rate used when none is configured, in Hz.
const DefaultRate = 64.0

// TickDuration returns the duration of a single tick at rate Hz.
// Non-positive rates fall back to DefaultRate.
func TickDuration(rate float64) time.Duration {
	if rate <= 0 {
		rate = DefaultRate
	}
	return time.Duration(float64(time.Second) / rate)
}
