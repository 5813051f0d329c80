package model

import "time"

// DefaultTickPeriod is how often the rules are evaluated unless overridden.
const DefaultTickPeriod = 500 * time.Millisecond

// TickTimer is a repeating countdown advanced by the host's frame time.
type TickTimer struct {
	period  time.Duration
	elapsed time.Duration
}

// NewTickTimer returns a timer firing every period. Non-positive periods fall
// back to DefaultTickPeriod.
func NewTickTimer(period time.Duration) *TickTimer {
	if period <= 0 {
		period = DefaultTickPeriod
	}
	return &TickTimer{period: period}
}

// Tick advances the timer by delta and reports whether a period completed.
// It fires at most once per call; whole periods beyond the first are dropped
// so that a long stall does not trigger a burst of ticks.
func (t *TickTimer) Tick(delta time.Duration) bool {
	if delta > 0 {
		t.elapsed += delta
	}
	if t.elapsed < t.period {
		return false
	}
	t.elapsed %= t.period
	return true
}

// Period returns the firing interval.
func (t *TickTimer) Period() time.Duration { return t.period }

// Reset discards any accumulated time.
func (t *TickTimer) Reset() { t.elapsed = 0 }
