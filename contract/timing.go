package contract

import (
	"time"
)

// Timestamp is an opaque reading of the monotonic clock, created with [StartTime].
type Timestamp struct {
	at time.Time
}

// StartTime returns the current monotonic time to be used with [CheckTimeBudget].
func StartTime() Timestamp {
	return Timestamp{at: time.Now()}
}

// Elapsed returns the time since the Timestamp was taken.
// This uses the monotonic clock, so wall clock adjustments don't affect it.
func (t Timestamp) Elapsed() time.Duration {
	return time.Since(t.at)
}

// CheckTimeBudget checks the time since start against maxDuration using the [Default] Checker.
func CheckTimeBudget(start Timestamp, maxDuration time.Duration) {
	defaultChecker.CheckTimeBudget(start, maxDuration)
}

// CheckTimeBudget panics with a [*TimeBudgetError] if the time since start has reached maxDuration.
// Reaching maxDuration exactly counts as exceeding it.
// Nothing is checked while the time budget is bypassed, see [Checker.BypassTimeBudget].
func (c *Checker) CheckTimeBudget(start Timestamp, maxDuration time.Duration) {
	if c.bypass.Load() {
		return
	}
	elapsed := start.Elapsed()
	c.evaluate(elapsed < maxDuration, func() error {
		return &TimeBudgetError{Elapsed: elapsed, Max: maxDuration}
	})
}
