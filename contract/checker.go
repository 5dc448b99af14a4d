package contract

import (
	"sync/atomic"
)

// Checker owns the mutable configuration used by checks: the time budget bypass flag and an optional [ViolationHandler].
// The package-level functions use the [Default] Checker, but a separate Checker can be created with [NewChecker] to keep tests isolated from each other.
//
// A Checker is safe for concurrent use.
// Changes to its configuration are visible to checks started afterward on any goroutine, but they aren't synchronized with checks already in progress.
type Checker struct {
	bypass  atomic.Bool
	handler atomic.Pointer[ViolationHandler]
}

var defaultChecker = NewChecker().LoadEnv()

// Default returns the Checker used by the package-level functions.
// Its time budget bypass flag is initialized from the environment, see [Checker.LoadEnv].
func Default() *Checker {
	return defaultChecker
}

// NewChecker creates a Checker with time budget checks enabled and no [ViolationHandler].
func NewChecker() *Checker {
	return &Checker{}
}

// BypassTimeBudget enables or disables bypassing time budget checks.
func (c *Checker) BypassTimeBudget(bypass bool) *Checker {
	c.bypass.Store(bypass)
	return c
}

// TimeBudgetBypassed reports whether time budget checks are currently bypassed.
func (c *Checker) TimeBudgetBypassed() bool {
	return c.bypass.Load()
}

// HandleViolations sets a [ViolationHandler] that's called with each failure right before it panics.
// Passing nil removes the current handler.
func (c *Checker) HandleViolations(handler ViolationHandler) *Checker {
	if handler == nil {
		c.handler.Store(nil)
		return c
	}
	c.handler.Store(&handler)
	return c
}

func (c *Checker) fail(err error) {
	if h := c.handler.Load(); h != nil {
		(*h).HandleViolation(err)
	}
	panic(err)
}

// evaluate is the single point where every check turns a false result into a failure.
func (c *Checker) evaluate(ok bool, failure func() error) {
	if !ok {
		c.fail(failure())
	}
}
