package contract

import (
	"errors"
	"log/slog"
)

// ViolationHandler is notified of a contract failure right before it panics.
// It's called synchronously on the goroutine that failed the check, see [Checker.HandleViolations].
type ViolationHandler interface {
	HandleViolation(err error)
}

// ViolationHandlerFunc adapts a function to a [ViolationHandler].
type ViolationHandlerFunc func(err error)

func (f ViolationHandlerFunc) HandleViolation(err error) {
	f(err)
}

// LogViolations creates a [ViolationHandler] that logs each failure at error level.
func LogViolations(logger *slog.Logger) ViolationHandler {
	if logger == nil {
		panic("nil logger")
	}
	return ViolationHandlerFunc(func(err error) {
		logger.Error("Contract violation", "kind", failureKind(err), "error", err)
	})
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, ErrRequireViolation):
		return "require"
	case errors.Is(err, ErrEnsureViolation):
		return "ensure"
	case errors.Is(err, ErrInvariantCheck):
		return "invariant"
	case errors.Is(err, ErrTimeBudgetExceeded):
		return "time_budget"
	default:
		return "unknown"
	}
}
