package contract

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogViolations(t *testing.T) {
	var buf strings.Builder
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{}))
	c := NewChecker().HandleViolations(LogViolations(log))

	err := panicked(func() { c.CheckTimeBudget(StartTime(), 0) })
	require.Error(t, err)
	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, `msg="Contract violation"`)
	assert.Contains(t, out, "kind=time_budget")

	assert.Panics(t, func() {
		LogViolations(nil)
	})
}

func TestChecker_HandleViolations(t *testing.T) {
	var seen []error
	Default().HandleViolations(ViolationHandlerFunc(func(err error) {
		seen = append(seen, err)
	}))
	t.Cleanup(func() {
		Default().HandleViolations(nil)
	})

	assert.Error(t, panicked(func() { RequireNotEmpty(" ") }))
	assert.Error(t, panicked(func() { EnsureNotNilAll(nil) }))
	assert.NoError(t, panicked(func() { RequireNotEmpty("ok") }))
	require.Len(t, seen, 2)
	assert.ErrorIs(t, seen[0], ErrRequireViolation)
	assert.ErrorIs(t, seen[1], ErrEnsureViolation)

	Default().HandleViolations(nil)
	assert.Error(t, panicked(func() { RequireNotEmpty("") }))
	assert.Len(t, seen, 2, "Removed handler should not be called")
}

func TestFailureKind(t *testing.T) {
	tests := map[string]error{
		"require":     &Violation{Kind: KindRequire},
		"ensure":      &Violation{Kind: KindEnsure},
		"invariant":   &InvariantError{Reason: "test"},
		"time_budget": &TimeBudgetError{},
		"unknown":     errors.New("something else"),
	}
	for expected, err := range tests {
		t.Run(expected, func(t *testing.T) {
			assert.Equal(t, expected, failureKind(err))
		})
	}
}
