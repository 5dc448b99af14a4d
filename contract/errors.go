package contract

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrRequireViolation   = errors.New("require violation")
	ErrEnsureViolation    = errors.New("ensure violation")
	ErrInvariantCheck     = errors.New("invariant check failure")
	ErrTimeBudgetExceeded = errors.New("time budget exceeded")
	ErrUnsupportedType    = errors.New("unsupported invariant type")
)

// Violation is raised by the Require and Ensure families.
// Use [errors.Is] with [ErrRequireViolation] or [ErrEnsureViolation] to tell them apart.
type Violation struct {
	Kind    CheckKind
	Message string
}

func (v *Violation) Error() string {
	return v.Kind.String() + " Violation: " + v.Message
}

func (v *Violation) Unwrap() error {
	return v.Kind.sentinel()
}

// InvariantError is raised when a verified value differs from its captured snapshot, or when the verify call itself was malformed.
// Any per-value differences are available as [*Mismatch] through [errors.As].
type InvariantError struct {
	Reason     string
	mismatches error
}

func (e *InvariantError) Error() string {
	if e.mismatches == nil {
		return "Invariant Check Failure: " + e.Reason
	}
	return fmt.Sprintf("Invariant Check Failure: %s: %v", e.Reason, e.mismatches)
}

func (e *InvariantError) Unwrap() []error {
	if e.mismatches == nil {
		return []error{ErrInvariantCheck}
	}
	return []error{ErrInvariantCheck, e.mismatches}
}

// Mismatch describes a single value that changed between capture and verify.
type Mismatch struct {
	Index int
	Name  string
	Start string
	End   string
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("Invariants, %s, do not match: (%s != %s)", m.Name, m.Start, m.End)
}

// TimeBudgetError is raised when an operation took at least as long as its budget.
type TimeBudgetError struct {
	Elapsed time.Duration
	Max     time.Duration
}

func (e *TimeBudgetError) Error() string {
	return fmt.Sprintf("Time Budget Exceeded: (%dns >= %dns)", e.Elapsed.Nanoseconds(), e.Max.Nanoseconds())
}

func (e *TimeBudgetError) Unwrap() error {
	return ErrTimeBudgetExceeded
}

// UnsupportedTypeError is raised when a value that can't be represented in a [Snapshot] is passed to the invariant functions.
// This is a programming error, and it's never recovered by this package.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%v: invariants do not support type %s", ErrUnsupportedType, e.Type)
}

func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}

// IsViolation reports whether err is a contract failure of any kind.
// Unsupported type errors are not contract failures.
func IsViolation(err error) bool {
	return errors.Is(err, ErrRequireViolation) ||
		errors.Is(err, ErrEnsureViolation) ||
		errors.Is(err, ErrInvariantCheck) ||
		errors.Is(err, ErrTimeBudgetExceeded)
}
