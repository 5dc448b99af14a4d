package contract

import (
	"fmt"
	"strconv"
)

// Snapshot is the captured state of a list of values, created with [Capture] or [CreateInvariants].
// It should be verified once after the bracketed operation, and it's never modified.
type Snapshot struct {
	tokens []token
}

// Len returns the number of captured values.
func (s Snapshot) Len() int {
	return len(s.tokens)
}

// Capture creates a [Snapshot] of the given values, in order.
//
//	inv := contract.Capture(contract.Text(user.ID), contract.Int(user.Version))
func Capture(values ...Value) Snapshot {
	tokens := make([]token, len(values))
	for i, v := range values {
		tokens[i] = tokenOf(v)
	}
	return Snapshot{tokens: tokens}
}

// CreateInvariants is like [Capture], but classifies each value at runtime with [ValueOf].
// An unsupported value panics with an [*UnsupportedTypeError].
func CreateInvariants(values ...any) Snapshot {
	return Capture(valuesOf(values)...)
}

// Verify checks the ending values against the snapshot with the [Default] Checker.
func Verify(snapshot Snapshot, values ...Value) {
	defaultChecker.Verify(snapshot, values...)
}

// VerifyNamed checks the ending values against the snapshot with the [Default] Checker, using names in failure messages.
func VerifyNamed(snapshot Snapshot, names []string, values ...Value) {
	defaultChecker.VerifyNamed(snapshot, names, values...)
}

// CheckInvariants is like [Verify], but classifies each value at runtime with [ValueOf].
func CheckInvariants(snapshot Snapshot, values ...any) {
	defaultChecker.CheckInvariants(snapshot, values...)
}

// CheckNamedInvariants is like [VerifyNamed], but classifies each value at runtime with [ValueOf].
func CheckNamedInvariants(snapshot Snapshot, names []string, values ...any) {
	defaultChecker.CheckNamedInvariants(snapshot, names, values...)
}

// Verify panics with an [*InvariantError] if the number of values doesn't match the snapshot, or if any value changed.
// Values are named "Invariant-0", "Invariant-1", and so on in failure messages.
func (c *Checker) Verify(snapshot Snapshot, values ...Value) {
	c.verify(snapshot, syntheticNames(snapshot.Len()), values)
}

// VerifyNamed is like [Checker.Verify], but the number of names must also match the snapshot.
func (c *Checker) VerifyNamed(snapshot Snapshot, names []string, values ...Value) {
	c.verify(snapshot, names, values)
}

func (c *Checker) CheckInvariants(snapshot Snapshot, values ...any) {
	c.verify(snapshot, syntheticNames(snapshot.Len()), valuesOf(values))
}

func (c *Checker) CheckNamedInvariants(snapshot Snapshot, names []string, values ...any) {
	c.verify(snapshot, names, valuesOf(values))
}

func (c *Checker) verify(snapshot Snapshot, names []string, values []Value) {
	ending := make([]token, len(values))
	for i, v := range values {
		ending[i] = tokenOf(v)
	}

	c.evaluate(len(snapshot.tokens) == len(ending), func() error {
		return &InvariantError{
			Reason: fmt.Sprintf("number of starting and ending values do not match (%d != %d)", len(snapshot.tokens), len(ending)),
		}
	})
	c.evaluate(len(snapshot.tokens) == len(names), func() error {
		return &InvariantError{
			Reason: fmt.Sprintf("number of values does not match number of names (%d != %d)", len(snapshot.tokens), len(names)),
		}
	})

	mismatches := collectErrors()
	for i, start := range snapshot.tokens {
		end := ending[i]
		if start.equal(end) {
			continue
		}
		mismatches.add(&Mismatch{
			Index: i,
			Name:  names[i],
			Start: start.String(),
			End:   end.String(),
		})
	}
	c.evaluate(mismatches.result() == nil, func() error {
		return &InvariantError{
			Reason:     fmt.Sprintf("%d of %d values changed", mismatches.len(), len(snapshot.tokens)),
			mismatches: mismatches,
		}
	})
}

func syntheticNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = "Invariant-" + strconv.Itoa(i)
	}
	return names
}
