/*
Package contract provides runtime design-by-contract checks.

There are a few groups of checks, and they're intended to be used together around an operation:
  - Require checks state preconditions. A failure means the caller passed something invalid.
  - Ensure checks state postconditions. A failure means the operation didn't keep its own promise.
  - Invariants are captured before an operation with [Capture] or [CreateInvariants], and verified after with [Verify] or [CheckInvariants].
  - A time budget is checked with [StartTime] and [CheckTimeBudget].

Every failure panics with a typed error: [*Violation], [*InvariantError], or [*TimeBudgetError].
Each of these wraps a sentinel ([ErrRequireViolation], [ErrEnsureViolation], [ErrInvariantCheck], [ErrTimeBudgetExceeded]) so [errors.Is] can tell them apart.
Use [Recover] in a deferred call to convert a violation into a returned error.

Trying to capture a value that can't be represented in a [Snapshot] is a programming error, not a contract failure.
It panics with [*UnsupportedTypeError] and [Recover] won't swallow it.

# Usage

	func Transfer(from, to *Account, amount int64) (err error) {
		defer contract.Recover(&err)
		contract.RequireNotNil(from, "from")
		contract.RequireNotNil(to, "to")
		contract.Require(amount, func(a int64) bool { return a > 0 }, "amount must be positive")

		start := contract.StartTime()
		inv := contract.Capture(contract.Text(from.ID), contract.Text(to.ID))
		total := from.Balance + to.Balance

		from.Balance -= amount
		to.Balance += amount

		contract.Verify(inv, contract.Text(from.ID), contract.Text(to.ID))
		contract.Ensure(from.Balance+to.Balance, func(t int64) bool { return t == total }, "total balance changed")
		contract.CheckTimeBudget(start, 5*time.Millisecond)
		return nil
	}

# Time budgets

Time budget checks can get in the way under a debugger or in a slow CI environment.
They can be bypassed with [Checker.BypassTimeBudget], by setting the CONTRACT_BYPASS_TIME_BUDGET environment variable before the program starts, or with a flag registered by [Checker.BindFlags].
*/
package contract
