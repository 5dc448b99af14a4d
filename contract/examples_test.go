package contract_test

import (
	"fmt"
	"strings"

	"github.com/saylorsolutions/dbc/contract"
)

type account struct {
	ID      string
	Balance int64
}

func transfer(from, to *account, amount int64) (err error) {
	defer contract.Recover(&err)
	contract.RequireNotNilAll(from, to)
	contract.Require(amount, func(a int64) bool { return a > 0 }, "amount must be positive")

	inv := contract.Capture(contract.Text(from.ID), contract.Text(to.ID))
	total := from.Balance + to.Balance

	from.Balance -= amount
	to.Balance += amount

	contract.VerifyNamed(inv, []string{"from", "to"}, contract.Text(from.ID), contract.Text(to.ID))
	contract.Ensure(from.Balance+to.Balance, func(t int64) bool { return t == total }, "total balance changed")
	return nil
}

func Example() {
	a, b := &account{ID: "a", Balance: 100}, &account{ID: "b"}
	err := transfer(a, b, 40)
	fmt.Println(err, a.Balance, b.Balance)
	fmt.Println(transfer(a, b, -1))
	fmt.Println(transfer(a, nil, 1))
	// Output:
	// <nil> 60 40
	// Require Violation: amount must be positive
	// Require Violation: value[1] must not be nil
}

func ExampleCheckInvariants() {
	name := "config"
	inv := contract.CreateInvariants(name, 3, true)

	var err error
	func() {
		defer contract.Recover(&err)
		name = strings.ToUpper(name)
		contract.CheckInvariants(inv, name, 3, true)
	}()
	fmt.Println(err)
	// Output:
	// Invariant Check Failure: 1 of 3 values changed: Invariants, Invariant-0, do not match: ("config" != "CONFIG")
}
