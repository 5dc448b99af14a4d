/*
Package dbc is the root of a small design-by-contract module.
The checks themselves live in the contract package, which is meant to be imported directly by code that wants to state its preconditions, postconditions, and invariants at runtime.

This isn't a specification language, and nothing is verified statically.
Every check is evaluated eagerly where it's called, and a failure panics with a typed error that can be recovered and inspected.
*/
package dbc
