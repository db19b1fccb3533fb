// Package order contains the Order aggregate of the tailoring domain.
//
// An Order owns its line items and the payment ledger totals (paid amount,
// derived payment status) and carries the aggregate lifecycle status derived
// from the order's production tasks. The aggregate enforces the ledger and
// lifecycle invariants; task entities live in the task package and the
// status derivation rule in the services package.
package order
