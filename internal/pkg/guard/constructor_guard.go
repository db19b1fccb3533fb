// Package guard provides a defensive programming primitive that ensures value
// objects, commands, and queries are only created through their designated
// constructor functions. Embedding a ConstructorGuard in a struct makes a
// zero-value instance detectable during validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// constructor. The zero value fails validation; only NewConstructorGuard
// produces a passing guard.
//
// Example usage:
//
//	type ApplyPaymentCommand struct {
//	    orderID kernel.UUID
//	    amount  kernel.Money
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewApplyPaymentCommand(...) (ApplyPaymentCommand, error) {
//	    // validate inputs ...
//	    return ApplyPaymentCommand{..., guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ApplyPaymentCommand) Validate() error {
//	    return c.guard.Validate(ErrApplyPaymentCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
