package commands

import (
	"errors"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/payment"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/guard"
)

var ErrApplyPaymentCommandIsNotConstructed = errors.New(
	"ApplyPaymentCommand must be created via NewApplyPaymentCommand constructor",
)

// ApplyPaymentCommand represents a request to record a payment against an
// order's outstanding balance.
type ApplyPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	amount     kernel.Money
	method     payment.Method
	note       string
	date       *time.Time
	recordedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewApplyPaymentCommand creates a command to record a payment.
// The amount must be positive; the balance check happens inside the order
// aggregate under the order's lock. A nil date means the payment is dated
// at the moment it is recorded.
func NewApplyPaymentCommand(
	orderID kernel.UUID,
	amount kernel.Money,
	method payment.Method,
	note string,
	date *time.Time,
	recordedBy kernel.UUID,
) (ApplyPaymentCommand, error) {
	cmd := ApplyPaymentCommand{
		note:  note,
		date:  date,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
		cmd.setMethod(method),
		cmd.setRecordedBy(recordedBy),
	); err != nil {
		return ApplyPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyPaymentCommand) Validate() error {
	return c.guard.Validate(ErrApplyPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c ApplyPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the payment amount.
func (c ApplyPaymentCommand) Amount() kernel.Money {
	return c.amount
}

// Method returns how the payment was made.
func (c ApplyPaymentCommand) Method() payment.Method {
	return c.method
}

// Note returns the free-form note attached to the payment.
func (c ApplyPaymentCommand) Note() string {
	return c.note
}

// Date returns the payment date supplied by the caller, or nil when the
// payment should be dated at recording time.
func (c ApplyPaymentCommand) Date() *time.Time {
	return c.date
}

// RecordedBy returns the user who recorded the payment.
func (c ApplyPaymentCommand) RecordedBy() kernel.UUID {
	return c.recordedBy
}

func (c *ApplyPaymentCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = id
	return nil
}

func (c *ApplyPaymentCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}
	c.amount = amount
	return nil
}

func (c *ApplyPaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}

func (c *ApplyPaymentCommand) setRecordedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recordedBy", err)
	}
	c.recordedBy = id
	return nil
}
