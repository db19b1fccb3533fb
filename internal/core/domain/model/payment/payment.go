// Package payment contains the Payment ledger entry of the tailoring domain.
//
// Payments are append-only: once created they are never updated or deleted.
// The order's paid amount is the running sum of its payments; the Order
// aggregate owns that derived state, this package owns the entries.
package payment

import (
	"errors"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was not
	// created through the NewPayment or RestorePayment factory methods.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")
)

// Payment is one immutable ledger entry recorded against an order.
type Payment struct {
	id         kernel.UUID
	orderID    kernel.UUID
	amount     kernel.Money
	method     Method
	date       time.Time
	note       string
	recordedBy kernel.UUID

	isConstructed bool
}

// NewPayment creates a ledger entry. The amount must be positive; the balance
// check against the order's ledger belongs to the Order aggregate, not here.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	method Method,
	date time.Time,
	note string,
	recordedBy kernel.UUID,
) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		method.Validate(),
		recordedBy.Validate(),
	); err != nil {
		return nil, err
	}

	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidError("payment amount")
	}

	if date.IsZero() {
		return nil, errs.NewValueIsRequiredError("payment date")
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		amount:        amount,
		method:        method,
		date:          date,
		note:          note,
		recordedBy:    recordedBy,
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	method Method,
	date time.Time,
	note string,
	recordedBy kernel.UUID,
) (*Payment, error) {
	return NewPayment(id, orderID, amount, method, date, note, recordedBy)
}

// Validate ensures the Payment instance was properly constructed through a factory.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the reference to the order the payment belongs to.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the paid amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// PaymentMethod returns how the payment was made.
func (p *Payment) PaymentMethod() Method {
	return p.method
}

// Date returns when the payment was made.
func (p *Payment) Date() time.Time {
	return p.date
}

// Note returns the free-form note attached to the payment.
func (p *Payment) Note() string {
	return p.note
}

// RecordedBy returns the reference to the user who recorded the payment.
func (p *Payment) RecordedBy() kernel.UUID {
	return p.recordedBy
}
