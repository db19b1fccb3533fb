package order

import (
	"fmt"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"
)

// PaymentStatus is a pure function of the order's paid amount versus its total
// price. It is never set directly: every mutation of the paid amount recomputes
// it through DerivePaymentStatus.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending means nothing has been paid yet.
	PaymentPending

	// PaymentPartial means some amount has been paid but the total is not covered.
	PaymentPartial

	// PaymentPaid means the paid amount covers the total price within tolerance.
	PaymentPaid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "UNKNOWN",
		PaymentPending:       "PENDING",
		PaymentPartial:       "PARTIAL",
		PaymentPaid:          "PAID",
	}
}

// DerivePaymentStatus computes the tiered payment status from the running paid
// amount and the fixed total price:
//
//   - paid >= total - tolerance  -> PAID
//   - 0 < paid < total-tolerance -> PARTIAL
//   - paid <= 0                  -> PENDING
func DerivePaymentStatus(paid, total kernel.Money) PaymentStatus {
	switch {
	case paid.Covers(total):
		return PaymentPaid
	case paid.IsPositive():
		return PaymentPartial
	default:
		return PaymentPending
	}
}

// PaymentStatusFromString parses a payment status from its persisted representation.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if status != PaymentStatusUnknown && str == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

// String returns the uppercase name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks if the PaymentStatus value is one of the defined statuses.
func (s PaymentStatus) Validate() error {
	if s != PaymentPending && s != PaymentPartial && s != PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}
