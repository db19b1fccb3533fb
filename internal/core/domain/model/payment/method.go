package payment

import (
	"fmt"

	"tailoring/internal/pkg/errs"
)

// Method is the closed set of accepted payment methods.
// Methods are parsed once at the boundary and never compared as raw strings.
type Method int

const (
	// MethodUnknown represents an invalid or undefined payment method.
	MethodUnknown Method = iota

	// MethodCash is a cash payment.
	MethodCash

	// MethodCard is a debit or credit card payment.
	MethodCard

	// MethodUPI is a UPI transfer.
	MethodUPI

	// MethodBankTransfer is a direct bank transfer.
	MethodBankTransfer

	// MethodOther covers any method outside the enumerated set.
	MethodOther
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown:      "UNKNOWN",
		MethodCash:         "CASH",
		MethodCard:         "CARD",
		MethodUPI:          "UPI",
		MethodBankTransfer: "BANK_TRANSFER",
		MethodOther:        "OTHER",
	}
}

// MethodFromString parses a payment method from its persisted or wire representation.
func MethodFromString(s string) (Method, error) {
	for m, str := range getMethodStrings() {
		if m != MethodUnknown && str == s {
			return m, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks if the Method value is one of the accepted payment methods.
func (m Method) Validate() error {
	if _, ok := getMethodStrings()[m]; !ok || m == MethodUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the uppercase name of the payment method.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}
