package activity

import (
	"fmt"

	"tailoring/internal/pkg/errs"
)

// Type classifies an activity log entry.
type Type int

const (
	// TypeUnknown represents an invalid or undefined activity type.
	TypeUnknown Type = iota

	// TypeOrderCreated records the creation of an order.
	TypeOrderCreated

	// TypeStatusChanged records an order status transition.
	TypeStatusChanged

	// TypePaymentReceived records a successful payment.
	TypePaymentReceived

	// TypeOrderDelivered records handover to the customer.
	TypeOrderDelivered

	// TypeOrderCancelled records cancellation of the order.
	TypeOrderCancelled
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:         "UNKNOWN",
		TypeOrderCreated:    "ORDER_CREATED",
		TypeStatusChanged:   "STATUS_CHANGED",
		TypePaymentReceived: "PAYMENT_RECEIVED",
		TypeOrderDelivered:  "ORDER_DELIVERED",
		TypeOrderCancelled:  "ORDER_CANCELLED",
	}
}

// TypeFromString parses an activity type from its persisted representation.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if t != TypeUnknown && str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"activityType", fmt.Errorf("%q is not a valid activity type", s))
}

// Validate checks if the Type value is one of the defined activity types.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"activityType", fmt.Errorf("%d is not a valid activity type", t))
	}
	return nil
}

// String returns the uppercase name of the activity type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
