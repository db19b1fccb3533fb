package order

import (
	"fmt"

	"tailoring/internal/pkg/errs"
)

// Status represents the lifecycle state of a tailoring order.
// It implements a state machine whose intermediate states are derived from the
// production tasks belonging to the order.
//
// State transitions:
//
//	New ──> Cutting ──> Stitching ──> Ironing ──> Completed ──> Delivered
//	 │          │            │            │            │
//	 └──────────┴────────────┴────────────┴────────────┴──> Cancelled
//
// The pipeline states (Cutting, Stitching, Ironing, Completed) are not set
// directly by callers; they are computed by the status resolver from the
// order's task states. Delivered and Cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusNew is the initial status when an order is first created.
	// No production task has been started yet.
	StatusNew

	// StatusCutting indicates a cutting task is in progress.
	StatusCutting

	// StatusStitching indicates a stitching task is in progress
	// and no cutting task is.
	StatusStitching

	// StatusIroning indicates an ironing task is in progress
	// and no earlier-stage task is.
	StatusIroning

	// StatusCompleted indicates every production task has been completed.
	// The order is ready for pickup or delivery.
	StatusCompleted

	// StatusDelivered indicates the order has been handed over to the customer.
	// This is a terminal state.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before delivery.
	// This is a terminal state.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusNew:       "NEW",
		StatusCutting:   "CUTTING",
		StatusStitching: "STITCHING",
		StatusIroning:   "IRONING",
		StatusCompleted: "COMPLETED",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusNew:       "NEW",
		StatusCutting:   "CUTTING",
		StatusStitching: "STITCHING",
		StatusIroning:   "IRONING",
		StatusCompleted: "COMPLETED",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
	}
}

// StatusFromString parses a status from its persisted or wire representation.
// Statuses are parsed once at the boundary and never compared as raw strings
// internally.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is one of the defined order statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the uppercase name of the status, matching the persisted
// representation. Implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Completed -> Delivered
//
// Any other source status is rejected: an order may only be handed over
// once every production task has finished.
func (s Status) Deliver() (Status, error) {
	if s != StatusCompleted {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return StatusDelivered, nil
}

// Cancel transitions the status to Cancelled.
// Cancellation is allowed from any non-terminal state.
func (s Status) Cancel() (Status, error) {
	if s.IsFinal() {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return StatusCancelled, nil
}
