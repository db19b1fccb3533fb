// Package activity contains the append-only activity log of the tailoring domain.
//
// Every status transition and payment on an order produces one Activity record
// with a generated human-readable description. Entries are immutable once
// written and are never deleted; together with the payment ledger they form
// the complete audit trail of an order.
package activity

import (
	"errors"
	"fmt"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
)

var (
	// ErrActivityIsNotConstructed is returned when an Activity instance was not
	// created through one of the factory methods.
	ErrActivityIsNotConstructed = errors.New("Activity must be created via one of its factory methods")
)

// deadlineHintWindowDays is the inclusive window, in days until the deadline,
// within which status descriptions carry a delivery countdown hint.
const deadlineHintWindowDays = 3

// Activity is one immutable entry in an order's audit trail.
type Activity struct {
	id           kernel.UUID
	orderID      kernel.UUID
	activityType Type
	description  string
	oldStatus    *string
	newStatus    *string
	createdAt    time.Time

	isConstructed bool
}

// NewOrderCreated records the creation of an order with its initial status.
func NewOrderCreated(id kernel.UUID, o *order.Order, now time.Time) (*Activity, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	newStatus := o.Status().String()
	return newActivity(id, o.ID(), TypeOrderCreated, "New order created", nil, &newStatus, now)
}

// NewStatusChanged records an order status transition. The description names
// the stage the order progressed to; for Stitching and Completed it carries a
// delivery countdown hint when the deadline is within the hint window.
func NewStatusChanged(
	id kernel.UUID,
	o *order.Order,
	oldStatus order.Status,
	newStatus order.Status,
	now time.Time,
) (*Activity, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	oldStr := oldStatus.String()
	newStr := newStatus.String()
	description := statusChangeDescription(newStatus, o.Deadline(), now)
	return newActivity(id, o.ID(), TypeStatusChanged, description, &oldStr, &newStr, now)
}

// NewPaymentReceived records a successful payment with the amount in the description.
func NewPaymentReceived(id kernel.UUID, o *order.Order, amount kernel.Money, now time.Time) (*Activity, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Payment of ₹%s received", amount)
	return newActivity(id, o.ID(), TypePaymentReceived, description, nil, nil, now)
}

// NewOrderDelivered records handover of the order to the customer.
func NewOrderDelivered(id kernel.UUID, o *order.Order, now time.Time) (*Activity, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	newStatus := order.StatusDelivered.String()
	return newActivity(id, o.ID(), TypeOrderDelivered, "Order delivered successfully", nil, &newStatus, now)
}

// NewOrderCancelled records cancellation of the order with an optional reason.
func NewOrderCancelled(id kernel.UUID, o *order.Order, reason string, now time.Time) (*Activity, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	description := "Order cancelled"
	if reason != "" {
		description += ": " + reason
	}

	newStatus := order.StatusCancelled.String()
	return newActivity(id, o.ID(), TypeOrderCancelled, description, nil, &newStatus, now)
}

// RestoreActivity reconstructs an Activity from persistence.
func RestoreActivity(
	id kernel.UUID,
	orderID kernel.UUID,
	activityType Type,
	description string,
	oldStatus *string,
	newStatus *string,
	createdAt time.Time,
) (*Activity, error) {
	return newActivity(id, orderID, activityType, description, oldStatus, newStatus, createdAt)
}

func newActivity(
	id kernel.UUID,
	orderID kernel.UUID,
	activityType Type,
	description string,
	oldStatus *string,
	newStatus *string,
	createdAt time.Time,
) (*Activity, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		activityType.Validate(),
	); err != nil {
		return nil, err
	}

	return &Activity{
		id:            id,
		orderID:       orderID,
		activityType:  activityType,
		description:   description,
		oldStatus:     oldStatus,
		newStatus:     newStatus,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// statusChangeDescription generates the customer-facing text for a status
// transition. The countdown hint applies only to Stitching and Completed,
// and only when the deadline is 0 to 3 whole days away.
func statusChangeDescription(newStatus order.Status, deadline time.Time, now time.Time) string {
	var base string

	switch newStatus {
	case order.StatusCutting:
		base = "Your order progressed to Cutting stage"
	case order.StatusStitching:
		base = "Your order progressed to Stitching stage"
	case order.StatusIroning:
		base = "Your order progressed to Ironing stage"
	case order.StatusCompleted:
		base = "Your order is completed and ready for pickup"
	case order.StatusDelivered:
		base = "Your order has been delivered"
	case order.StatusCancelled:
		base = "Your order has been cancelled"
	default:
		base = "Order status updated to " + newStatus.String()
	}

	if !deadline.IsZero() && (newStatus == order.StatusCompleted || newStatus == order.StatusStitching) {
		daysUntil := wholeDaysBetween(now, deadline)
		if daysUntil >= 0 && daysUntil <= deadlineHintWindowDays {
			plural := "s"
			if daysUntil == 1 {
				plural = ""
			}
			base += fmt.Sprintf(" - Delivery expected in %d day%s", daysUntil, plural)
		}
	}

	return base
}

// wholeDaysBetween returns the number of calendar days from a to b,
// ignoring the time of day.
func wholeDaysBetween(a, b time.Time) int {
	aDate := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bDate := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bDate.Sub(aDate).Hours() / 24)
}

// Validate ensures the Activity instance was properly constructed through a factory.
func (a *Activity) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrActivityIsNotConstructed
	}
	return nil
}

// ID returns the activity's unique identifier.
func (a *Activity) ID() kernel.UUID {
	return a.id
}

// OrderID returns the reference to the order the entry belongs to.
func (a *Activity) OrderID() kernel.UUID {
	return a.orderID
}

// ActivityType returns the classification of the entry.
func (a *Activity) ActivityType() Type {
	return a.activityType
}

// Description returns the generated human-readable text.
func (a *Activity) Description() string {
	return a.description
}

// OldStatus returns the order status before the transition, if recorded.
func (a *Activity) OldStatus() *string {
	return a.oldStatus
}

// NewStatus returns the order status after the transition, if recorded.
func (a *Activity) NewStatus() *string {
	return a.newStatus
}

// CreatedAt returns when the entry was written.
func (a *Activity) CreatedAt() time.Time {
	return a.createdAt
}
