package order

import (
	"errors"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for one customer's garment-production request.
// It owns the order's items, the running payment ledger totals and the
// aggregate status derived from the order's production tasks.
//
// Order maintains these invariants:
//   - 0 <= paidAmount <= totalPrice + tolerance at every observable point
//   - paymentStatus is always DerivePaymentStatus(paidAmount, totalPrice)
//   - status transitions follow the lifecycle state machine; terminal
//     states (Delivered, Cancelled) admit no further transitions
//   - items are fixed at creation and never mutated
//
// The aggregate is mutated only through its methods; persistence restores it
// via RestoreOrder. Callers must serialize mutations per order (see the
// command handlers); the aggregate itself is not goroutine safe.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is a monotonically increasing sequence assigned by the store.
	// It is zero for orders not yet persisted and feeds the bill number.
	number int64

	// customerID and shopID are opaque references, not owned by the aggregate
	customerID kernel.UUID
	shopID     kernel.UUID

	// deadline is the promised completion date
	deadline time.Time

	// totalPrice is fixed at creation
	totalPrice kernel.Money

	// paidAmount is the running sum of the payment ledger
	paidAmount kernel.Money

	// paymentStatus is derived from paidAmount vs totalPrice
	paymentStatus PaymentStatus

	// status is the aggregate lifecycle state
	status Status

	notes     string
	createdAt time.Time

	items []Item

	isConstructed bool
}

// NewOrder creates a new Order in New status with a zero paid amount.
// The order must reference a customer and a shop, have at least one item
// and a deadline. The advance payment, if any, is applied afterwards through
// ApplyPayment so the ledger invariants hold from the start.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	shopID kernel.UUID,
	deadline time.Time,
	totalPrice kernel.Money,
	notes string,
	items []Item,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusNew,
		paymentStatus: PaymentPending,
		notes:         notes,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setShopID(shopID),
		o.setDeadline(deadline),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.totalPrice = totalPrice
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without replaying its
// history. The stored status, paid amount and payment status are trusted but
// still validated for internal consistency.
func RestoreOrder(
	id kernel.UUID,
	number int64,
	customerID kernel.UUID,
	shopID kernel.UUID,
	deadline time.Time,
	totalPrice kernel.Money,
	paidAmount kernel.Money,
	paymentStatus PaymentStatus,
	status Status,
	notes string,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		shopID.Validate(),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		number:        number,
		customerID:    customerID,
		shopID:        shopID,
		deadline:      deadline,
		totalPrice:    totalPrice,
		paidAmount:    paidAmount,
		paymentStatus: paymentStatus,
		status:        status,
		notes:         notes,
		createdAt:     createdAt,
		items:         append([]Item(nil), items...),
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the store-assigned order sequence number.
// Zero means the order has not been persisted yet.
func (o *Order) Number() int64 {
	return o.number
}

// CustomerID returns the reference to the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ShopID returns the reference to the shop the order belongs to.
func (o *Order) ShopID() kernel.UUID {
	return o.shopID
}

// Deadline returns the promised completion date.
func (o *Order) Deadline() time.Time {
	return o.deadline
}

// TotalPrice returns the order's total price, fixed at creation.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// PaidAmount returns the running sum of payments applied to the order.
func (o *Order) PaidAmount() kernel.Money {
	return o.paidAmount
}

// Balance returns totalPrice minus paidAmount, floored at zero.
func (o *Order) Balance() kernel.Money {
	return o.totalPrice.Sub(o.paidAmount)
}

// PaymentStatus returns the tiered payment status derived from the ledger.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Notes returns the free-form notes attached at creation.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the creation timestamp, set once.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// ApplyPayment records a payment amount against the order's ledger totals.
//
// The amount must be positive and must not exceed the remaining balance
// beyond the monetary tolerance; otherwise an OverpaymentError is returned
// and the order is left unchanged. On success the paid amount grows by the
// payment and the payment status is recomputed.
func (o *Order) ApplyPayment(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("payment amount")
	}

	if amount.Exceeds(o.Balance()) {
		return errs.NewOverpaymentError(amount.Amount(), o.Balance().Amount())
	}

	o.paidAmount = o.paidAmount.Add(amount)
	o.paymentStatus = DerivePaymentStatus(o.paidAmount, o.totalPrice)
	return nil
}

// ChangeStatus moves the order to the status computed by the status resolver.
//
// Terminal states reject any change. The resolver only produces pipeline
// statuses (Cutting, Stitching, Ironing, Completed), so Delivered and
// Cancelled cannot be reached through this method; use Deliver and Cancel.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if o.status.IsFinal() {
		return errs.NewInvalidStateErrorWithCause(
			"order status",
			errors.New(o.status.String()+" permits no further status changes"),
		)
	}

	o.status = newStatus
	return nil
}

// Deliver marks a completed order as handed over to the customer.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks the order as cancelled. Allowed from any non-terminal state.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopId", err)
	}
	o.shopID = id
	return nil
}

func (o *Order) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("deadline")
	}
	o.deadline = deadline
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = append([]Item(nil), items...)
	return nil
}
