package queries

import (
	"errors"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/guard"
)

var ErrGetPaymentInfoQueryIsNotConstructed = errors.New(
	"GetPaymentInfoQuery must be created via NewGetPaymentInfoQuery constructor",
)

// GetPaymentInfoQuery retrieves the payment summary of a single order:
// its totals, derived payment status and the full ledger of recorded payments.
//
// Example:
//
//	query, _ := NewGetPaymentInfoQuery(orderID)
//	handler := NewGetPaymentInfoQueryHandler(db)
//
//	info, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get payment info: %w", err)
//	}
//	fmt.Printf("Balance due: %.2f\n", info.Balance)
type GetPaymentInfoQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentInfoQuery creates a query for an order's payment summary.
func NewGetPaymentInfoQuery(orderID kernel.UUID) (GetPaymentInfoQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPaymentInfoQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	return GetPaymentInfoQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentInfoQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentInfoQueryIsNotConstructed)
}

// OrderID returns the identifier of the order being queried.
func (q GetPaymentInfoQuery) OrderID() kernel.UUID {
	return q.orderID
}

// PaymentEntryResponse represents one recorded payment in an order's ledger.
type PaymentEntryResponse struct {
	ID         kernel.UUID
	Amount     float64
	Method     string
	Date       time.Time
	Note       string
	RecordedBy kernel.UUID
}

// GetPaymentInfoQueryResponse represents an order's payment summary.
// Payments are ordered most recent first.
type GetPaymentInfoQueryResponse struct {
	OrderID       kernel.UUID
	TotalPrice    float64
	PaidAmount    float64
	Balance       float64
	PaymentStatus string
	Payments      []PaymentEntryResponse
}
