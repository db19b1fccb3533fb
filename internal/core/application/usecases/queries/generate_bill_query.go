package queries

import (
	"errors"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/guard"
)

var ErrGenerateBillQueryIsNotConstructed = errors.New(
	"GenerateBillQuery must be created via NewGenerateBillQuery constructor",
)

// GenerateBillQuery produces a bill for an order from its stored data.
// The bill number is derived from the order's creation year and sequence
// number, so generating the same bill twice yields identical output.
//
// Example:
//
//	query, _ := NewGenerateBillQuery(orderID)
//	handler := NewGenerateBillQueryHandler(db)
//
//	bill, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to generate bill: %w", err)
//	}
//	fmt.Printf("%s due %.2f\n", bill.BillNumber, bill.Balance)
type GenerateBillQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateBillQuery creates a query to produce an order's bill.
func NewGenerateBillQuery(orderID kernel.UUID) (GenerateBillQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GenerateBillQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	return GenerateBillQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GenerateBillQuery) Validate() error {
	return q.guard.Validate(ErrGenerateBillQueryIsNotConstructed)
}

// OrderID returns the identifier of the order being billed.
func (q GenerateBillQuery) OrderID() kernel.UUID {
	return q.orderID
}

// BillItemResponse represents one billed line item.
type BillItemResponse struct {
	Name       string
	Quantity   int
	UnitPrice  float64
	LineTotal  float64
	FabricType string
}

// GenerateBillQueryResponse represents a customer bill.
// Discount and tax are carried as explicit zero lines.
type GenerateBillQueryResponse struct {
	BillNumber    string
	OrderID       kernel.UUID
	OrderNumber   int64
	CustomerID    kernel.UUID
	ShopID        kernel.UUID
	OrderDate     time.Time
	Deadline      time.Time
	Items         []BillItemResponse
	Subtotal      float64
	Discount      float64
	Tax           float64
	Total         float64
	PaidAmount    float64
	Balance       float64
	PaymentStatus string
	Payments      []PaymentEntryResponse
	GeneratedAt   time.Time
}
