package queries

import (
	"errors"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full picture of a single order: its header,
// line items, production task board and activity history.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order's details.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order being queried.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse represents one line item of an order.
type OrderItemResponse struct {
	Name       string
	Quantity   int
	UnitPrice  float64
	FabricType string
}

// OrderTaskResponse represents one production task of an order.
type OrderTaskResponse struct {
	ID          kernel.UUID
	WorkerID    kernel.UUID
	TaskType    string
	Status      string
	AssignedAt  time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// OrderActivityResponse represents one entry of an order's activity log.
type OrderActivityResponse struct {
	ID           kernel.UUID
	ActivityType string
	Description  string
	OldStatus    *string
	NewStatus    *string
	CreatedAt    time.Time
}

// GetOrderQueryResponse represents a complete order view.
// Activities are ordered most recent first.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	Number        int64
	CustomerID    kernel.UUID
	ShopID        kernel.UUID
	Deadline      time.Time
	TotalPrice    float64
	PaidAmount    float64
	PaymentStatus string
	Status        string
	Notes         string
	CreatedAt     time.Time
	Items         []OrderItemResponse
	Tasks         []OrderTaskResponse
	Activities    []OrderActivityResponse
}
