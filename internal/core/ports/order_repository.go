package ports

import (
	"context"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate
	// (status, paid amount, payment status). Items are never updated.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
