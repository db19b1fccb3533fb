package ports

import (
	"context"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for production tasks.
type TaskRepository interface {
	// Add persists a new task.
	Add(ctx context.Context, t *task.Task) error

	// Update persists a task's status transition and timestamps.
	Update(ctx context.Context, t *task.Task) error

	// Get retrieves a task by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such task exists.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)

	// GetAllByOrder retrieves every task belonging to the given order.
	// Used by the status resolver after each task transition.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*task.Task, error)
}
