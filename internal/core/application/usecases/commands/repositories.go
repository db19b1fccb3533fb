// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, per-order serialization
// where required, transaction management, and persistence.
package commands

import (
	"context"

	"tailoring/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TaskRepoFactory provides access to the task repository within a transaction.
	TaskRepoFactory interface {
		TaskRepository() ports.TaskRepository
	}

	// PaymentRepoFactory provides access to the payment ledger within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// ActivityRepoFactory provides access to the activity log within a transaction.
	ActivityRepoFactory interface {
		ActivityRepository() ports.ActivityRepository
	}

	// OrderUoW manages transactions for operations touching only the order
	// aggregate and its audit trail (deliver, cancel).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ActivityRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TaskUoW manages transactions for task transitions, which update the task,
	// re-resolve the order status and append to the audit trail as one unit.
	TaskUoW interface {
		TxManager
		TaskRepoFactory
		OrderRepoFactory
		ActivityRepoFactory
	}

	// TaskUoWFactory creates new task unit of work instances.
	TaskUoWFactory interface {
		Create() TaskUoW
	}

	// PaymentUoW manages transactions for payment application, which appends a
	// ledger entry, updates the order's totals and logs the payment as one unit.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
		ActivityRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// UoW manages transactions across every aggregate of the fulfillment core.
	// Used by order creation, which persists the order, its items, its initial
	// tasks, the optional advance payment and the creation activity atomically.
	UoW interface {
		TxManager
		OrderRepoFactory
		TaskRepoFactory
		PaymentRepoFactory
		ActivityRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
