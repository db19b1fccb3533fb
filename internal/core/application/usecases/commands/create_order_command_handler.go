package commands

import (
	"context"
	"time"

	"tailoring/internal/core/domain/model/activity"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/domain/model/payment"
	"tailoring/internal/core/domain/model/task"
)

// advancePaymentNote annotates the ledger entry written for money collected
// at order intake.
const advancePaymentNote = "Advance payment"

// CreateOrderCommandHandler handles the business logic for order creation.
// Persists the order with its items, assigns the initial production tasks,
// records the advance payment in the ledger and appends the creation entry
// to the order's activity log, all within one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(
//	    orderID, customerID, shopID, deadline, total, advance, notes, items, tasks, actorID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence across all aggregates.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The order starts in New status; an advance payment, when present, is applied
// immediately so the payment status reflects the money already collected.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.ShopID(),
		cmd.Deadline(),
		cmd.TotalPrice(),
		cmd.Notes(),
		cmd.Items(),
		now,
	)
	if err != nil {
		return err
	}

	if cmd.AdvancePayment().IsPositive() {
		if err = newOrder.ApplyPayment(cmd.AdvancePayment()); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	taskRepo := uow.TaskRepository()
	for _, assignment := range cmd.Tasks() {
		newTask, taskErr := task.NewTask(
			kernel.NewUUID(),
			newOrder.ID(),
			assignment.WorkerID(),
			assignment.TaskType(),
			now,
		)
		if taskErr != nil {
			return taskErr
		}

		if err = taskRepo.Add(ctx, newTask); err != nil {
			return err
		}
	}

	if cmd.AdvancePayment().IsPositive() {
		advance, paymentErr := payment.NewPayment(
			kernel.NewUUID(),
			newOrder.ID(),
			cmd.AdvancePayment(),
			payment.MethodCash,
			now,
			advancePaymentNote,
			cmd.RecordedBy(),
		)
		if paymentErr != nil {
			return paymentErr
		}

		if err = uow.PaymentRepository().Add(ctx, advance); err != nil {
			return err
		}
	}

	created, err := activity.NewOrderCreated(kernel.NewUUID(), newOrder, now)
	if err != nil {
		return err
	}

	if err = uow.ActivityRepository().Add(ctx, created); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
