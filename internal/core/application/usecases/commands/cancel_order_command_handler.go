package commands

import (
	"context"
	"time"

	"tailoring/internal/core/domain/model/activity"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/orderlock"
)

// CancelOrderCommandHandler handles order cancellation.
// Any order that has not reached a final status can be cancelled; the
// transition and its audit entry are persisted atomically.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *orderlock.Registry
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	locks *orderlock.Registry,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the cancel order command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locks.Lock(cmd.OrderID())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	cancelled, err := activity.NewOrderCancelled(kernel.NewUUID(), o, cmd.Reason(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.ActivityRepository().Add(ctx, cancelled); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
