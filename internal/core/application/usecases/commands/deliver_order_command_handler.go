package commands

import (
	"context"
	"time"

	"tailoring/internal/core/domain/model/activity"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/orderlock"
)

// DeliverOrderCommandHandler handles the final handover of a completed order.
// Delivery only succeeds from Completed status; the transition and its audit
// entry are persisted atomically.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *orderlock.Registry
}

// NewDeliverOrderCommandHandler creates a handler for order delivery.
func NewDeliverOrderCommandHandler(
	uowFactory OrderUoWFactory,
	locks *orderlock.Registry,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the deliver order command.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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

	if err = o.Deliver(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	delivered, err := activity.NewOrderDelivered(kernel.NewUUID(), o, time.Now())
	if err != nil {
		return err
	}

	if err = uow.ActivityRepository().Add(ctx, delivered); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
