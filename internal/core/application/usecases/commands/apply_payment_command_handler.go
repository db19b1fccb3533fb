package commands

import (
	"context"
	"time"

	"tailoring/internal/core/domain/model/activity"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/payment"
	"tailoring/internal/pkg/orderlock"
)

// ApplyPaymentCommandHandler handles payment recording against an order.
// Appends a ledger entry, updates the order's paid amount and payment status
// and logs the payment, all within one transaction under the order's lock so
// concurrent payments cannot push the order past its balance.
//
// Example:
//
//	handler := NewApplyPaymentCommandHandler(uowFactory, locks)
//	cmd, _ := NewApplyPaymentCommand(orderID, amount, payment.MethodUPI, "final installment", nil, actorID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to apply payment: %w", err)
//	}
type ApplyPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	locks      *orderlock.Registry
}

// NewApplyPaymentCommandHandler creates a handler for payment recording.
func NewApplyPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	locks *orderlock.Registry,
) ApplyPaymentCommandHandler {
	return ApplyPaymentCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the payment command.
// Overpayment is rejected by the order aggregate before anything is persisted.
func (h *ApplyPaymentCommandHandler) Handle(ctx context.Context, cmd ApplyPaymentCommand) error {
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

	if err = o.ApplyPayment(cmd.Amount()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	now := time.Now()
	paidAt := now
	if cmd.Date() != nil {
		paidAt = *cmd.Date()
	}

	entry, err := payment.NewPayment(
		kernel.NewUUID(),
		o.ID(),
		cmd.Amount(),
		cmd.Method(),
		paidAt,
		cmd.Note(),
		cmd.RecordedBy(),
	)
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, entry); err != nil {
		return err
	}

	received, err := activity.NewPaymentReceived(kernel.NewUUID(), o, cmd.Amount(), now)
	if err != nil {
		return err
	}

	if err = uow.ActivityRepository().Add(ctx, received); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
