package commands

import (
	"context"
	"time"

	"tailoring/internal/core/domain/services"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/orderlock"
)

// CompleteTaskCommandHandler handles the transition of a task from InProgress
// to Completed. Completing the last open task moves the whole order to
// Completed through the status resolver.
type CompleteTaskCommandHandler struct {
	uowFactory TaskUoWFactory
	locks      *orderlock.Registry
	resolver   services.StatusResolver
}

// NewCompleteTaskCommandHandler creates a handler for completing production tasks.
func NewCompleteTaskCommandHandler(
	uowFactory TaskUoWFactory,
	locks *orderlock.Registry,
	resolver services.StatusResolver,
) CompleteTaskCommandHandler {
	return CompleteTaskCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		resolver:   resolver,
	}
}

// Handle processes the complete task command.
// Only the assigned worker may complete a task; a task assigned to someone
// else is reported as not found rather than revealing its existence.
func (h *CompleteTaskCommandHandler) Handle(ctx context.Context, cmd CompleteTaskCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()
	t, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	if !t.IsAssignedTo(cmd.WorkerID()) {
		return errs.NewObjectNotFoundError("taskId", cmd.TaskID())
	}

	unlock := h.locks.Lock(t.OrderID())
	defer unlock()

	// The first read ran before the lock was held and may be stale; re-read
	// so a transition committed by a concurrent request is observed.
	t, err = taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = t.Complete(now); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, t); err != nil {
		return err
	}

	if err = resolveOrderStatus(ctx, uow, h.resolver, t.OrderID(), now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
