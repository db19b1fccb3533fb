package commands

import (
	"context"
	"time"

	"tailoring/internal/core/domain/model/activity"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/services"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/orderlock"
)

// StartTaskCommandHandler handles the transition of a task from Pending to
// InProgress. After the transition it re-derives the parent order's status
// from the full task board and logs any resulting change.
//
// Example:
//
//	handler := NewStartTaskCommandHandler(uowFactory, locks, resolver)
//	cmd, _ := NewStartTaskCommand(taskID, workerID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start task: %w", err)
//	}
type StartTaskCommandHandler struct {
	uowFactory TaskUoWFactory
	locks      *orderlock.Registry
	resolver   services.StatusResolver
}

// NewStartTaskCommandHandler creates a handler for starting production tasks.
func NewStartTaskCommandHandler(
	uowFactory TaskUoWFactory,
	locks *orderlock.Registry,
	resolver services.StatusResolver,
) StartTaskCommandHandler {
	return StartTaskCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		resolver:   resolver,
	}
}

// Handle processes the start task command.
// Only the assigned worker may start a task; a task assigned to someone else
// is reported as not found rather than revealing its existence.
func (h *StartTaskCommandHandler) Handle(ctx context.Context, cmd StartTaskCommand) error {
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
	if err = t.Start(now); err != nil {
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

// resolveOrderStatus re-derives the order's status from its task board and,
// when the status changed, persists it and appends a status change entry to
// the activity log. Callers must hold the order's lock.
func resolveOrderStatus(
	ctx context.Context,
	uow TaskUoW,
	resolver services.StatusResolver,
	orderID kernel.UUID,
	now time.Time,
) error {
	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	tasks, err := uow.TaskRepository().GetAllByOrder(ctx, orderID)
	if err != nil {
		return err
	}

	resolved, err := resolver.Resolve(o.Status(), tasks)
	if err != nil {
		return err
	}

	if resolved == o.Status() {
		return nil
	}

	oldStatus := o.Status()
	if err = o.ChangeStatus(resolved); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	changed, err := activity.NewStatusChanged(kernel.NewUUID(), o, oldStatus, resolved, now)
	if err != nil {
		return err
	}

	return uow.ActivityRepository().Add(ctx, changed)
}
