package task

import (
	"errors"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"
)

var (
	// ErrTaskIsNotConstructed is returned when a Task instance was not created
	// through the NewTask or RestoreTask factory methods.
	ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask or RestoreTask")
)

// Task is one production stage of an order, assigned to exactly one worker.
//
// Task maintains these invariants:
//   - it belongs to exactly one order and one worker, fixed at creation
//   - status only moves forward: Pending -> InProgress -> Completed
//   - startedAt and completedAt are each set exactly once, and
//     assignedAt <= startedAt <= completedAt
//
// Only the assigned worker may start or complete the task; the ownership
// check lives in the command handlers, which match the acting worker against
// WorkerID before invoking Start or Complete.
type Task struct {
	id       kernel.UUID
	orderID  kernel.UUID
	workerID kernel.UUID

	taskType Type
	status   Status

	assignedAt  time.Time
	startedAt   *time.Time
	completedAt *time.Time

	isConstructed bool
}

// NewTask creates a Task in Pending status, assigned to a worker at the given time.
func NewTask(
	id kernel.UUID,
	orderID kernel.UUID,
	workerID kernel.UUID,
	taskType Type,
	assignedAt time.Time,
) (*Task, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		workerID.Validate(),
		taskType.Validate(),
	); err != nil {
		return nil, err
	}

	return &Task{
		id:            id,
		orderID:       orderID,
		workerID:      workerID,
		taskType:      taskType,
		status:        StatusPending,
		assignedAt:    assignedAt,
		isConstructed: true,
	}, nil
}

// RestoreTask reconstructs a Task from persistence.
func RestoreTask(
	id kernel.UUID,
	orderID kernel.UUID,
	workerID kernel.UUID,
	taskType Type,
	status Status,
	assignedAt time.Time,
	startedAt *time.Time,
	completedAt *time.Time,
) (*Task, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		workerID.Validate(),
		taskType.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Task{
		id:            id,
		orderID:       orderID,
		workerID:      workerID,
		taskType:      taskType,
		status:        status,
		assignedAt:    assignedAt,
		startedAt:     startedAt,
		completedAt:   completedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Task instance was properly constructed through a factory.
func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

// ID returns the task's unique identifier.
func (t *Task) ID() kernel.UUID {
	return t.id
}

// OrderID returns the reference to the parent order.
func (t *Task) OrderID() kernel.UUID {
	return t.orderID
}

// WorkerID returns the reference to the assigned worker.
func (t *Task) WorkerID() kernel.UUID {
	return t.workerID
}

// TaskType returns the production stage this task covers.
func (t *Task) TaskType() Type {
	return t.taskType
}

// Status returns the current task status.
func (t *Task) Status() Status {
	return t.status
}

// AssignedAt returns the assignment timestamp, set at creation.
func (t *Task) AssignedAt() time.Time {
	return t.assignedAt
}

// StartedAt returns when the task was started, or nil if it never was.
func (t *Task) StartedAt() *time.Time {
	return t.startedAt
}

// CompletedAt returns when the task was completed, or nil if it never was.
func (t *Task) CompletedAt() *time.Time {
	return t.completedAt
}

// IsAssignedTo reports whether the task is assigned to the given worker.
func (t *Task) IsAssignedTo(workerID kernel.UUID) bool {
	return t.workerID.IsEqual(workerID)
}

// Start moves the task from Pending to InProgress and records the start time.
func (t *Task) Start(now time.Time) error {
	newStatus, err := t.status.Start()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.startedAt = &now
	return nil
}

// Complete moves the task from InProgress to Completed and records the
// completion time. Completing a task that was never started is rejected.
func (t *Task) Complete(now time.Time) error {
	newStatus, err := t.status.Complete()
	if err != nil {
		return err
	}

	if t.startedAt != nil && now.Before(*t.startedAt) {
		return errs.NewValueIsInvalidError("completion time precedes start time")
	}

	t.status = newStatus
	t.completedAt = &now
	return nil
}
