package commands

import (
	"errors"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/guard"
)

var ErrCompleteTaskCommandIsNotConstructed = errors.New(
	"CompleteTaskCommand must be created via NewCompleteTaskCommand constructor",
)

// CompleteTaskCommand represents a worker's request to finish a production
// task they previously started.
type CompleteTaskCommand struct { //nolint:recvcheck //using for validation
	taskID   kernel.UUID
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteTaskCommand creates a command to complete an in-progress task.
func NewCompleteTaskCommand(taskID kernel.UUID, workerID kernel.UUID) (CompleteTaskCommand, error) {
	cmd := CompleteTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTaskID(taskID),
		cmd.setWorkerID(workerID),
	); err != nil {
		return CompleteTaskCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteTaskCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTaskCommandIsNotConstructed)
}

// TaskID returns the identifier of the task to complete.
func (c CompleteTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// WorkerID returns the identifier of the worker acting on the task.
func (c CompleteTaskCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *CompleteTaskCommand) setTaskID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("taskId", err)
	}
	c.taskID = id
	return nil
}

func (c *CompleteTaskCommand) setWorkerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("workerId", err)
	}
	c.workerID = id
	return nil
}
