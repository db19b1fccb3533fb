package commands

import (
	"errors"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/guard"
)

var ErrStartTaskCommandIsNotConstructed = errors.New(
	"StartTaskCommand must be created via NewStartTaskCommand constructor",
)

// StartTaskCommand represents a worker's request to begin a production task
// assigned to them.
type StartTaskCommand struct { //nolint:recvcheck //using for validation
	taskID   kernel.UUID
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartTaskCommand creates a command to move a pending task into progress.
func NewStartTaskCommand(taskID kernel.UUID, workerID kernel.UUID) (StartTaskCommand, error) {
	cmd := StartTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTaskID(taskID),
		cmd.setWorkerID(workerID),
	); err != nil {
		return StartTaskCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTaskCommand) Validate() error {
	return c.guard.Validate(ErrStartTaskCommandIsNotConstructed)
}

// TaskID returns the identifier of the task to start.
func (c StartTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// WorkerID returns the identifier of the worker acting on the task.
func (c StartTaskCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *StartTaskCommand) setTaskID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("taskId", err)
	}
	c.taskID = id
	return nil
}

func (c *StartTaskCommand) setWorkerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("workerId", err)
	}
	c.workerID = id
	return nil
}
