package commands_test

import (
	"testing"

	"tailoring/internal/core/application/usecases/commands"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteTaskCommand_ValidInput(t *testing.T) {
	taskID := kernel.NewUUID()
	workerID := kernel.NewUUID()

	cmd, err := commands.NewCompleteTaskCommand(taskID, workerID)

	require.NoError(t, err)
	assert.Equal(t, taskID, cmd.TaskID())
	assert.Equal(t, workerID, cmd.WorkerID())
	assert.NoError(t, cmd.Validate())
}

func TestNewCompleteTaskCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCompleteTaskCommand(kernel.UUID{}, kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
