package commands_test

import (
	"testing"

	"tailoring/internal/core/application/usecases/commands"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCancelOrderCommand(orderID, "fabric out of stock")

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "fabric out of stock", cmd.Reason())
}

func TestNewCancelOrderCommand_EmptyReasonAllowed(t *testing.T) {
	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID(), "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Reason())
}

func TestNewCancelOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.UUID{}, "reason")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
