package commands_test

import (
	"testing"

	"tailoring/internal/core/application/usecases/commands"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliverOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewDeliverOrderCommand(orderID)

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.NoError(t, cmd.Validate())
}

func TestNewDeliverOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewDeliverOrderCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
