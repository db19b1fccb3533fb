package commands_test

import (
	"testing"

	"tailoring/internal/core/application/usecases/commands"
	"tailoring/internal/core/domain/model/activity"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/orderlock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(orderID, "customer request")
	require.NoError(t, err)

	testOrder := newTestOrderForTasks(t, orderID, order.StatusStitching)

	orderRepo := new(MockOrderRepository)
	activityRepo := new(MockActivityRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("ActivityRepository").Return(activityRepo).Once(),
		activityRepo.On("Add", ctx, mock.AnythingOfType("*activity.Activity")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, orderlock.NewRegistry())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	activityRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	assert.Equal(t, order.StatusCancelled, testOrder.Status())

	logged := activityRepo.Calls[0].Arguments[1].(*activity.Activity)
	assert.Equal(t, activity.TypeOrderCancelled, logged.ActivityType())
	assert.Equal(t, "Order cancelled: customer request", logged.Description())
}

func TestCancelOrderCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(orderID, "")
	require.NoError(t, err)

	deliveredOrder := newTestOrderForTasks(t, orderID, order.StatusDelivered)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(deliveredOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, orderlock.NewRegistry())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, order.StatusDelivered, deliveredOrder.Status())
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewCancelOrderCommandHandler(factory, orderlock.NewRegistry())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
