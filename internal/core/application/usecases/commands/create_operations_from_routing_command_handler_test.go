package commands_test

import (
	"testing"

	"mes/internal/core/application/usecases/commands"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/operation"
	"mes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func routingSteps() []commands.RoutingStep {
	return []commands.RoutingStep{
		{WorkCenterID: kernel.NewUUID(), OperationCode: "TURN", Sequence: 10, PlannedQuantity: 100},
		{WorkCenterID: kernel.NewUUID(), OperationCode: "DRILL", Sequence: 20, PlannedQuantity: 100},
	}
}

func TestNewCreateOperationsFromRoutingCommand_RejectsEmptySteps(t *testing.T) {
	_, err := commands.NewCreateOperationsFromRoutingCommand(kernel.NewUUID(), nil)
	require.ErrorIs(t, err, commands.ErrRoutingStepsAreRequired)
}

func TestNewCreateOperationsFromRoutingCommand_RejectsBadStep(t *testing.T) {
	steps := routingSteps()
	steps[1].PlannedQuantity = 0

	_, err := commands.NewCreateOperationsFromRoutingCommand(kernel.NewUUID(), steps)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOperationsFromRoutingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOperationsFromRoutingCommand(orderID, routingSteps())
	require.NoError(t, err)

	aggregate := newPlannedOrder(t, orderID)
	orderRepo := new(MockOrderRepository)
	operationRepo := new(MockOperationRepository)
	uow := new(MockRoutingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("OperationRepository").Return(operationRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		operationRepo.On("Add", mock.Anything, mock.AnythingOfType("*operation.Operation")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRoutingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOperationsFromRoutingCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, created, 2)
	for _, op := range created {
		assert.Equal(t, operation.Waiting, op.Status())
		assert.InDelta(t, 0.0, op.CompletedQuantity(), 0.0001)
		assert.True(t, op.OrderID().IsEqual(orderID))
	}
	assert.Equal(t, 10, created[0].Sequence())
	assert.Equal(t, 20, created[1].Sequence())
	operationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOperationsFromRoutingCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOperationsFromRoutingCommand(orderID, routingSteps())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	operationRepo := new(MockOperationRepository)
	uow := new(MockRoutingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("OperationRepository").Return(operationRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRoutingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOperationsFromRoutingCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	operationRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
