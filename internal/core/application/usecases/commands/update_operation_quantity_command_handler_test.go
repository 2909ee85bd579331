package commands_test

import (
	"testing"
	"time"

	"mes/internal/core/application/usecases/commands"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/operation"
	"mes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRunningOperation(t *testing.T, id kernel.UUID, plannedQuantity float64) *operation.Operation {
	t.Helper()
	aggregate, err := operation.NewOperation(
		id, kernel.NewUUID(), kernel.NewUUID(),
		"OP-010", 10, plannedQuantity,
	)
	require.NoError(t, err)
	require.NoError(t, aggregate.TransitionTo(operation.InProgress, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)))
	return aggregate
}

func TestNewUpdateOperationQuantityCommand_RejectsNegativeQuantity(t *testing.T) {
	_, err := commands.NewUpdateOperationQuantityCommand(kernel.NewUUID(), -5)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateOperationQuantityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOperationQuantityCommand(id, 60)

	aggregate := newRunningOperation(t, id, 100)
	repo := new(MockOperationRepository)
	uow := new(MockOperationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OperationRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOperationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOperationQuantityCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.InDelta(t, 60.0, updated.CompletedQuantity(), 0.0001)
	assert.Equal(t, operation.InProgress, updated.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOperationQuantityCommandHandler_Handle_AutoCompletes(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOperationQuantityCommand(id, 100)

	aggregate := newRunningOperation(t, id, 100)
	repo := new(MockOperationRepository)
	uow := new(MockOperationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OperationRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOperationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOperationQuantityCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, operation.Completed, updated.Status())
	require.NotNil(t, updated.ActualEndTime())
}

func TestUpdateOperationQuantityCommandHandler_Handle_OutOfRange(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOperationQuantityCommand(id, 150)

	aggregate := newRunningOperation(t, id, 100)
	repo := new(MockOperationRepository)
	uow := new(MockOperationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OperationRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOperationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOperationQuantityCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.InDelta(t, 0.0, aggregate.CompletedQuantity(), 0.0001,
		"rejected report leaves the stored quantity untouched")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
