package commands_test

import (
	"context"
	"testing"
	"time"

	"mes/internal/core/application/usecases/commands"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/labor"
	"mes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssignedOperator(t *testing.T, id kernel.UUID) *labor.Assignment {
	t.Helper()
	a, err := labor.NewAssignment(
		id, kernel.NewUUID(),
		"emp-042", "R. Alvarez",
		labor.Primary,
		8, 35.50,
	)
	require.NoError(t, err)
	return a
}

func newActiveOperator(t *testing.T, id kernel.UUID) *labor.Assignment {
	t.Helper()
	a := newAssignedOperator(t, id)
	require.NoError(t, a.ClockIn(time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC)))
	return a
}

// expectLaborMutation wires the shared expectation sequence for a single
// get-mutate-update labor transaction.
func expectLaborMutation(
	ctx context.Context,
	uow *MockLaborUoW,
	repo *MockLaborAssignmentRepository,
	id kernel.UUID,
	aggregate *labor.Assignment,
) {
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LaborAssignmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

func TestClockInCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewClockInCommand(id)

	aggregate := newAssignedOperator(t, id)
	repo := new(MockLaborAssignmentRepository)
	uow := new(MockLaborUoW)
	expectLaborMutation(ctx, uow, repo, id, aggregate)

	factory := new(MockLaborUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClockInCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, labor.Active, updated.Status())
	require.NotNil(t, updated.ClockInTime())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestClockOutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewClockOutCommand(id)

	aggregate := newActiveOperator(t, id)
	repo := new(MockLaborAssignmentRepository)
	uow := new(MockLaborUoW)
	expectLaborMutation(ctx, uow, repo, id, aggregate)

	factory := new(MockLaborUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClockOutCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, labor.Offline, updated.Status())
	require.NotNil(t, updated.ClockOutTime())
	require.NotNil(t, updated.ActualHours())
}

func TestClockOutCommandHandler_Handle_NeverClockedIn(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewClockOutCommand(id)

	aggregate := newAssignedOperator(t, id)
	repo := new(MockLaborAssignmentRepository)
	uow := new(MockLaborUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LaborAssignmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLaborUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClockOutCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestStartBreakCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewStartBreakCommand(id)

	aggregate := newActiveOperator(t, id)
	repo := new(MockLaborAssignmentRepository)
	uow := new(MockLaborUoW)
	expectLaborMutation(ctx, uow, repo, id, aggregate)

	factory := new(MockLaborUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartBreakCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, labor.OnBreak, updated.Status())
}

func TestEndBreakCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewEndBreakCommand(id)

	aggregate := newActiveOperator(t, id)
	require.NoError(t, aggregate.StartBreak())
	repo := new(MockLaborAssignmentRepository)
	uow := new(MockLaborUoW)
	expectLaborMutation(ctx, uow, repo, id, aggregate)

	factory := new(MockLaborUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEndBreakCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, labor.Active, updated.Status())
}

func TestStartBreakCommandHandler_Handle_NotActive(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewStartBreakCommand(id)

	aggregate := newAssignedOperator(t, id)
	repo := new(MockLaborAssignmentRepository)
	uow := new(MockLaborUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LaborAssignmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLaborUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartBreakCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}
