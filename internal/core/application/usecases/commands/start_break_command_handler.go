package commands

import (
	"context"

	"mes/internal/core/domain/model/labor"
)

// StartBreakCommandHandler pauses an active operator. Only the assignment
// status changes; timestamps and derived hours stay as they are.
type StartBreakCommandHandler struct {
	uowFactory LaborUoWFactory
}

// NewStartBreakCommandHandler creates a handler for break-start requests.
func NewStartBreakCommandHandler(uowFactory LaborUoWFactory) StartBreakCommandHandler {
	return StartBreakCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the break start and returns the updated assignment.
func (h StartBreakCommandHandler) Handle(ctx context.Context, cmd StartBreakCommand) (*labor.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.LaborAssignmentRepository()

	aggregate, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.StartBreak(); err != nil {
		return nil, err
	}

	if err = assignmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
