package commands

import (
	"context"

	"mes/internal/core/domain/model/labor"
)

// EndBreakCommandHandler resumes a paused operator. Only the assignment
// status changes; timestamps and derived hours stay as they are.
type EndBreakCommandHandler struct {
	uowFactory LaborUoWFactory
}

// NewEndBreakCommandHandler creates a handler for break-end requests.
func NewEndBreakCommandHandler(uowFactory LaborUoWFactory) EndBreakCommandHandler {
	return EndBreakCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the break end and returns the updated assignment.
func (h EndBreakCommandHandler) Handle(ctx context.Context, cmd EndBreakCommand) (*labor.Assignment, error) {
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

	if err = aggregate.EndBreak(); err != nil {
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
