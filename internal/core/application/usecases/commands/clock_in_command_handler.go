package commands

import (
	"context"
	"time"

	"mes/internal/core/domain/model/labor"
)

// ClockInCommandHandler clocks an operator in: the assignment becomes
// Active and the clock-in stamp is set to the current time.
type ClockInCommandHandler struct {
	uowFactory LaborUoWFactory
	now        func() time.Time
}

// NewClockInCommandHandler creates a handler for clock-in requests.
func NewClockInCommandHandler(uowFactory LaborUoWFactory) ClockInCommandHandler {
	return ClockInCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the clock-in and returns the updated assignment.
func (h ClockInCommandHandler) Handle(ctx context.Context, cmd ClockInCommand) (*labor.Assignment, error) {
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

	if err = aggregate.ClockIn(h.now()); err != nil {
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
