package commands

import (
	"context"
	"time"

	"mes/internal/core/domain/model/labor"
)

// ClockOutCommandHandler clocks an operator out: the assignment goes
// Offline, the clock-out stamp is set and actual hours are derived from the
// elapsed interval inside the aggregate.
type ClockOutCommandHandler struct {
	uowFactory LaborUoWFactory
	now        func() time.Time
}

// NewClockOutCommandHandler creates a handler for clock-out requests.
func NewClockOutCommandHandler(uowFactory LaborUoWFactory) ClockOutCommandHandler {
	return ClockOutCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the clock-out and returns the updated assignment.
func (h ClockOutCommandHandler) Handle(ctx context.Context, cmd ClockOutCommand) (*labor.Assignment, error) {
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

	if err = aggregate.ClockOut(h.now()); err != nil {
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
