package commands

import (
	"context"
	"time"
)

// ClockOutStaleAssignmentsCommandHandler force-clocks-out every assignment
// still Active or OnBreak past the maximum shift length. All close-outs
// happen in one transaction; the derived hours reflect the interval up to
// the sweep time, the same as a regular clock-out.
type ClockOutStaleAssignmentsCommandHandler struct {
	uowFactory LaborUoWFactory
	now        func() time.Time
}

// NewClockOutStaleAssignmentsCommandHandler creates a handler for the shift
// close-out sweep.
func NewClockOutStaleAssignmentsCommandHandler(uowFactory LaborUoWFactory) ClockOutStaleAssignmentsCommandHandler {
	return ClockOutStaleAssignmentsCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the sweep and returns the number of assignments closed.
func (h ClockOutStaleAssignmentsCommandHandler) Handle(
	ctx context.Context,
	cmd ClockOutStaleAssignmentsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.LaborAssignmentRepository()

	sweepTime := h.now()
	stale, err := assignmentRepo.GetAllStale(ctx, sweepTime.Add(-cmd.MaxShiftLength()))
	if err != nil {
		return 0, err
	}

	for _, aggregate := range stale {
		if err = aggregate.ClockOut(sweepTime); err != nil {
			return 0, err
		}

		if err = assignmentRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
