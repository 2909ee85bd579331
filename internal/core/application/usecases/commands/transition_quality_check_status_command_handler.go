package commands

import (
	"context"
	"time"

	"mes/internal/core/domain/model/quality"
)

// TransitionQualityCheckStatusCommandHandler applies an inspection cycle
// transition to a quality check. Re-inspection of closed checks is a legal
// edge, modeling rework.
type TransitionQualityCheckStatusCommandHandler struct {
	uowFactory QualityUoWFactory
	now        func() time.Time
}

// NewTransitionQualityCheckStatusCommandHandler creates a handler for
// quality check transitions.
func NewTransitionQualityCheckStatusCommandHandler(
	uowFactory QualityUoWFactory,
) TransitionQualityCheckStatusCommandHandler {
	return TransitionQualityCheckStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the transition command and returns the updated check.
func (h TransitionQualityCheckStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionQualityCheckStatusCommand,
) (*quality.Check, error) {
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

	checkRepo := uow.QualityCheckRepository()

	aggregate, err := checkRepo.Get(ctx, cmd.CheckID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.TransitionTo(cmd.NewStatus(), cmd.Inspector(), h.now()); err != nil {
		return nil, err
	}

	if err = checkRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
