package commands

import (
	"context"
	"time"

	"mes/internal/core/domain/model/quality"
)

// RecordQualityResultCommandHandler records an inspector's verdict on a
// quality check within one transaction. The aggregate derives the status
// from the result and captures second-check identity on re-inspection.
type RecordQualityResultCommandHandler struct {
	uowFactory QualityUoWFactory
	now        func() time.Time
}

// NewRecordQualityResultCommandHandler creates a handler for verdict
// recording.
func NewRecordQualityResultCommandHandler(uowFactory QualityUoWFactory) RecordQualityResultCommandHandler {
	return RecordQualityResultCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the verdict and returns the updated check.
func (h RecordQualityResultCommandHandler) Handle(
	ctx context.Context,
	cmd RecordQualityResultCommand,
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

	if err = aggregate.RecordResult(
		cmd.Result(),
		cmd.MeasuredValue(),
		cmd.Notes(),
		cmd.Inspector(),
		h.now(),
	); err != nil {
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
