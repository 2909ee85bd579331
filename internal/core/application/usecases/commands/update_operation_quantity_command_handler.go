package commands

import (
	"context"
	"time"

	"mes/internal/core/domain/model/operation"
)

// UpdateOperationQuantityCommandHandler records produced quantity against
// an operation. Quantities outside [0, planned] are rejected by the
// aggregate without mutating stored state; reaching the planned quantity
// while the operation runs auto-completes it.
type UpdateOperationQuantityCommandHandler struct {
	uowFactory OperationUoWFactory
	now        func() time.Time
}

// NewUpdateOperationQuantityCommandHandler creates a handler for quantity
// reports.
func NewUpdateOperationQuantityCommandHandler(uowFactory OperationUoWFactory) UpdateOperationQuantityCommandHandler {
	return UpdateOperationQuantityCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the quantity report and returns the updated operation.
func (h UpdateOperationQuantityCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOperationQuantityCommand,
) (*operation.Operation, error) {
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

	operationRepo := uow.OperationRepository()

	aggregate, err := operationRepo.Get(ctx, cmd.OperationID())
	if err != nil {
		return nil, err
	}

	if _, err = aggregate.UpdateCompletedQuantity(cmd.CompletedQuantity(), h.now()); err != nil {
		return nil, err
	}

	if err = operationRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
