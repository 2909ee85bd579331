package commands

import (
	"context"
	"time"

	"mes/internal/core/domain/model/operation"
)

// TransitionOperationStatusCommandHandler applies a lifecycle transition to
// an order operation. Completing an operation manually forces its completed
// quantity up to plan inside the aggregate.
type TransitionOperationStatusCommandHandler struct {
	uowFactory OperationUoWFactory
	now        func() time.Time
}

// NewTransitionOperationStatusCommandHandler creates a handler for operation
// lifecycle transitions.
func NewTransitionOperationStatusCommandHandler(uowFactory OperationUoWFactory) TransitionOperationStatusCommandHandler {
	return TransitionOperationStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the transition command and returns the updated operation.
func (h TransitionOperationStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOperationStatusCommand,
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

	if err = aggregate.TransitionTo(cmd.NewStatus(), h.now()); err != nil {
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
