package commands

import (
	"context"
	"time"

	"mes/internal/core/domain/model/order"
)

// TransitionOrderStatusCommandHandler applies a lifecycle transition to a
// manufacturing order. The aggregate enforces the edge set and stamps
// actual start/end dates; the handler only loads, mutates and persists it
// within one transaction.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewTransitionOrderStatusCommandHandler creates a handler for order
// lifecycle transitions. Requires an OrderUoWFactory for transactional
// persistence.
func NewTransitionOrderStatusCommandHandler(uowFactory OrderUoWFactory) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the transition command and returns the updated order.
// Illegal edges surface as errs.ErrInvalidTransition with the stored state
// untouched; absent or soft-deleted orders surface as errs.ErrObjectNotFound.
func (h TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.TransitionTo(cmd.NewStatus(), h.now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
