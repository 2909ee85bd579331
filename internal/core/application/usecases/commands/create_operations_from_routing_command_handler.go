package commands

import (
	"context"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/operation"
)

// CreateOperationsFromRoutingCommandHandler materializes an order's routing
// into waiting operations. The owning order must exist; all steps are
// created in one transaction so the routing appears atomically.
type CreateOperationsFromRoutingCommandHandler struct {
	uowFactory RoutingUoWFactory
}

// NewCreateOperationsFromRoutingCommandHandler creates a handler for routing
// materialization. Requires a RoutingUoWFactory because the handler reads
// the order and writes operations in the same transaction.
func NewCreateOperationsFromRoutingCommandHandler(uowFactory RoutingUoWFactory) CreateOperationsFromRoutingCommandHandler {
	return CreateOperationsFromRoutingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created operations in step
// order. Each operation starts Waiting with zero completed quantity.
func (h CreateOperationsFromRoutingCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOperationsFromRoutingCommand,
) ([]*operation.Operation, error) {
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
	operationRepo := uow.OperationRepository()

	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	created := make([]*operation.Operation, 0, len(cmd.Steps()))
	for _, step := range cmd.Steps() {
		aggregate, err := operation.NewOperation(
			kernel.NewUUID(),
			cmd.OrderID(),
			step.WorkCenterID,
			step.OperationCode,
			step.Sequence,
			step.PlannedQuantity,
		)
		if err != nil {
			return nil, err
		}

		if err = operationRepo.Add(ctx, aggregate); err != nil {
			return nil, err
		}

		created = append(created, aggregate)
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
