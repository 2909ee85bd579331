package queries

import (
	"context"

	"mes/internal/core/domain/services"
	"mes/internal/core/ports"
)

// GetOperationProgressQueryHandler computes an order's progress roll-up.
// The summary is recomputed from the stored operations on every call; there
// is no cached projection to invalidate.
type GetOperationProgressQueryHandler struct {
	orderRepo     ports.OrderRepository
	operationRepo ports.OperationRepository
	calculator    services.ProgressCalculator
}

// NewGetOperationProgressQueryHandler creates a handler for progress
// queries. The repositories are read outside any transaction.
func NewGetOperationProgressQueryHandler(
	orderRepo ports.OrderRepository,
	operationRepo ports.OperationRepository,
) GetOperationProgressQueryHandler {
	return GetOperationProgressQueryHandler{
		orderRepo:     orderRepo,
		operationRepo: operationRepo,
		calculator:    services.NewProgressCalculator(),
	}
}

// Handle executes the progress query. The order must exist; an order
// without operations yields zero progress and no current operation.
func (h GetOperationProgressQueryHandler) Handle(
	ctx context.Context,
	query GetOperationProgressQuery,
) (GetOperationProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOperationProgressQueryResponse{}, err
	}

	if _, err := h.orderRepo.Get(ctx, query.OrderID()); err != nil {
		return GetOperationProgressQueryResponse{}, err
	}

	operations, err := h.operationRepo.GetAllForOrder(ctx, query.OrderID())
	if err != nil {
		return GetOperationProgressQueryResponse{}, err
	}

	progress, err := h.calculator.Calculate(operations)
	if err != nil {
		return GetOperationProgressQueryResponse{}, err
	}

	response := GetOperationProgressQueryResponse{
		OrderID:         query.OrderID(),
		TotalOperations: progress.Total,
		StatusCounts:    progress.StatusCounts,
		OverallProgress: progress.OverallProgress,
	}
	if progress.CurrentOperation != nil {
		currentID := progress.CurrentOperation.ID()
		response.CurrentOperationID = &currentID
	}

	return response, nil
}
