package queries

import (
	"context"

	"mes/internal/core/domain/model/labor"
	"mes/internal/core/domain/services"
	"mes/internal/core/ports"
)

// GetOrderExecutionSummaryQueryHandler composes the three execution
// roll-ups of an order into one read-only response. Labor is folded across
// every operation of the order. Nothing is cached or written.
type GetOrderExecutionSummaryQueryHandler struct {
	orderRepo      ports.OrderRepository
	operationRepo  ports.OperationRepository
	checkRepo      ports.QualityCheckRepository
	assignmentRepo ports.LaborAssignmentRepository

	progress services.ProgressCalculator
	quality  services.QualityEvaluator
	labor    services.LaborCalculator
}

// NewGetOrderExecutionSummaryQueryHandler creates a handler for execution
// summary queries.
func NewGetOrderExecutionSummaryQueryHandler(
	orderRepo ports.OrderRepository,
	operationRepo ports.OperationRepository,
	checkRepo ports.QualityCheckRepository,
	assignmentRepo ports.LaborAssignmentRepository,
) GetOrderExecutionSummaryQueryHandler {
	return GetOrderExecutionSummaryQueryHandler{
		orderRepo:      orderRepo,
		operationRepo:  operationRepo,
		checkRepo:      checkRepo,
		assignmentRepo: assignmentRepo,
		progress:       services.NewProgressCalculator(),
		quality:        services.NewQualityEvaluator(),
		labor:          services.NewLaborCalculator(),
	}
}

// Handle executes the composed query for one order.
func (h GetOrderExecutionSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderExecutionSummaryQuery,
) (GetOrderExecutionSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderExecutionSummaryQueryResponse{}, err
	}

	aggregate, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderExecutionSummaryQueryResponse{}, err
	}

	operations, err := h.operationRepo.GetAllForOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderExecutionSummaryQueryResponse{}, err
	}

	progress, err := h.progress.Calculate(operations)
	if err != nil {
		return GetOrderExecutionSummaryQueryResponse{}, err
	}

	checks, err := h.checkRepo.GetAllForOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderExecutionSummaryQueryResponse{}, err
	}

	qualitySummary, err := h.quality.Summarize(checks)
	if err != nil {
		return GetOrderExecutionSummaryQueryResponse{}, err
	}

	assignments := make([]*labor.Assignment, 0)
	for _, op := range operations {
		forOperation, assignErr := h.assignmentRepo.GetAllForOperation(ctx, op.ID())
		if assignErr != nil {
			return GetOrderExecutionSummaryQueryResponse{}, assignErr
		}
		assignments = append(assignments, forOperation...)
	}

	laborSummary, err := h.labor.Summarize(assignments)
	if err != nil {
		return GetOrderExecutionSummaryQueryResponse{}, err
	}

	response := GetOrderExecutionSummaryQueryResponse{
		OrderID:     query.OrderID(),
		OrderStatus: aggregate.Status().String(),

		TotalOperations:   progress.Total,
		OperationStatuses: progress.StatusCounts,
		OverallProgress:   progress.OverallProgress,

		TotalChecks:      qualitySummary.Total,
		CheckStatuses:    qualitySummary.StatusCounts,
		OverallQuality:   qualitySummary.OverallStatus,
		FirstPassYield:   qualitySummary.FirstPassYield,
		CriticalFailures: qualitySummary.CriticalFailures,

		Labor: OrderLaborSummary{
			WorkerCount:       laborSummary.WorkerCount,
			TotalActualHours:  laborSummary.TotalActualHours,
			TotalCost:         laborSummary.TotalCost,
			AverageEfficiency: laborSummary.AverageEfficiency,
		},
	}
	if progress.CurrentOperation != nil {
		currentID := progress.CurrentOperation.ID()
		response.CurrentOperationID = &currentID
	}

	return response, nil
}
