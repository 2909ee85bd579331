package queries

import (
	"context"

	"mes/internal/core/domain/services"
	"mes/internal/core/ports"
)

// GetLaborSummaryQueryHandler computes an operation's labor roll-up from
// its stored assignments on every call.
type GetLaborSummaryQueryHandler struct {
	operationRepo  ports.OperationRepository
	assignmentRepo ports.LaborAssignmentRepository
	calculator     services.LaborCalculator
}

// NewGetLaborSummaryQueryHandler creates a handler for labor summary
// queries.
func NewGetLaborSummaryQueryHandler(
	operationRepo ports.OperationRepository,
	assignmentRepo ports.LaborAssignmentRepository,
) GetLaborSummaryQueryHandler {
	return GetLaborSummaryQueryHandler{
		operationRepo:  operationRepo,
		assignmentRepo: assignmentRepo,
		calculator:     services.NewLaborCalculator(),
	}
}

// Handle executes the labor summary query. The operation must exist; an
// operation without assignments reports a zero summary.
func (h GetLaborSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetLaborSummaryQuery,
) (GetLaborSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLaborSummaryQueryResponse{}, err
	}

	if _, err := h.operationRepo.Get(ctx, query.OperationID()); err != nil {
		return GetLaborSummaryQueryResponse{}, err
	}

	assignments, err := h.assignmentRepo.GetAllForOperation(ctx, query.OperationID())
	if err != nil {
		return GetLaborSummaryQueryResponse{}, err
	}

	summary, err := h.calculator.Summarize(assignments)
	if err != nil {
		return GetLaborSummaryQueryResponse{}, err
	}

	return GetLaborSummaryQueryResponse{
		OperationID:       query.OperationID(),
		WorkerCount:       summary.WorkerCount,
		TotalActualHours:  summary.TotalActualHours,
		TotalCost:         summary.TotalCost,
		AverageEfficiency: summary.AverageEfficiency,
	}, nil
}
