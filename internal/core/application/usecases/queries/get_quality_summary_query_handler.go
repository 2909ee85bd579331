package queries

import (
	"context"

	"mes/internal/core/domain/services"
	"mes/internal/core/ports"
)

// GetQualitySummaryQueryHandler computes an order's quality roll-up from
// its stored checks on every call.
type GetQualitySummaryQueryHandler struct {
	orderRepo ports.OrderRepository
	checkRepo ports.QualityCheckRepository
	evaluator services.QualityEvaluator
}

// NewGetQualitySummaryQueryHandler creates a handler for quality summary
// queries.
func NewGetQualitySummaryQueryHandler(
	orderRepo ports.OrderRepository,
	checkRepo ports.QualityCheckRepository,
) GetQualitySummaryQueryHandler {
	return GetQualitySummaryQueryHandler{
		orderRepo: orderRepo,
		checkRepo: checkRepo,
		evaluator: services.NewQualityEvaluator(),
	}
}

// Handle executes the quality summary query. The order must exist; an
// order without checks reports a pending verdict with zero yield.
func (h GetQualitySummaryQueryHandler) Handle(
	ctx context.Context,
	query GetQualitySummaryQuery,
) (GetQualitySummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQualitySummaryQueryResponse{}, err
	}

	if _, err := h.orderRepo.Get(ctx, query.OrderID()); err != nil {
		return GetQualitySummaryQueryResponse{}, err
	}

	checks, err := h.checkRepo.GetAllForOrder(ctx, query.OrderID())
	if err != nil {
		return GetQualitySummaryQueryResponse{}, err
	}

	summary, err := h.evaluator.Summarize(checks)
	if err != nil {
		return GetQualitySummaryQueryResponse{}, err
	}

	return GetQualitySummaryQueryResponse{
		OrderID:          query.OrderID(),
		TotalChecks:      summary.Total,
		StatusCounts:     summary.StatusCounts,
		OverallStatus:    summary.OverallStatus,
		FirstPassYield:   summary.FirstPassYield,
		CriticalFailures: summary.CriticalFailures,
	}, nil
}
