package queries

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/services"
	"mes/internal/pkg/guard"
)

var ErrGetOrderExecutionSummaryQueryIsNotConstructed = errors.New(
	"GetOrderExecutionSummaryQuery must be created via NewGetOrderExecutionSummaryQuery constructor",
)

// GetOrderExecutionSummaryQuery retrieves the combined execution picture of
// one order: operation progress, the quality verdict and labor totals
// across all of the order's operations, composed read-only in one response.
type GetOrderExecutionSummaryQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderExecutionSummaryQuery creates an execution summary query for
// the given order.
func NewGetOrderExecutionSummaryQuery(orderID kernel.UUID) (GetOrderExecutionSummaryQuery, error) {
	query := GetOrderExecutionSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderExecutionSummaryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderExecutionSummaryQueryIsNotConstructed if validation fails.
func (q GetOrderExecutionSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderExecutionSummaryQueryIsNotConstructed)
}

// OrderID returns the unique identifier of the order being inspected.
func (q GetOrderExecutionSummaryQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderExecutionSummaryQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// OrderLaborSummary carries labor totals folded across every operation of
// the order.
type OrderLaborSummary struct {
	WorkerCount       int
	TotalActualHours  float64
	TotalCost         float64
	AverageEfficiency float64
}

// GetOrderExecutionSummaryQueryResponse is the one-call execution picture
// of an order for presentation.
type GetOrderExecutionSummaryQueryResponse struct {
	OrderID     kernel.UUID
	OrderStatus string

	TotalOperations    int
	OperationStatuses  map[string]int
	OverallProgress    int
	CurrentOperationID *kernel.UUID

	TotalChecks      int
	CheckStatuses    map[string]int
	OverallQuality   services.OverallQuality
	FirstPassYield   int
	CriticalFailures int

	Labor OrderLaborSummary
}
