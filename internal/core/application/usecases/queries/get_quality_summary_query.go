package queries

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/services"
	"mes/internal/pkg/guard"
)

var ErrGetQualitySummaryQueryIsNotConstructed = errors.New(
	"GetQualitySummaryQuery must be created via NewGetQualitySummaryQuery constructor",
)

// GetQualitySummaryQuery retrieves the quality roll-up of one order: status
// buckets, the overall verdict, first-pass yield and critical failures.
type GetQualitySummaryQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetQualitySummaryQuery creates a quality summary query for the given
// order.
func NewGetQualitySummaryQuery(orderID kernel.UUID) (GetQualitySummaryQuery, error) {
	query := GetQualitySummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetQualitySummaryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetQualitySummaryQueryIsNotConstructed if validation fails.
func (q GetQualitySummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetQualitySummaryQueryIsNotConstructed)
}

// OrderID returns the unique identifier of the order being inspected.
func (q GetQualitySummaryQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetQualitySummaryQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetQualitySummaryQueryResponse carries the quality roll-up of one order.
type GetQualitySummaryQueryResponse struct {
	OrderID          kernel.UUID
	TotalChecks      int
	StatusCounts     map[string]int
	OverallStatus    services.OverallQuality
	FirstPassYield   int
	CriticalFailures int
}
