// Package queries contains read-only operations in the CQRS architecture.
// Summary queries load aggregates through repository ports and fold them
// with domain services; list queries read projections straight from the
// database.
package queries

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var ErrGetOperationProgressQueryIsNotConstructed = errors.New(
	"GetOperationProgressQuery must be created via NewGetOperationProgressQuery constructor",
)

// GetOperationProgressQuery retrieves the execution progress of one order:
// how its operations bucket by status, the overall completion percentage
// and which operation the shop floor should work on next.
type GetOperationProgressQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOperationProgressQuery creates a progress query for the given order.
func NewGetOperationProgressQuery(orderID kernel.UUID) (GetOperationProgressQuery, error) {
	query := GetOperationProgressQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOperationProgressQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOperationProgressQueryIsNotConstructed if validation fails.
func (q GetOperationProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetOperationProgressQueryIsNotConstructed)
}

// OrderID returns the unique identifier of the order being inspected.
func (q GetOperationProgressQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOperationProgressQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOperationProgressQueryResponse carries the progress roll-up of one
// order. CurrentOperationID is nil once every operation has completed.
type GetOperationProgressQueryResponse struct {
	OrderID            kernel.UUID
	TotalOperations    int
	StatusCounts       map[string]int
	OverallProgress    int
	CurrentOperationID *kernel.UUID
}
