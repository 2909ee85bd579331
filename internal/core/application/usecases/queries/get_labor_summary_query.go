package queries

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var ErrGetLaborSummaryQueryIsNotConstructed = errors.New(
	"GetLaborSummaryQuery must be created via NewGetLaborSummaryQuery constructor",
)

// GetLaborSummaryQuery retrieves the labor roll-up of one operation: worker
// count, worked hours, cost and mean efficiency.
type GetLaborSummaryQuery struct { //nolint:recvcheck //using for validation
	operationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLaborSummaryQuery creates a labor summary query for the given
// operation.
func NewGetLaborSummaryQuery(operationID kernel.UUID) (GetLaborSummaryQuery, error) {
	query := GetLaborSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOperationID(operationID); err != nil {
		return GetLaborSummaryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLaborSummaryQueryIsNotConstructed if validation fails.
func (q GetLaborSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetLaborSummaryQueryIsNotConstructed)
}

// OperationID returns the unique identifier of the operation being
// inspected.
func (q GetLaborSummaryQuery) OperationID() kernel.UUID {
	return q.operationID
}

func (q *GetLaborSummaryQuery) setOperationID(operationID kernel.UUID) error {
	if err := operationID.Validate(); err != nil {
		return err
	}

	q.operationID = operationID
	return nil
}

// GetLaborSummaryQueryResponse carries the labor roll-up of one operation.
type GetLaborSummaryQueryResponse struct {
	OperationID       kernel.UUID
	WorkerCount       int
	TotalActualHours  float64
	TotalCost         float64
	AverageEfficiency float64
}
