package ports

import (
	"context"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/operation"
)

// OperationRepository defines the persistence contract for order operation
// aggregates. All reads exclude soft-deleted rows.
type OperationRepository interface {
	// Add persists a new operation aggregate to storage.
	Add(ctx context.Context, aggregate *operation.Operation) error

	// Update persists changes to an existing operation aggregate.
	Update(ctx context.Context, aggregate *operation.Operation) error

	// Get retrieves an operation aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError for absent or soft-deleted operations.
	Get(ctx context.Context, id kernel.UUID) (*operation.Operation, error)

	// GetAllForOrder retrieves every operation belonging to the given
	// order, ordered by (sequence, id) so progress roll-ups and the
	// current-operation pick are stable.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*operation.Operation, error)
}
