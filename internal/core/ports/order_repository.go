// Package ports defines repository interfaces for the manufacturing domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for manufacturing order
// aggregates. All reads exclude soft-deleted rows.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError for absent or soft-deleted orders.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
