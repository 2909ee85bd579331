package ports

import (
	"context"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/quality"
)

// QualityCheckRepository defines the persistence contract for quality check
// aggregates. All reads exclude soft-deleted rows.
type QualityCheckRepository interface {
	// Add persists a new quality check aggregate to storage.
	Add(ctx context.Context, aggregate *quality.Check) error

	// Update persists changes to an existing quality check aggregate.
	Update(ctx context.Context, aggregate *quality.Check) error

	// Get retrieves a quality check aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError for absent or soft-deleted checks.
	Get(ctx context.Context, id kernel.UUID) (*quality.Check, error)

	// GetAllForOrder retrieves every quality check belonging to the given
	// order, ordered by (sequence, id).
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*quality.Check, error)
}
