package ports

import (
	"context"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/labor"
)

// LaborAssignmentRepository defines the persistence contract for labor
// assignment aggregates. All reads exclude soft-deleted rows.
type LaborAssignmentRepository interface {
	// Add persists a new labor assignment aggregate to storage.
	Add(ctx context.Context, aggregate *labor.Assignment) error

	// Update persists changes to an existing labor assignment aggregate.
	Update(ctx context.Context, aggregate *labor.Assignment) error

	// Get retrieves a labor assignment aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError for absent or soft-deleted assignments.
	Get(ctx context.Context, id kernel.UUID) (*labor.Assignment, error)

	// GetAllForOperation retrieves every assignment belonging to the given
	// operation.
	GetAllForOperation(ctx context.Context, operationID kernel.UUID) ([]*labor.Assignment, error)

	// GetAllStale retrieves assignments that are still Active or OnBreak
	// and clocked in before the given cutoff. The shift close-out job uses
	// this to force-clock-out operators who forgot to.
	GetAllStale(ctx context.Context, clockedInBefore time.Time) ([]*labor.Assignment, error)
}
