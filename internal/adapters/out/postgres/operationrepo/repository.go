package operationrepo

import (
	"context"
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/operation"
	"mes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOperationRepository implements OperationRepository using GORM.
type GormOperationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOperationRepository creates a new GORM operation repository.
func NewGormOperationRepository(db *gorm.DB, tracker aggregateTracker) *GormOperationRepository {
	return &GormOperationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new operation to the database.
func (r *GormOperationRepository) Add(ctx context.Context, aggregate *operation.Operation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing operation to the database.
func (r *GormOperationRepository) Update(ctx context.Context, aggregate *operation.Operation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select("*") keeps zero-valued columns in the SET list; a struct
	// Updates would skip a completed_quantity reset to 0.
	result := r.db.WithContext(ctx).Model(&OperationDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an operation by ID. Soft-deleted operations are not found.
func (r *GormOperationRepository) Get(ctx context.Context, id kernel.UUID) (*operation.Operation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OperationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("operation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForOrder retrieves all operations belonging to an order in routing
// order. Ties on sequence break deterministically by ID.
func (r *GormOperationRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*operation.Operation, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OperationDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("sequence, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	operations := make([]*operation.Operation, 0, len(dtos))
	for _, dto := range dtos {
		op, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		operations = append(operations, op)
	}

	return operations, nil
}
