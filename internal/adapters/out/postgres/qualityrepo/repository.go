package qualityrepo

import (
	"context"
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/quality"
	"mes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormQualityCheckRepository implements QualityCheckRepository using GORM.
type GormQualityCheckRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormQualityCheckRepository creates a new GORM quality check repository.
func NewGormQualityCheckRepository(db *gorm.DB, tracker aggregateTracker) *GormQualityCheckRepository {
	return &GormQualityCheckRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new quality check to the database.
func (r *GormQualityCheckRepository) Add(ctx context.Context, aggregate *quality.Check) error {
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

// Update saves an existing quality check to the database.
func (r *GormQualityCheckRepository) Update(ctx context.Context, aggregate *quality.Check) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select("*") keeps zero-valued columns in the SET list; a struct
	// Updates would skip a measured_value cleared back to NULL.
	result := r.db.WithContext(ctx).Model(&CheckDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a quality check by ID. Soft-deleted checks are not found.
func (r *GormQualityCheckRepository) Get(ctx context.Context, id kernel.UUID) (*quality.Check, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CheckDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quality check", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForOrder retrieves all quality checks belonging to an order in
// inspection plan order. Ties on sequence break deterministically by ID.
func (r *GormQualityCheckRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*quality.Check, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CheckDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("sequence, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	checks := make([]*quality.Check, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}

	return checks, nil
}
