package laborrepo

import (
	"context"
	"errors"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/labor"
	"mes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLaborAssignmentRepository implements LaborAssignmentRepository using GORM.
type GormLaborAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLaborAssignmentRepository creates a new GORM labor assignment repository.
func NewGormLaborAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormLaborAssignmentRepository {
	return &GormLaborAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new labor assignment to the database.
func (r *GormLaborAssignmentRepository) Add(ctx context.Context, aggregate *labor.Assignment) error {
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

// Update saves an existing labor assignment to the database.
func (r *GormLaborAssignmentRepository) Update(ctx context.Context, aggregate *labor.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select("*") keeps zero-valued columns in the SET list, which a
	// struct Updates would silently skip.
	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a labor assignment by ID. Soft-deleted assignments are not found.
func (r *GormLaborAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*labor.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("labor assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForOperation retrieves all labor assignments belonging to an operation.
func (r *GormLaborAssignmentRepository) GetAllForOperation(ctx context.Context, operationID kernel.UUID) ([]*labor.Assignment, error) {
	if err := operationID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Where("operation_id = ?", operationID.Bytes()).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllStale retrieves assignments still clocked in before the cutoff.
// The shift close-out job uses this to force out operators who never
// clocked out.
func (r *GormLaborAssignmentRepository) GetAllStale(ctx context.Context, clockedInBefore time.Time) ([]*labor.Assignment, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Where("status IN ? AND clock_in_time < ?", []int{int(labor.Active), int(labor.OnBreak)}, clockedInBefore).
		Order("clock_in_time").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []AssignmentDTO) ([]*labor.Assignment, error) {
	assignments := make([]*labor.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}
