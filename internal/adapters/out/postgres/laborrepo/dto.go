// Package laborrepo provides data transfer objects and mapping functions for
// labor assignment persistence. This package implements the repository pattern
// for the labor assignment domain aggregate.
package laborrepo

import (
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/labor"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentDTO represents the database structure for persisting labor
// assignment aggregates. Assignments are read per operation and swept by
// status and clock-in time, so both carry indexes.
type AssignmentDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OperationID  uuid.UUID `gorm:"type:uuid;index"`
	OperatorID   string
	OperatorName string
	Role         int
	Status       int        `gorm:"index"`
	ClockInTime  *time.Time `gorm:"index"`
	ClockOutTime *time.Time
	ActualHours  *float64
	PlannedHours float64
	HourlyRate   float64
	Version      int
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for labor assignment entities.
func (AssignmentDTO) TableName() string {
	return "labor_assignments"
}

// fromDomain converts a labor assignment domain aggregate to its database representation.
func fromDomain(aggregate *labor.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:           aggregate.ID().Bytes(),
		OperationID:  aggregate.OperationID().Bytes(),
		OperatorID:   aggregate.OperatorID(),
		OperatorName: aggregate.OperatorName(),
		Role:         int(aggregate.Role()),
		Status:       int(aggregate.Status()),
		ClockInTime:  aggregate.ClockInTime(),
		ClockOutTime: aggregate.ClockOutTime(),
		ActualHours:  aggregate.ActualHours(),
		PlannedHours: aggregate.PlannedHours(),
		HourlyRate:   aggregate.HourlyRate(),
		Version:      aggregate.Version(),
	}
}

// toDomain converts a database DTO to a labor assignment domain aggregate
// using RestoreAssignment.
func toDomain(dto AssignmentDTO) (*labor.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	operationID, err := kernel.UUIDFromBytes(dto.OperationID[:])
	if err != nil {
		return nil, err
	}

	return labor.RestoreAssignment(
		id, operationID,
		dto.OperatorID, dto.OperatorName,
		labor.Role(dto.Role),
		labor.Status(dto.Status),
		dto.ClockInTime, dto.ClockOutTime,
		dto.ActualHours,
		dto.PlannedHours, dto.HourlyRate,
		dto.Version,
	)
}
