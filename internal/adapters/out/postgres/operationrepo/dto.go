// Package operationrepo provides data transfer objects and mapping functions for
// operation persistence. This package implements the repository pattern for the
// operation domain aggregate.
package operationrepo

import (
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/operation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OperationDTO represents the database structure for persisting operation
// aggregates. Operations are read per order, so OrderID carries an index.
type OperationDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;index"`
	WorkCenterID      uuid.UUID `gorm:"type:uuid"`
	OperationCode     string
	Sequence          int
	PlannedQuantity   float64
	CompletedQuantity float64
	Status            int `gorm:"index"`
	PlannedStartTime  *time.Time
	PlannedEndTime    *time.Time
	ActualStartTime   *time.Time
	ActualEndTime     *time.Time
	Version           int
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for operation entities.
func (OperationDTO) TableName() string {
	return "operations"
}

// fromDomain converts an operation domain aggregate to its database representation.
func fromDomain(aggregate *operation.Operation) OperationDTO {
	return OperationDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID().Bytes(),
		WorkCenterID:      aggregate.WorkCenterID().Bytes(),
		OperationCode:     aggregate.OperationCode(),
		Sequence:          aggregate.Sequence(),
		PlannedQuantity:   aggregate.PlannedQuantity(),
		CompletedQuantity: aggregate.CompletedQuantity(),
		Status:            int(aggregate.Status()),
		PlannedStartTime:  aggregate.PlannedStartTime(),
		PlannedEndTime:    aggregate.PlannedEndTime(),
		ActualStartTime:   aggregate.ActualStartTime(),
		ActualEndTime:     aggregate.ActualEndTime(),
		Version:           aggregate.Version(),
	}
}

// toDomain converts a database DTO to an operation domain aggregate using
// RestoreOperation.
func toDomain(dto OperationDTO) (*operation.Operation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	workCenterID, err := kernel.UUIDFromBytes(dto.WorkCenterID[:])
	if err != nil {
		return nil, err
	}

	return operation.RestoreOperation(
		id, orderID, workCenterID,
		dto.OperationCode,
		dto.Sequence,
		dto.PlannedQuantity,
		dto.CompletedQuantity,
		operation.Status(dto.Status),
		dto.PlannedStartTime, dto.PlannedEndTime,
		dto.ActualStartTime, dto.ActualEndTime,
		dto.Version,
	)
}
