// Package qualityrepo provides data transfer objects and mapping functions for
// quality check persistence. This package implements the repository pattern for
// the quality check domain aggregate.
package qualityrepo

import (
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/quality"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckDTO represents the database structure for persisting quality check
// aggregates. Checks are read per order, so OrderID carries an index. Result
// is nullable until an inspector records one.
type CheckDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID  `gorm:"type:uuid;index"`
	OperationID       *uuid.UUID `gorm:"type:uuid;index"`
	WorkCenterID      *uuid.UUID `gorm:"type:uuid"`
	CheckCode         string
	InspectionType    int
	Specification     string
	Tolerance         string
	Unit              string
	TargetValue       *float64
	MinValue          *float64
	MaxValue          *float64
	Sequence          int
	IsRequired        bool
	Status            int `gorm:"index"`
	Result            *int
	MeasuredValue     *float64
	Notes             string
	InspectorID       string
	ActualStartTime   *time.Time
	ActualEndTime     *time.Time
	SecondInspectorID string
	SecondCheckTime   *time.Time
	Version           int
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for quality check entities.
func (CheckDTO) TableName() string {
	return "quality_checks"
}

// fromDomain converts a quality check domain aggregate to its database representation.
func fromDomain(aggregate *quality.Check) CheckDTO {
	var result *int
	if r := aggregate.Result(); r != nil {
		raw := int(*r)
		result = &raw
	}

	return CheckDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID().Bytes(),
		OperationID:       rawUUID(aggregate.OperationID()),
		WorkCenterID:      rawUUID(aggregate.WorkCenterID()),
		CheckCode:         aggregate.CheckCode(),
		InspectionType:    int(aggregate.InspectionType()),
		Specification:     aggregate.Specification(),
		Tolerance:         aggregate.Tolerance(),
		Unit:              aggregate.Unit(),
		TargetValue:       aggregate.TargetValue(),
		MinValue:          aggregate.MinValue(),
		MaxValue:          aggregate.MaxValue(),
		Sequence:          aggregate.Sequence(),
		IsRequired:        aggregate.IsRequired(),
		Status:            int(aggregate.Status()),
		Result:            result,
		MeasuredValue:     aggregate.MeasuredValue(),
		Notes:             aggregate.Notes(),
		InspectorID:       aggregate.InspectorID(),
		ActualStartTime:   aggregate.ActualStartTime(),
		ActualEndTime:     aggregate.ActualEndTime(),
		SecondInspectorID: aggregate.SecondInspectorID(),
		SecondCheckTime:   aggregate.SecondCheckTime(),
		Version:           aggregate.Version(),
	}
}

// toDomain converts a database DTO to a quality check domain aggregate using
// RestoreCheck.
func toDomain(dto CheckDTO) (*quality.Check, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	operationID, err := kernelUUID(dto.OperationID)
	if err != nil {
		return nil, err
	}

	workCenterID, err := kernelUUID(dto.WorkCenterID)
	if err != nil {
		return nil, err
	}

	var result *quality.Result
	if dto.Result != nil {
		r := quality.Result(*dto.Result)
		result = &r
	}

	return quality.RestoreCheck(
		id, orderID,
		operationID, workCenterID,
		dto.CheckCode,
		quality.InspectionType(dto.InspectionType),
		dto.Specification, dto.Tolerance, dto.Unit,
		dto.TargetValue, dto.MinValue, dto.MaxValue,
		dto.Sequence,
		dto.IsRequired,
		quality.Status(dto.Status),
		result,
		dto.MeasuredValue,
		dto.Notes, dto.InspectorID,
		dto.ActualStartTime, dto.ActualEndTime,
		dto.SecondInspectorID,
		dto.SecondCheckTime,
		dto.Version,
	)
}

func rawUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
