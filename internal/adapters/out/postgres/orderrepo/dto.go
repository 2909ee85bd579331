// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status. Rows are soft-deleted via DeletedAt so
// removed orders stay out of every read.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID        uuid.UUID `gorm:"type:uuid"`
	Quantity         float64
	Unit             string
	Priority         int
	Status           int        `gorm:"index"`
	BOMID            *uuid.UUID `gorm:"type:uuid;column:bom_id"`
	RoutingID        *uuid.UUID `gorm:"type:uuid"`
	PlannedStartDate *time.Time
	PlannedEndDate   *time.Time
	ActualStartDate  *time.Time
	ActualEndDate    *time.Time
	Version          int
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional BOM and routing references.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		ProductID:        aggregate.ProductID().Bytes(),
		Quantity:         aggregate.Quantity(),
		Unit:             aggregate.Unit(),
		Priority:         aggregate.Priority(),
		Status:           int(aggregate.Status()),
		BOMID:            rawUUID(aggregate.BOMID()),
		RoutingID:        rawUUID(aggregate.RoutingID()),
		PlannedStartDate: aggregate.PlannedStartDate(),
		PlannedEndDate:   aggregate.PlannedEndDate(),
		ActualStartDate:  aggregate.ActualStartDate(),
		ActualEndDate:    aggregate.ActualEndDate(),
		Version:          aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lifecycle state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	bomID, err := kernelUUID(dto.BOMID)
	if err != nil {
		return nil, err
	}

	routingID, err := kernelUUID(dto.RoutingID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, productID,
		dto.Quantity,
		dto.Unit,
		dto.Priority,
		order.Status(dto.Status),
		bomID, routingID,
		dto.PlannedStartDate, dto.PlannedEndDate,
		dto.ActualStartDate, dto.ActualEndDate,
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
