// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"mes/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OperationRepoFactory provides access to the operation repository within a transaction.
	OperationRepoFactory interface {
		OperationRepository() ports.OperationRepository
	}

	// QualityCheckRepoFactory provides access to the quality check repository within a transaction.
	QualityCheckRepoFactory interface {
		QualityCheckRepository() ports.QualityCheckRepository
	}

	// LaborAssignmentRepoFactory provides access to the labor assignment repository within a transaction.
	LaborAssignmentRepoFactory interface {
		LaborAssignmentRepository() ports.LaborAssignmentRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OperationUoW manages transactions for operation-only operations.
	OperationUoW interface {
		TxManager
		OperationRepoFactory
	}

	// OperationUoWFactory creates new operation unit of work instances.
	OperationUoWFactory interface {
		Create() OperationUoW
	}

	// RoutingUoW manages transactions that touch an order and its
	// operations together, such as creating operations from a routing.
	RoutingUoW interface {
		TxManager
		OrderRepoFactory
		OperationRepoFactory
	}

	// RoutingUoWFactory creates new routing unit of work instances.
	RoutingUoWFactory interface {
		Create() RoutingUoW
	}

	// QualityUoW manages transactions for quality-check-only operations.
	QualityUoW interface {
		TxManager
		QualityCheckRepoFactory
	}

	// QualityUoWFactory creates new quality unit of work instances.
	QualityUoWFactory interface {
		Create() QualityUoW
	}

	// LaborUoW manages transactions for labor-assignment-only operations.
	LaborUoW interface {
		TxManager
		LaborAssignmentRepoFactory
	}

	// LaborUoWFactory creates new labor unit of work instances.
	LaborUoWFactory interface {
		Create() LaborUoW
	}
)
