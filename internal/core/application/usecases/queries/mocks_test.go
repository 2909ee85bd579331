package queries_test

import (
	"context"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/labor"
	"mes/internal/core/domain/model/operation"
	"mes/internal/core/domain/model/order"
	"mes/internal/core/domain/model/quality"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOperationRepository struct{ mock.Mock }

func (m *MockOperationRepository) Add(ctx context.Context, aggregate *operation.Operation) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOperationRepository) Update(ctx context.Context, aggregate *operation.Operation) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOperationRepository) Get(ctx context.Context, id kernel.UUID) (*operation.Operation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operation.Operation), args.Error(1)
}

func (m *MockOperationRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*operation.Operation, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*operation.Operation), args.Error(1)
}

type MockQualityCheckRepository struct{ mock.Mock }

func (m *MockQualityCheckRepository) Add(ctx context.Context, aggregate *quality.Check) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockQualityCheckRepository) Update(ctx context.Context, aggregate *quality.Check) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockQualityCheckRepository) Get(ctx context.Context, id kernel.UUID) (*quality.Check, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quality.Check), args.Error(1)
}

func (m *MockQualityCheckRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*quality.Check, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*quality.Check), args.Error(1)
}

type MockLaborAssignmentRepository struct{ mock.Mock }

func (m *MockLaborAssignmentRepository) Add(ctx context.Context, aggregate *labor.Assignment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLaborAssignmentRepository) Update(ctx context.Context, aggregate *labor.Assignment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLaborAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*labor.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*labor.Assignment), args.Error(1)
}

func (m *MockLaborAssignmentRepository) GetAllForOperation(
	ctx context.Context,
	operationID kernel.UUID,
) ([]*labor.Assignment, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*labor.Assignment), args.Error(1)
}

func (m *MockLaborAssignmentRepository) GetAllStale(
	ctx context.Context,
	clockedInBefore time.Time,
) ([]*labor.Assignment, error) {
	args := m.Called(ctx, clockedInBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*labor.Assignment), args.Error(1)
}
