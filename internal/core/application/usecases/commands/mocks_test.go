package commands_test

import (
	"context"
	"time"

	"mes/internal/core/application/usecases/commands"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/labor"
	"mes/internal/core/domain/model/operation"
	"mes/internal/core/domain/model/order"
	"mes/internal/core/domain/model/quality"
	"mes/internal/core/ports"

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

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOperationUoW struct{ mockTx }

func (m *MockOperationUoW) OperationRepository() ports.OperationRepository {
	args := m.Called()
	return args.Get(0).(ports.OperationRepository)
}

type MockOperationUoWFactory struct{ mock.Mock }

func (m *MockOperationUoWFactory) Create() commands.OperationUoW {
	args := m.Called()
	return args.Get(0).(commands.OperationUoW)
}

type MockRoutingUoW struct{ mockTx }

func (m *MockRoutingUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockRoutingUoW) OperationRepository() ports.OperationRepository {
	args := m.Called()
	return args.Get(0).(ports.OperationRepository)
}

type MockRoutingUoWFactory struct{ mock.Mock }

func (m *MockRoutingUoWFactory) Create() commands.RoutingUoW {
	args := m.Called()
	return args.Get(0).(commands.RoutingUoW)
}

type MockQualityUoW struct{ mockTx }

func (m *MockQualityUoW) QualityCheckRepository() ports.QualityCheckRepository {
	args := m.Called()
	return args.Get(0).(ports.QualityCheckRepository)
}

type MockQualityUoWFactory struct{ mock.Mock }

func (m *MockQualityUoWFactory) Create() commands.QualityUoW {
	args := m.Called()
	return args.Get(0).(commands.QualityUoW)
}

type MockLaborUoW struct{ mockTx }

func (m *MockLaborUoW) LaborAssignmentRepository() ports.LaborAssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.LaborAssignmentRepository)
}

type MockLaborUoWFactory struct{ mock.Mock }

func (m *MockLaborUoWFactory) Create() commands.LaborUoW {
	args := m.Called()
	return args.Get(0).(commands.LaborUoW)
}
