package cmd

import (
	"mes/internal/adapters/out/postgres"
	"mes/internal/core/application/usecases/commands"
	"mes/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOperationStatusCommandHandler() commands.TransitionOperationStatusCommandHandler {
	var f commands.OperationUoWFactory = FuncOperationUoWFactory(func() commands.OperationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOperationStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOperationQuantityCommandHandler() commands.UpdateOperationQuantityCommandHandler {
	var f commands.OperationUoWFactory = FuncOperationUoWFactory(func() commands.OperationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOperationQuantityCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOperationsFromRoutingCommandHandler() commands.CreateOperationsFromRoutingCommandHandler {
	var f commands.RoutingUoWFactory = FuncRoutingUoWFactory(func() commands.RoutingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOperationsFromRoutingCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionQualityCheckStatusCommandHandler() commands.TransitionQualityCheckStatusCommandHandler {
	var f commands.QualityUoWFactory = FuncQualityUoWFactory(func() commands.QualityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionQualityCheckStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordQualityResultCommandHandler() commands.RecordQualityResultCommandHandler {
	var f commands.QualityUoWFactory = FuncQualityUoWFactory(func() commands.QualityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordQualityResultCommandHandler(f)
}

func (c *CompositionRoot) CreateClockInCommandHandler() commands.ClockInCommandHandler {
	return commands.NewClockInCommandHandler(c.laborUoWFactory())
}

func (c *CompositionRoot) CreateClockOutCommandHandler() commands.ClockOutCommandHandler {
	return commands.NewClockOutCommandHandler(c.laborUoWFactory())
}

func (c *CompositionRoot) CreateStartBreakCommandHandler() commands.StartBreakCommandHandler {
	return commands.NewStartBreakCommandHandler(c.laborUoWFactory())
}

func (c *CompositionRoot) CreateEndBreakCommandHandler() commands.EndBreakCommandHandler {
	return commands.NewEndBreakCommandHandler(c.laborUoWFactory())
}

func (c *CompositionRoot) CreateClockOutStaleAssignmentsCommandHandler() commands.ClockOutStaleAssignmentsCommandHandler {
	return commands.NewClockOutStaleAssignmentsCommandHandler(c.laborUoWFactory())
}

func (c *CompositionRoot) CreateGetOperationProgressQueryHandler() queries.GetOperationProgressQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetOperationProgressQueryHandler(uow.OrderRepository(), uow.OperationRepository())
}

func (c *CompositionRoot) CreateGetQualitySummaryQueryHandler() queries.GetQualitySummaryQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetQualitySummaryQueryHandler(uow.OrderRepository(), uow.QualityCheckRepository())
}

func (c *CompositionRoot) CreateGetLaborSummaryQueryHandler() queries.GetLaborSummaryQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetLaborSummaryQueryHandler(uow.OperationRepository(), uow.LaborAssignmentRepository())
}

func (c *CompositionRoot) CreateGetOrderExecutionSummaryQueryHandler() queries.GetOrderExecutionSummaryQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetOrderExecutionSummaryQueryHandler(
		uow.OrderRepository(),
		uow.OperationRepository(),
		uow.QualityCheckRepository(),
		uow.LaborAssignmentRepository(),
	)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) laborUoWFactory() commands.LaborUoWFactory {
	return FuncLaborUoWFactory(func() commands.LaborUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOperationUoWFactory func() commands.OperationUoW

func (f FuncOperationUoWFactory) Create() commands.OperationUoW {
	return f()
}

type FuncRoutingUoWFactory func() commands.RoutingUoW

func (f FuncRoutingUoWFactory) Create() commands.RoutingUoW {
	return f()
}

type FuncQualityUoWFactory func() commands.QualityUoW

func (f FuncQualityUoWFactory) Create() commands.QualityUoW {
	return f()
}

type FuncLaborUoWFactory func() commands.LaborUoW

func (f FuncLaborUoWFactory) Create() commands.LaborUoW {
	return f()
}
