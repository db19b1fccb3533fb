package cmd

import (
	"tailoring/internal/adapters/out/postgres"
	"tailoring/internal/core/application/usecases/commands"
	"tailoring/internal/core/application/usecases/queries"
	"tailoring/internal/core/domain/services"
	"tailoring/internal/pkg/orderlock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	locks      *orderlock.Registry
	resolver   services.StatusResolver
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		locks:      orderlock.NewRegistry(),
		resolver:   services.NewStatusResolver(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateStartTaskCommandHandler() commands.StartTaskCommandHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartTaskCommandHandler(f, c.locks, c.resolver)
}

func (c *CompositionRoot) CreateCompleteTaskCommandHandler() commands.CompleteTaskCommandHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteTaskCommandHandler(f, c.locks, c.resolver)
}

func (c *CompositionRoot) CreateApplyPaymentCommandHandler() commands.ApplyPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyPaymentCommandHandler(f, c.locks)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverOrderCommandHandler(f, c.locks)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.locks)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentInfoQueryHandler() queries.GetPaymentInfoQueryHandler {
	return queries.NewGetPaymentInfoQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGenerateBillQueryHandler() queries.GenerateBillQueryHandler {
	return queries.NewGenerateBillQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetApproachingDeadlinesQueryHandler() queries.GetApproachingDeadlinesQueryHandler {
	return queries.NewGetApproachingDeadlinesQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTaskUoWFactory func() commands.TaskUoW

func (f FuncTaskUoWFactory) Create() commands.TaskUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
