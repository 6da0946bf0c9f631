package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"campus/internal/adapters/out/postgres"
	"campus/internal/core/application/usecases/commands"
	"campus/internal/core/application/usecases/queries"
	"campus/internal/core/domain/services"
)

// CompositionRoot wires use case handlers over one gorm connection and one
// unit-of-work factory. Handlers are cheap value types; a fresh one per call
// site is fine.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	pricing    services.PricingPolicy
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricing:    services.NewPricingPolicy(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.pricing, c.logger)
}

func (c *CompositionRoot) CreateCreatePrintJobCommandHandler() commands.CreatePrintJobCommandHandler {
	var f commands.CreatePrintJobUoWFactory = FuncCreatePrintJobUoWFactory(func() commands.CreatePrintJobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePrintJobCommandHandler(f, c.pricing, c.logger)
}

func (c *CompositionRoot) CreateTransitionCommandHandler() commands.TransitionCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateMarkPaidCommandHandler() commands.MarkPaidCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkPaidCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateReadNotificationsCommandHandler() commands.ReadNotificationsCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReadNotificationsCommandHandler(f)
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateSetMenuItemAvailabilityCommandHandler() commands.SetMenuItemAvailabilityCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetMenuItemAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateTrackFulfillmentQueryHandler() queries.TrackFulfillmentQueryHandler {
	return queries.NewTrackFulfillmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateQueueEstimateQueryHandler() queries.QueueEstimateQueryHandler {
	return queries.NewQueueEstimateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFulfillerQueueQueryHandler() queries.FulfillerQueueQueryHandler {
	return queries.NewFulfillerQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRequesterHistoryQueryHandler() queries.RequesterHistoryQueryHandler {
	return queries.NewRequesterHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateStatsQueryHandler() queries.StatsQueryHandler {
	return queries.NewStatsQueryHandler(c.gormDB)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncCreatePrintJobUoWFactory func() commands.CreatePrintJobUoW

func (f FuncCreatePrintJobUoWFactory) Create() commands.CreatePrintJobUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}
