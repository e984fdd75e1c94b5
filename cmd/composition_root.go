package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/activity"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	registry   *carrier.Registry
	store      ports.PerformanceStore
	recorder   ports.ActivityRecorder
	notifier   ports.NotificationPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	store ports.PerformanceStore,
	notifier ports.NotificationPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   carrier.DefaultRegistry(),
		store:      store,
		recorder:   activity.NewSlogRecorder(logger),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory(), c.recorder, c.notifier)
}

func (c *CompositionRoot) CreateBulkTransitionOrdersCommandHandler() commands.BulkTransitionOrdersCommandHandler {
	return commands.NewBulkTransitionOrdersCommandHandler(
		c.orderUoWFactory(), services.NewBulkTransitioner(), c.recorder, c.notifier,
	)
}

func (c *CompositionRoot) CreateRecordCarrierPerformanceCommandHandler() commands.RecordCarrierPerformanceCommandHandler {
	return commands.NewRecordCarrierPerformanceCommandHandler(c.registry, c.store)
}

func (c *CompositionRoot) CreateGetValidNextStatusesQueryHandler() queries.GetValidNextStatusesQueryHandler {
	return queries.NewGetValidNextStatusesQueryHandler()
}

func (c *CompositionRoot) CreateGetOrderMetricsQueryHandler() queries.GetOrderMetricsQueryHandler {
	return queries.NewGetOrderMetricsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSelectCarrierQueryHandler() queries.SelectCarrierQueryHandler {
	return queries.NewSelectCarrierQueryHandler(
		services.NewCarrierRouter(c.registry), c.store, c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	// The backlog sweep reads outside any business transaction, so the
	// repository rides on the main connection.
	orders := c.uowFactory.Create().OrderRepository()
	return jobs.NewJobManager(c.registry, c.store, orders, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
