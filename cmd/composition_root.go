package cmd

import (
	"log/slog"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/notifier"
	"marketplace/internal/adapters/out/seed"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"
	"marketplace/internal/pkg/clock"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	config     Config
	policy     store.PurchasePolicy
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	clock      clock.Clock
	logger     *slog.Logger
}

// NewCompositionRoot wires handlers over uowFactory. cfg must have passed Validate.
func NewCompositionRoot(cfg Config, uowFactory ports.UnitOfWorkFactory, clk clock.Clock, logger *slog.Logger) CompositionRoot {
	policy, _ := cfg.PurchasePolicy()
	return CompositionRoot{
		config:     cfg,
		policy:     policy,
		uowFactory: uowFactory,
		publisher:  notifier.NewPublisher(uowFactory, logger),
		clock:      clk,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) storeUoWFactory() commands.StoreUoWFactory {
	return FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	placement := services.NewOrderPlacement(services.NewPackAccountant(), c.config.PackRequired)
	return commands.NewPlaceOrderCommandHandler(f, placement, c.publisher, c.clock)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher, c.clock)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.orderUoWFactory(), c.publisher, c.clock)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.clock)
}

func (c *CompositionRoot) CreateValidateDeliveryCommandHandler() commands.ValidateDeliveryCommandHandler {
	return commands.NewValidateDeliveryCommandHandler(c.orderUoWFactory(), c.publisher, c.clock)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.orderUoWFactory(), c.publisher, c.clock)
}

func (c *CompositionRoot) CreatePurchasePackCommandHandler() commands.PurchasePackCommandHandler {
	return commands.NewPurchasePackCommandHandler(c.storeUoWFactory(), c.policy, c.clock)
}

func (c *CompositionRoot) CreateExpirePacksCommandHandler() commands.ExpirePacksCommandHandler {
	return commands.NewExpirePacksCommandHandler(c.storeUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateNotifyLowQuotaCommandHandler() commands.NotifyLowQuotaCommandHandler {
	return commands.NewNotifyLowQuotaCommandHandler(c.storeUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationReadCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListStoresQueryHandler() queries.ListStoresQueryHandler {
	return queries.NewListStoresQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetStoreQueryHandler() queries.GetStoreQueryHandler {
	return queries.NewGetStoreQueryHandler(c.uowFactory, c.config.LowQuotaThreshold)
}

func (c *CompositionRoot) CreateCatalogQueryHandler() queries.CatalogQueryHandler {
	return queries.NewCatalogQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetStatsQueryHandler() queries.GetStatsQueryHandler {
	return queries.NewGetStatsQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateAuthenticateActorQueryHandler() queries.AuthenticateActorQueryHandler {
	return queries.NewAuthenticateActorQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		PlaceOrder:        c.CreatePlaceOrderCommandHandler(),
		AdvanceOrder:      c.CreateAdvanceOrderStatusCommandHandler(),
		AssignDriver:      c.CreateAssignDriverCommandHandler(),
		ClaimOrder:        c.CreateClaimOrderCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		ValidateDelivery:  c.CreateValidateDeliveryCommandHandler(),
		RecordPayment:     c.CreateRecordPaymentCommandHandler(),
		PurchasePack:      c.CreatePurchasePackCommandHandler(),
		MarkRead:          c.CreateMarkNotificationReadCommandHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListStores:        c.CreateListStoresQueryHandler(),
		GetStore:          c.CreateGetStoreQueryHandler(),
		Catalog:           c.CreateCatalogQueryHandler(),
		ListNotifications: c.CreateListNotificationsQueryHandler(),
		Stats:             c.CreateGetStatsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpin.NewRouter(c.CreateServer(), c.CreateAuthenticateActorQueryHandler(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpirePacksCommandHandler(),
		c.CreateNotifyLowQuotaCommandHandler(),
		c.config.LowQuotaThreshold,
		jobs.Schedules{PackExpiry: c.config.PackExpirySchedule, LowQuota: c.config.LowQuotaSchedule},
		c.logger,
	)
}

func (c *CompositionRoot) CreateSeeder() *seed.Seeder {
	return seed.NewSeeder(c.uowFactory, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStoreUoWFactory func() commands.StoreUoW

func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
