package http

import (
	"log/slog"
	"net/http"

	"marketplace/internal/adapters/in/http/api"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ api.ServerInterface = (*Server)(nil)

// Server implements api.ServerInterface on top of the command and query handlers.
type Server struct {
	// Command handlers
	placeOrderHandler       commands.PlaceOrderCommandHandler
	advanceOrderHandler     commands.AdvanceOrderStatusCommandHandler
	assignDriverHandler     commands.AssignDriverCommandHandler
	claimOrderHandler       commands.ClaimOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	validateDeliveryHandler commands.ValidateDeliveryCommandHandler
	recordPaymentHandler    commands.RecordPaymentCommandHandler
	purchasePackHandler     commands.PurchasePackCommandHandler
	markReadHandler         commands.MarkNotificationReadCommandHandler

	// Query handlers
	listOrdersHandler        queries.ListOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	listStoresHandler        queries.ListStoresQueryHandler
	getStoreHandler          queries.GetStoreQueryHandler
	catalogHandler           queries.CatalogQueryHandler
	listNotificationsHandler queries.ListNotificationsQueryHandler
	statsHandler             queries.GetStatsQueryHandler

	logger *slog.Logger
}

// Handlers groups everything the server dispatches to.
type Handlers struct {
	PlaceOrder        commands.PlaceOrderCommandHandler
	AdvanceOrder      commands.AdvanceOrderStatusCommandHandler
	AssignDriver      commands.AssignDriverCommandHandler
	ClaimOrder        commands.ClaimOrderCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
	ValidateDelivery  commands.ValidateDeliveryCommandHandler
	RecordPayment     commands.RecordPaymentCommandHandler
	PurchasePack      commands.PurchasePackCommandHandler
	MarkRead          commands.MarkNotificationReadCommandHandler
	ListOrders        queries.ListOrdersQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	ListStores        queries.ListStoresQueryHandler
	GetStore          queries.GetStoreQueryHandler
	Catalog           queries.CatalogQueryHandler
	ListNotifications queries.ListNotificationsQueryHandler
	Stats             queries.GetStatsQueryHandler
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		placeOrderHandler:        h.PlaceOrder,
		advanceOrderHandler:      h.AdvanceOrder,
		assignDriverHandler:      h.AssignDriver,
		claimOrderHandler:        h.ClaimOrder,
		cancelOrderHandler:       h.CancelOrder,
		validateDeliveryHandler:  h.ValidateDelivery,
		recordPaymentHandler:     h.RecordPayment,
		purchasePackHandler:      h.PurchasePack,
		markReadHandler:          h.MarkRead,
		listOrdersHandler:        h.ListOrders,
		getOrderHandler:          h.GetOrder,
		listStoresHandler:        h.ListStores,
		getStoreHandler:          h.GetStore,
		catalogHandler:           h.Catalog,
		listNotificationsHandler: h.ListNotifications,
		statsHandler:             h.Stats,
		logger:                   logger.With("component", "http"),
	}
}

// ListOrders handles GET /api/v1/orders - the orders visible to the actor.
func (s *Server) ListOrders(ctx echo.Context, params api.ListOrdersParams) error {
	var status *order.Status
	if params.Status != nil {
		parsed, err := order.ParseStatus(*params.Status)
		if err != nil {
			return s.fail(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewListOrdersQuery(actorFrom(ctx), status)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, mapAll(orders, toOrder))
}

// PlaceOrder handles POST /api/v1/orders - checkout at one store.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body api.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, api.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := newPlaceOrderCommand(actorFrom(ctx), body)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusCreated, cmd.OrderID())
}

func newPlaceOrderCommand(customer kernel.Actor, body api.NewOrder) (commands.PlaceOrderCommand, error) {
	storeID, err := toUUID(body.StoreId)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	lines := make([]services.Line, len(body.Items))
	for i, item := range body.Items {
		productID, idErr := toUUID(item.ProductId)
		if idErr != nil {
			return commands.PlaceOrderCommand{}, idErr
		}
		lines[i] = services.Line{ProductID: productID, Quantity: item.Quantity}
	}

	var delivery commands.DeliveryChoice
	if body.DeliveryAddress != nil {
		delivery.Address = *body.DeliveryAddress
	}
	if body.DeliveryLocation != nil {
		location, locErr := kernel.NewGeoPoint(body.DeliveryLocation.Latitude, body.DeliveryLocation.Longitude)
		if locErr != nil {
			return commands.PlaceOrderCommand{}, locErr
		}
		delivery.Location = &location
	}
	if body.PickupPointId != nil {
		pickupPointID, idErr := toUUID(*body.PickupPointId)
		if idErr != nil {
			return commands.PlaceOrderCommand{}, idErr
		}
		delivery.PickupPointID = &pickupPointID
	}

	method, err := order.ParsePaymentMethod(body.PaymentMethod)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	var notes string
	if body.Notes != nil {
		notes = *body.Notes
	}

	return commands.NewPlaceOrderCommand(kernel.NewUUID(), customer, storeID, lines, delivery, method, notes)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx, http.StatusOK, id)
}

// AdvanceOrder handles POST /api/v1/orders/{orderId}/advance.
func (s *Server) AdvanceOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(id, actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, id)
}

// AssignDriver handles POST /api/v1/orders/{orderId}/assign-driver.
func (s *Server) AssignDriver(ctx echo.Context, orderId openapi_types.UUID) error {
	var body api.DriverAssignment
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, api.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id, err := toUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	driverID, err := toUUID(body.DriverId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(id, driverID, actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, id)
}

// ClaimOrder handles POST /api/v1/orders/{orderId}/claim.
func (s *Server) ClaimOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewClaimOrderCommand(id, actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, id)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id, actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, id)
}

// ValidateDelivery handles POST /api/v1/orders/{orderId}/validate.
func (s *Server) ValidateDelivery(ctx echo.Context, orderId openapi_types.UUID) error {
	var body api.DeliveryValidation
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, api.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id, err := toUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	party, err := order.ParseParty(body.Party)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewValidateDeliveryCommand(id, party, actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.validateDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, id)
}

// RecordPayment handles POST /api/v1/orders/{orderId}/payment.
func (s *Server) RecordPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	var body api.PaymentRecord
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, api.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id, err := toUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	status, err := order.ParsePaymentStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRecordPaymentCommand(id, status, actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, id)
}

// respondOrder renders the order as the actor now sees it.
func (s *Server) respondOrder(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id, actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(status, toOrder(view))
}

// ListStores handles GET /api/v1/stores.
func (s *Server) ListStores(ctx echo.Context) error {
	stores, err := s.listStoresHandler.Handle(ctx.Request().Context(), queries.NewListStoresQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, mapAll(stores, toStore))
}

// GetStore handles GET /api/v1/stores/{storeId} - the store with its pack usage.
func (s *Server) GetStore(ctx echo.Context, storeId openapi_types.UUID) error {
	id, err := toUUID(storeId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondStore(ctx, id)
}

// ListProducts handles GET /api/v1/stores/{storeId}/products.
func (s *Server) ListProducts(ctx echo.Context, storeId openapi_types.UUID) error {
	id, err := toUUID(storeId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListProductsQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	products, err := s.catalogHandler.ListProducts(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, mapAll(products, toProduct))
}

// PurchasePack handles POST /api/v1/stores/{storeId}/purchase-pack.
func (s *Server) PurchasePack(ctx echo.Context, storeId openapi_types.UUID) error {
	var body api.PackPurchase
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, api.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id, err := toUUID(storeId)
	if err != nil {
		return s.fail(ctx, err)
	}
	packID, err := toUUID(body.PackId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewPurchasePackCommand(id, packID, actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.purchasePackHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondStore(ctx, id)
}

func (s *Server) respondStore(ctx echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetStoreQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.getStoreHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStore(view))
}

// ListPacks handles GET /api/v1/packs.
func (s *Server) ListPacks(ctx echo.Context) error {
	packs, err := s.catalogHandler.ListPacks(ctx.Request().Context(), queries.NewListPacksQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, mapAll(packs, toPack))
}

// ListPickupPoints handles GET /api/v1/pickup-points.
func (s *Server) ListPickupPoints(ctx echo.Context) error {
	points, err := s.catalogHandler.ListPickupPoints(ctx.Request().Context(), queries.NewListPickupPointsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, mapAll(points, toPickupPoint))
}

// ListDrivers handles GET /api/v1/drivers.
func (s *Server) ListDrivers(ctx echo.Context) error {
	drivers, err := s.catalogHandler.ListDrivers(ctx.Request().Context(), queries.NewListDriversQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, mapAll(drivers, toUser))
}

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(ctx echo.Context) error {
	query, err := queries.NewListNotificationsQuery(actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	notifications, err := s.listNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, mapAll(notifications, toNotification))
}

// MarkNotificationRead handles POST /api/v1/notifications/{notificationId}/read.
func (s *Server) MarkNotificationRead(ctx echo.Context, notificationId openapi_types.UUID) error {
	id, err := toUUID(notificationId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(id, actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.markReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(ctx echo.Context) error {
	query, err := queries.NewGetStatsQuery(actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	stats, err := s.statsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStats(stats))
}
