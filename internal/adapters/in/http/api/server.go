package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/advance)
	AdvanceOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/assign-driver)
	AssignDriver(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/claim)
	ClaimOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/validate)
	ValidateDelivery(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/payment)
	RecordPayment(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /api/v1/stores)
	ListStores(ctx echo.Context) error
	// (GET /api/v1/stores/{storeId})
	GetStore(ctx echo.Context, storeId openapi_types.UUID) error
	// (GET /api/v1/stores/{storeId}/products)
	ListProducts(ctx echo.Context, storeId openapi_types.UUID) error
	// (POST /api/v1/stores/{storeId}/purchase-pack)
	PurchasePack(ctx echo.Context, storeId openapi_types.UUID) error
	// (GET /api/v1/packs)
	ListPacks(ctx echo.Context) error
	// (GET /api/v1/pickup-points)
	ListPickupPoints(ctx echo.Context) error
	// (GET /api/v1/drivers)
	ListDrivers(ctx echo.Context) error
	// (GET /api/v1/notifications)
	ListNotifications(ctx echo.Context) error
	// (POST /api/v1/notifications/{notificationId}/read)
	MarkNotificationRead(ctx echo.Context, notificationId openapi_types.UUID) error
	// (GET /api/v1/stats)
	GetStats(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	return bindUUID(ctx, "orderId", w.Handler.GetOrder)
}

func (w *ServerInterfaceWrapper) AdvanceOrder(ctx echo.Context) error {
	return bindUUID(ctx, "orderId", w.Handler.AdvanceOrder)
}

func (w *ServerInterfaceWrapper) AssignDriver(ctx echo.Context) error {
	return bindUUID(ctx, "orderId", w.Handler.AssignDriver)
}

func (w *ServerInterfaceWrapper) ClaimOrder(ctx echo.Context) error {
	return bindUUID(ctx, "orderId", w.Handler.ClaimOrder)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	return bindUUID(ctx, "orderId", w.Handler.CancelOrder)
}

func (w *ServerInterfaceWrapper) ValidateDelivery(ctx echo.Context) error {
	return bindUUID(ctx, "orderId", w.Handler.ValidateDelivery)
}

func (w *ServerInterfaceWrapper) RecordPayment(ctx echo.Context) error {
	return bindUUID(ctx, "orderId", w.Handler.RecordPayment)
}

func (w *ServerInterfaceWrapper) ListStores(ctx echo.Context) error {
	return w.Handler.ListStores(ctx)
}

func (w *ServerInterfaceWrapper) GetStore(ctx echo.Context) error {
	return bindUUID(ctx, "storeId", w.Handler.GetStore)
}

func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	return bindUUID(ctx, "storeId", w.Handler.ListProducts)
}

func (w *ServerInterfaceWrapper) PurchasePack(ctx echo.Context) error {
	return bindUUID(ctx, "storeId", w.Handler.PurchasePack)
}

func (w *ServerInterfaceWrapper) ListPacks(ctx echo.Context) error {
	return w.Handler.ListPacks(ctx)
}

func (w *ServerInterfaceWrapper) ListPickupPoints(ctx echo.Context) error {
	return w.Handler.ListPickupPoints(ctx)
}

func (w *ServerInterfaceWrapper) ListDrivers(ctx echo.Context) error {
	return w.Handler.ListDrivers(ctx)
}

func (w *ServerInterfaceWrapper) ListNotifications(ctx echo.Context) error {
	return w.Handler.ListNotifications(ctx)
}

func (w *ServerInterfaceWrapper) MarkNotificationRead(ctx echo.Context) error {
	return bindUUID(ctx, "notificationId", w.Handler.MarkNotificationRead)
}

func (w *ServerInterfaceWrapper) GetStats(ctx echo.Context) error {
	return w.Handler.GetStats(ctx)
}

// bindUUID binds the simple-style path parameter name and hands it to next.
func bindUUID(ctx echo.Context, name string, next func(echo.Context, openapi_types.UUID) error) error {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}

	return next(ctx, id)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.PlaceOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/advance", wrapper.AdvanceOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/assign-driver", wrapper.AssignDriver)
	router.POST(baseURL+"/api/v1/orders/:orderId/claim", wrapper.ClaimOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/validate", wrapper.ValidateDelivery)
	router.POST(baseURL+"/api/v1/orders/:orderId/payment", wrapper.RecordPayment)
	router.GET(baseURL+"/api/v1/stores", wrapper.ListStores)
	router.GET(baseURL+"/api/v1/stores/:storeId", wrapper.GetStore)
	router.GET(baseURL+"/api/v1/stores/:storeId/products", wrapper.ListProducts)
	router.POST(baseURL+"/api/v1/stores/:storeId/purchase-pack", wrapper.PurchasePack)
	router.GET(baseURL+"/api/v1/packs", wrapper.ListPacks)
	router.GET(baseURL+"/api/v1/pickup-points", wrapper.ListPickupPoints)
	router.GET(baseURL+"/api/v1/drivers", wrapper.ListDrivers)
	router.GET(baseURL+"/api/v1/notifications", wrapper.ListNotifications)
	router.POST(baseURL+"/api/v1/notifications/:notificationId/read", wrapper.MarkNotificationRead)
	router.GET(baseURL+"/api/v1/stats", wrapper.GetStats)
}
