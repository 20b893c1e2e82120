package commands

import (
	"context"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/clock"
)

// PlaceOrderCommandHandler creates an order and consumes one delivery from the
// store's pack in the same transaction.
//
// The store is loaded first and stays locked until commit, so concurrent
// placements against one pack serialize and the (N+1)-th placement on a pack of
// N deliveries fails with errs.ErrQuotaExhausted.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	placement  services.OrderPlacement
	publisher  ports.EventPublisher
	clock      clock.Clock
}

func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	placement services.OrderPlacement,
	publisher ports.EventPublisher,
	clk clock.Clock,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		placement:  placement,
		publisher:  publisher,
		clock:      clk,
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	storeRepo := uow.StoreRepository()
	catalogRepo := uow.CatalogRepository()

	s, err := storeRepo.Get(ctx, cmd.StoreID())
	if err != nil {
		return err
	}

	products, err := catalogRepo.GetProducts(ctx, cmd.ProductIDs())
	if err != nil {
		return err
	}

	var pickupPoint *catalog.PickupPoint
	if id := cmd.Fulfillment().PickupPointID(); id != nil {
		point, pointErr := catalogRepo.GetPickupPoint(ctx, *id)
		if pointErr != nil {
			return pointErr
		}
		pickupPoint = &point
	}

	o, err := h.placement.Place(services.Placement{
		OrderID:       cmd.OrderID(),
		Customer:      cmd.Customer(),
		Lines:         cmd.Lines(),
		Fulfillment:   cmd.Fulfillment(),
		PaymentMethod: cmd.PaymentMethod(),
		Notes:         cmd.Notes(),
	}, s, products, pickupPoint, h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = storeRepo.Update(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, o.PullEvents())
	return nil
}
