package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// highlyRated is the rating from which a store counts as highly rated.
const highlyRated = 4.5

type GetStatsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetStatsQueryHandler(uowFactory ports.UnitOfWorkFactory) GetStatsQueryHandler {
	return GetStatsQueryHandler{uowFactory: uowFactory}
}

// Handle counts orders by lifecycle stage, stores and users by role.
// Active orders are those neither completed nor cancelled.
func (h GetStatsQueryHandler) Handle(ctx context.Context, query GetStatsQuery) (StatsView, error) {
	if err := query.Validate(); err != nil {
		return StatsView{}, err
	}
	if !query.Actor().IsAdmin() {
		return StatsView{}, errs.NewForbiddenError("only an admin reads marketplace statistics")
	}

	uow := h.uowFactory.Create()
	var stats StatsView

	orders, err := uow.OrderRepository().List(ctx, order.Filter{})
	if err != nil {
		return StatsView{}, err
	}
	stats.TotalOrders = len(orders)
	for _, o := range orders {
		switch status := o.Status(); {
		case status == order.Completed:
			stats.CompletedOrders++
		case !status.IsTerminal():
			stats.ActiveOrders++
			if status == order.InDelivery {
				stats.InDeliveryOrders++
			}
		}
	}

	stores, err := uow.StoreRepository().List(ctx)
	if err != nil {
		return StatsView{}, err
	}
	stats.TotalStores = len(stores)
	for _, s := range stores {
		if s.Profile().Rating >= highlyRated {
			stats.HighlyRatedStores++
		}
	}

	users, err := uow.CatalogRepository().ListUsers(ctx, kernel.RoleUnknown)
	if err != nil {
		return StatsView{}, err
	}
	stats.TotalUsers = len(users)
	for _, u := range users {
		switch u.Role() {
		case kernel.RoleCustomer:
			stats.Customers++
		case kernel.RoleStore:
			stats.StoreUsers++
		case kernel.RoleDriver:
			stats.Drivers++
		}
	}

	return stats, nil
}
