package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// CatalogQueryHandler serves the read-only reference data: products, packs,
// pickup points and drivers.
type CatalogQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewCatalogQueryHandler(uowFactory ports.UnitOfWorkFactory) CatalogQueryHandler {
	return CatalogQueryHandler{uowFactory: uowFactory}
}

func (h CatalogQueryHandler) ListProducts(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	// an unknown store is a 404, not an empty list
	if _, err := uow.StoreRepository().Get(ctx, query.StoreID()); err != nil {
		return nil, err
	}

	products, err := uow.CatalogRepository().ListProducts(ctx, query.StoreID())
	if err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}
	return views, nil
}

func (h CatalogQueryHandler) ListPacks(ctx context.Context, query ListPacksQuery) ([]PackView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	packs, err := h.uowFactory.Create().CatalogRepository().ListPacks(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]PackView, 0, len(packs))
	for _, p := range packs {
		views = append(views, newPackView(p))
	}
	return views, nil
}

func (h CatalogQueryHandler) ListPickupPoints(
	ctx context.Context,
	query ListPickupPointsQuery,
) ([]PickupPointView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	points, err := h.uowFactory.Create().CatalogRepository().ListPickupPoints(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]PickupPointView, 0, len(points))
	for _, p := range points {
		if !p.IsActive() {
			continue
		}
		views = append(views, newPickupPointView(p))
	}
	return views, nil
}

func (h CatalogQueryHandler) ListDrivers(ctx context.Context, query ListDriversQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users, err := h.uowFactory.Create().CatalogRepository().ListUsers(ctx, kernel.RoleDriver)
	if err != nil {
		return nil, err
	}

	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, newUserView(u))
	}
	return views, nil
}
