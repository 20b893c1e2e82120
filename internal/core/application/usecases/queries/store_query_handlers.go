package queries

import (
	"context"

	"marketplace/internal/core/ports"
)

type ListStoresQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListStoresQueryHandler(uowFactory ports.UnitOfWorkFactory) ListStoresQueryHandler {
	return ListStoresQueryHandler{uowFactory: uowFactory}
}

// Handle returns every store ordered by name.
func (h ListStoresQueryHandler) Handle(ctx context.Context, query ListStoresQuery) ([]StoreView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stores, err := h.uowFactory.Create().StoreRepository().List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]StoreView, 0, len(stores))
	for _, s := range stores {
		views = append(views, newStoreView(s))
	}
	return views, nil
}

// GetStoreQueryHandler reports pack usage against the configured low quota threshold.
type GetStoreQueryHandler struct {
	uowFactory        ports.UnitOfWorkFactory
	lowQuotaThreshold int
}

func NewGetStoreQueryHandler(uowFactory ports.UnitOfWorkFactory, lowQuotaThreshold int) GetStoreQueryHandler {
	return GetStoreQueryHandler{uowFactory: uowFactory, lowQuotaThreshold: lowQuotaThreshold}
}

func (h GetStoreQueryHandler) Handle(ctx context.Context, query GetStoreQuery) (StoreView, error) {
	if err := query.Validate(); err != nil {
		return StoreView{}, err
	}

	s, err := h.uowFactory.Create().StoreRepository().Get(ctx, query.StoreID())
	if err != nil {
		return StoreView{}, err
	}

	view := newStoreView(s)
	usage := s.Usage(h.lowQuotaThreshold)
	view.Usage = &usage
	return view, nil
}
