package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrListStoresQueryIsNotConstructed = errors.New(
		"ListStoresQuery must be created via NewListStoresQuery constructor",
	)
	ErrGetStoreQueryIsNotConstructed = errors.New(
		"GetStoreQuery must be created via NewGetStoreQuery constructor",
	)
)

// ListStoresQuery is parameterless; stores are public.
type ListStoresQuery struct {
	guard guard.ConstructorGuard
}

func NewListStoresQuery() ListStoresQuery {
	return ListStoresQuery{guard: guard.NewConstructorGuard()}
}

func (q ListStoresQuery) Validate() error {
	return q.guard.Validate(ErrListStoresQueryIsNotConstructed)
}

// GetStoreQuery loads one store together with the usage of its pack.
type GetStoreQuery struct {
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetStoreQuery(storeID kernel.UUID) (GetStoreQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetStoreQuery{}, err
	}
	return GetStoreQuery{storeID: storeID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStoreQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreQueryIsNotConstructed)
}

func (q GetStoreQuery) StoreID() kernel.UUID {
	return q.storeID
}
