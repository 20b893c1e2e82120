package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
	ErrListPacksQueryIsNotConstructed = errors.New(
		"ListPacksQuery must be created via NewListPacksQuery constructor",
	)
	ErrListPickupPointsQueryIsNotConstructed = errors.New(
		"ListPickupPointsQuery must be created via NewListPickupPointsQuery constructor",
	)
	ErrListDriversQueryIsNotConstructed = errors.New(
		"ListDriversQuery must be created via NewListDriversQuery constructor",
	)
)

// ListProductsQuery lists the products of one store, available or not.
type ListProductsQuery struct {
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListProductsQuery(storeID kernel.UUID) (ListProductsQuery, error) {
	if err := storeID.Validate(); err != nil {
		return ListProductsQuery{}, err
	}
	return ListProductsQuery{storeID: storeID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

func (q ListProductsQuery) StoreID() kernel.UUID {
	return q.storeID
}

type ListPacksQuery struct {
	guard guard.ConstructorGuard
}

func NewListPacksQuery() ListPacksQuery {
	return ListPacksQuery{guard: guard.NewConstructorGuard()}
}

func (q ListPacksQuery) Validate() error {
	return q.guard.Validate(ErrListPacksQueryIsNotConstructed)
}

// ListPickupPointsQuery returns only the active pickup points.
type ListPickupPointsQuery struct {
	guard guard.ConstructorGuard
}

func NewListPickupPointsQuery() ListPickupPointsQuery {
	return ListPickupPointsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListPickupPointsQuery) Validate() error {
	return q.guard.Validate(ErrListPickupPointsQueryIsNotConstructed)
}

type ListDriversQuery struct {
	guard guard.ConstructorGuard
}

func NewListDriversQuery() ListDriversQuery {
	return ListDriversQuery{guard: guard.NewConstructorGuard()}
}

func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}
