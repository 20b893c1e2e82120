package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
)

// StoreRepository defines the persistence contract for store aggregates and their quota.
type StoreRepository interface {
	Add(ctx context.Context, aggregate *store.Store) error

	// Update persists quota and pack changes with the same version check as orders.
	Update(ctx context.Context, aggregate *store.Store) error

	// Get loads a store, locked for update inside a unit of work, so concurrent
	// placements against one pack serialize on it.
	Get(ctx context.Context, id kernel.UUID) (*store.Store, error)

	// List returns every store ordered by name.
	List(ctx context.Context) ([]*store.Store, error)
}
