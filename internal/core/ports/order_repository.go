// Package ports defines the contracts between the marketplace core and its adapters:
// repositories for every aggregate, the unit of work that binds them to one
// transaction, and the publisher that receives order events after commit.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted.
type OrderRepository interface {
	// Add persists a newly placed order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The write is rejected with
	// errs.ErrVersionIsInvalid when the stored version moved since the order was loaded.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order by id. Inside a unit of work the row stays locked until
	// commit or rollback. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns the orders matching the filter in insertion order. No pagination.
	//
	// Example:
	//   status := order.ReadyForPickup
	//   pool, err := repo.List(ctx, order.Filter{Scope: order.ScopeFor(driver), Status: &status})
	List(ctx context.Context, filter order.Filter) ([]*order.Order, error)
}
