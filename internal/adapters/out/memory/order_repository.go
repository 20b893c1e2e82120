package memory

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

var _ ports.OrderRepository = (*OrderRepository)(nil)

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.write(func(staged *tables) error {
		if _, exists := r.find(aggregate.ID()); exists {
			return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%s already exists", aggregate.ID()))
		}
		staged.orders.put(aggregate.ID(), aggregate.State())
		return nil
	})
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.write(func(staged *tables) error {
		if err := r.checkVersion(aggregate.ID(), aggregate.Version()); err != nil {
			return err
		}
		state := aggregate.State()
		state.Version++
		staged.orders.put(aggregate.ID(), state)
		return nil
	})
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	state, ok := r.find(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return order.Restore(state)
}

// List returns the visible orders in insertion order.
func (r *OrderRepository) List(_ context.Context, filter order.Filter) ([]*order.Order, error) {
	var states []order.State
	r.uow.view(func(staged, committed *tables) {
		states = visible(staged.orderRows(), committed.orderRows())
	})

	orders := make([]*order.Order, 0, len(states))
	for _, state := range states {
		o, err := order.Restore(state)
		if err != nil {
			return nil, err
		}
		if filter.Matches(o) {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *OrderRepository) find(id kernel.UUID) (order.State, bool) {
	var (
		state order.State
		ok    bool
	)
	r.uow.view(func(staged, committed *tables) {
		state, ok = lookup(staged.orderRows(), committed.orderRows(), id)
	})
	return state, ok
}

// checkVersion compares against the committed row; rows added in the running
// transaction have nothing to conflict with.
func (r *OrderRepository) checkVersion(id kernel.UUID, version int) error {
	var (
		current order.State
		found   bool
	)
	r.uow.db.read(func(committed *tables) {
		current, found = committed.orders.get(id)
	})

	if !found {
		if _, staged := r.find(id); staged {
			return nil
		}
		return errs.NewObjectNotFoundError("order", id)
	}
	if current.Version != version {
		return errs.NewVersionIsInvalidErrorWithCause("order version",
			fmt.Errorf("order %s is at version %d, update was based on %d", id, current.Version, version))
	}
	return nil
}
