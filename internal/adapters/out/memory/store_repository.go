package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

var _ ports.StoreRepository = (*StoreRepository)(nil)

type StoreRepository struct {
	uow *UnitOfWork
}

func (r *StoreRepository) Add(_ context.Context, aggregate *store.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.write(func(staged *tables) error {
		if _, exists := r.find(aggregate.ID()); exists {
			return errs.NewValueIsInvalidErrorWithCause("store id", fmt.Errorf("%s already exists", aggregate.ID()))
		}
		staged.stores.put(aggregate.ID(), aggregate.State())
		return nil
	})
}

func (r *StoreRepository) Update(_ context.Context, aggregate *store.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.write(func(staged *tables) error {
		var (
			current store.State
			found   bool
		)
		r.uow.db.read(func(committed *tables) {
			current, found = committed.stores.get(aggregate.ID())
		})

		switch {
		case !found:
			if _, pending := r.find(aggregate.ID()); !pending {
				return errs.NewObjectNotFoundError("store", aggregate.ID())
			}
		case current.Version != aggregate.Version():
			return errs.NewVersionIsInvalidErrorWithCause("store version",
				fmt.Errorf("store %s is at version %d, update was based on %d",
					aggregate.ID(), current.Version, aggregate.Version()))
		}

		state := aggregate.State()
		state.Version++
		staged.stores.put(aggregate.ID(), state)
		return nil
	})
}

func (r *StoreRepository) Get(_ context.Context, id kernel.UUID) (*store.Store, error) {
	state, ok := r.find(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("store", id)
	}
	return store.Restore(state)
}

func (r *StoreRepository) List(_ context.Context) ([]*store.Store, error) {
	var states []store.State
	r.uow.view(func(staged, committed *tables) {
		states = visible(staged.storeRows(), committed.storeRows())
	})

	slices.SortStableFunc(states, func(a, b store.State) int {
		return strings.Compare(a.Profile.Name, b.Profile.Name)
	})

	stores := make([]*store.Store, 0, len(states))
	for _, state := range states {
		s, err := store.Restore(state)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, nil
}

func (r *StoreRepository) find(id kernel.UUID) (store.State, bool) {
	var (
		state store.State
		ok    bool
	)
	r.uow.view(func(staged, committed *tables) {
		state, ok = lookup(staged.storeRows(), committed.storeRows(), id)
	})
	return state, ok
}
