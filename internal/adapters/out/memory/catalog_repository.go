package memory

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

var _ ports.CatalogRepository = (*CatalogRepository)(nil)

type CatalogRepository struct {
	uow *UnitOfWork
}

func (r *CatalogRepository) AddUser(_ context.Context, user catalog.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	return r.uow.write(func(staged *tables) error {
		if _, exists := r.user(user.ID()); exists {
			return duplicate("user", user.ID())
		}
		staged.users.put(user.ID(), user)
		return nil
	})
}

func (r *CatalogRepository) GetUser(_ context.Context, id kernel.UUID) (catalog.User, error) {
	user, ok := r.user(id)
	if !ok {
		return catalog.User{}, errs.NewObjectNotFoundError("user", id)
	}
	return user, nil
}

func (r *CatalogRepository) ListUsers(_ context.Context, role kernel.Role) ([]catalog.User, error) {
	var users []catalog.User
	r.uow.view(func(staged, committed *tables) {
		users = visible(staged.userRows(), committed.userRows())
	})
	if role == kernel.RoleUnknown {
		return users, nil
	}

	filtered := make([]catalog.User, 0, len(users))
	for _, user := range users {
		if user.Role() == role {
			filtered = append(filtered, user)
		}
	}
	return filtered, nil
}

func (r *CatalogRepository) AddProduct(_ context.Context, product catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	return r.uow.write(func(staged *tables) error {
		var exists bool
		r.uow.view(func(s, c *tables) {
			_, exists = lookup(s.productRows(), c.productRows(), product.ID())
		})
		if exists {
			return duplicate("product", product.ID())
		}
		staged.products.put(product.ID(), product)
		return nil
	})
}

func (r *CatalogRepository) GetProducts(_ context.Context, ids []kernel.UUID) ([]catalog.Product, error) {
	products := make([]catalog.Product, 0, len(ids))
	r.uow.view(func(staged, committed *tables) {
		for _, id := range ids {
			if product, ok := lookup(staged.productRows(), committed.productRows(), id); ok {
				products = append(products, product)
			}
		}
	})
	return products, nil
}

func (r *CatalogRepository) ListProducts(_ context.Context, storeID kernel.UUID) ([]catalog.Product, error) {
	var all []catalog.Product
	r.uow.view(func(staged, committed *tables) {
		all = visible(staged.productRows(), committed.productRows())
	})

	products := make([]catalog.Product, 0, len(all))
	for _, product := range all {
		if product.StoreID().IsEqual(storeID) {
			products = append(products, product)
		}
	}
	return products, nil
}

func (r *CatalogRepository) AddPickupPoint(_ context.Context, point catalog.PickupPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	return r.uow.write(func(staged *tables) error {
		var exists bool
		r.uow.view(func(s, c *tables) {
			_, exists = lookup(s.pickupPointRows(), c.pickupPointRows(), point.ID())
		})
		if exists {
			return duplicate("pickup point", point.ID())
		}
		staged.pickupPoints.put(point.ID(), point)
		return nil
	})
}

func (r *CatalogRepository) GetPickupPoint(_ context.Context, id kernel.UUID) (catalog.PickupPoint, error) {
	var (
		point catalog.PickupPoint
		ok    bool
	)
	r.uow.view(func(staged, committed *tables) {
		point, ok = lookup(staged.pickupPointRows(), committed.pickupPointRows(), id)
	})
	if !ok {
		return catalog.PickupPoint{}, errs.NewObjectNotFoundError("pickup point", id)
	}
	return point, nil
}

func (r *CatalogRepository) ListPickupPoints(_ context.Context) ([]catalog.PickupPoint, error) {
	var points []catalog.PickupPoint
	r.uow.view(func(staged, committed *tables) {
		points = visible(staged.pickupPointRows(), committed.pickupPointRows())
	})
	return points, nil
}

func (r *CatalogRepository) AddPack(_ context.Context, pack store.Pack) error {
	if err := pack.Validate(); err != nil {
		return err
	}
	return r.uow.write(func(staged *tables) error {
		var exists bool
		r.uow.view(func(s, c *tables) {
			_, exists = lookup(s.packRows(), c.packRows(), pack.ID())
		})
		if exists {
			return duplicate("pack", pack.ID())
		}
		staged.packs.put(pack.ID(), pack)
		return nil
	})
}

func (r *CatalogRepository) GetPack(_ context.Context, id kernel.UUID) (store.Pack, error) {
	var (
		pack store.Pack
		ok   bool
	)
	r.uow.view(func(staged, committed *tables) {
		pack, ok = lookup(staged.packRows(), committed.packRows(), id)
	})
	if !ok {
		return store.Pack{}, errs.NewObjectNotFoundError("pack", id)
	}
	return pack, nil
}

func (r *CatalogRepository) ListPacks(_ context.Context) ([]store.Pack, error) {
	var packs []store.Pack
	r.uow.view(func(staged, committed *tables) {
		packs = visible(staged.packRows(), committed.packRows())
	})
	return packs, nil
}

func (r *CatalogRepository) user(id kernel.UUID) (catalog.User, bool) {
	var (
		user catalog.User
		ok   bool
	)
	r.uow.view(func(staged, committed *tables) {
		user, ok = lookup(staged.userRows(), committed.userRows(), id)
	})
	return user, ok
}

func duplicate(entity string, id kernel.UUID) error {
	return errs.NewValueIsInvalidErrorWithCause(entity+" id", fmt.Errorf("%s already exists", id))
}
