package ports

import (
	"context"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
)

// CatalogRepository gives access to reference data. The core only reads it;
// the Add methods exist for seeding.
type CatalogRepository interface {
	AddUser(ctx context.Context, user catalog.User) error
	GetUser(ctx context.Context, id kernel.UUID) (catalog.User, error)
	// ListUsers returns users with the given role, or every user for kernel.RoleUnknown.
	ListUsers(ctx context.Context, role kernel.Role) ([]catalog.User, error)

	AddProduct(ctx context.Context, product catalog.Product) error
	// GetProducts returns the products found among ids; missing ids are skipped.
	GetProducts(ctx context.Context, ids []kernel.UUID) ([]catalog.Product, error)
	ListProducts(ctx context.Context, storeID kernel.UUID) ([]catalog.Product, error)

	AddPickupPoint(ctx context.Context, point catalog.PickupPoint) error
	GetPickupPoint(ctx context.Context, id kernel.UUID) (catalog.PickupPoint, error)
	ListPickupPoints(ctx context.Context) ([]catalog.PickupPoint, error)

	AddPack(ctx context.Context, pack store.Pack) error
	GetPack(ctx context.Context, id kernel.UUID) (store.Pack, error)
	ListPacks(ctx context.Context) ([]store.Pack, error)
}
