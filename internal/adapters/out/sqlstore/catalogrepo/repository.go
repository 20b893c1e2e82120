package catalogrepo

import (
	"context"

	"marketplace/internal/adapters/out/sqlstore/gormx"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ ports.CatalogRepository = (*GormCatalogRepository)(nil)

// GormCatalogRepository implements CatalogRepository using GORM. Catalog rows
// are never locked: commands only read them.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) AddUser(ctx context.Context, user catalog.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	dto := userFromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return gormx.CreateError("user", user.ID(), err)
	}
	return nil
}

func (r *GormCatalogRepository) GetUser(ctx context.Context, id kernel.UUID) (catalog.User, error) {
	if err := id.Validate(); err != nil {
		return catalog.User{}, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return catalog.User{}, gormx.NotFound(err, "user", id)
	}
	return userToDomain(dto)
}

func (r *GormCatalogRepository) ListUsers(ctx context.Context, role kernel.Role) ([]catalog.User, error) {
	query := r.db.WithContext(ctx).Order("name, id")
	if role != kernel.RoleUnknown {
		query = query.Where("role = ?", role.String())
	}

	var dtos []UserDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, userToDomain)
}

func (r *GormCatalogRepository) AddProduct(ctx context.Context, product catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	dto := productFromDomain(product)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return gormx.CreateError("product", product.ID(), err)
	}
	return nil
}

// GetProducts returns the products found among ids; unknown ids are skipped.
func (r *GormCatalogRepository) GetProducts(ctx context.Context, ids []kernel.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, productToDomain)
}

func (r *GormCatalogRepository) ListProducts(ctx context.Context, storeID kernel.UUID) ([]catalog.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("name, id").Find(&dtos, "store_id = ?", storeID.Bytes()).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, productToDomain)
}

func (r *GormCatalogRepository) AddPickupPoint(ctx context.Context, point catalog.PickupPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	dto := pickupPointFromDomain(point)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return gormx.CreateError("pickup point", point.ID(), err)
	}
	return nil
}

func (r *GormCatalogRepository) GetPickupPoint(ctx context.Context, id kernel.UUID) (catalog.PickupPoint, error) {
	if err := id.Validate(); err != nil {
		return catalog.PickupPoint{}, err
	}

	var dto PickupPointDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return catalog.PickupPoint{}, gormx.NotFound(err, "pickup point", id)
	}
	return pickupPointToDomain(dto)
}

func (r *GormCatalogRepository) ListPickupPoints(ctx context.Context) ([]catalog.PickupPoint, error) {
	var dtos []PickupPointDTO
	if err := r.db.WithContext(ctx).Order("name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, pickupPointToDomain)
}

func (r *GormCatalogRepository) AddPack(ctx context.Context, pack store.Pack) error {
	if err := pack.Validate(); err != nil {
		return err
	}
	dto := packFromDomain(pack)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return gormx.CreateError("pack", pack.ID(), err)
	}
	return nil
}

func (r *GormCatalogRepository) GetPack(ctx context.Context, id kernel.UUID) (store.Pack, error) {
	if err := id.Validate(); err != nil {
		return store.Pack{}, err
	}

	var dto PackDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return store.Pack{}, gormx.NotFound(err, "pack", id)
	}
	return packToDomain(dto)
}

// ListPacks returns the pack catalog from the smallest to the largest pack.
func (r *GormCatalogRepository) ListPacks(ctx context.Context) ([]store.Pack, error) {
	var dtos []PackDTO
	if err := r.db.WithContext(ctx).Order("deliveries_count, id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, packToDomain)
}

func mapAll[D, V any](dtos []D, convert func(D) (V, error)) ([]V, error) {
	values := make([]V, 0, len(dtos))
	for _, dto := range dtos {
		v, err := convert(dto)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
