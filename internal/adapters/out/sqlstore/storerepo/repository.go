package storerepo

import (
	"context"

	"marketplace/internal/adapters/out/sqlstore/gormx"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.StoreRepository = (*GormStoreRepository)(nil)

// GormStoreRepository implements StoreRepository using GORM.
type GormStoreRepository struct {
	db   *gorm.DB
	lock bool
}

func NewGormStoreRepository(db *gorm.DB, lock bool) *GormStoreRepository {
	return &GormStoreRepository{db: db, lock: lock}
}

func (r *GormStoreRepository) Add(ctx context.Context, aggregate *store.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return gormx.CreateError("store", aggregate.ID(), err)
	}
	return nil
}

// Update rewrites the quota and pack columns. The profile is reference data
// and only changes through seeding.
func (r *GormStoreRepository) Update(ctx context.Context, aggregate *store.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	result := db.Model(&StoreDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"pack_id":               dto.Pack.ID,
			"pack_name":             dto.Pack.Name,
			"pack_deliveries_count": dto.Pack.DeliveriesCount,
			"pack_price":            dto.Pack.Price,
			"pack_commission_rate":  dto.Pack.CommissionRate,
			"pack_validity_days":    dto.Pack.ValidityDays,
			"pack_description":      dto.Pack.Description,
			"pack_purchased_at":     dto.PackPurchasedAt,
			"remaining_deliveries":  dto.RemainingDeliveries,
			"total_deliveries":      dto.TotalDeliveries,
			"low_quota_alerted":     dto.LowQuotaAlerted,
			"version":               dto.Version + 1,
		})

	return gormx.CheckVersioned(db, result, &StoreDTO{}, "store", aggregate.ID())
}

// Get loads a store. Inside a transaction the row stays locked until it ends,
// so placements against one pack run one at a time.
func (r *GormStoreRepository) Get(ctx context.Context, id kernel.UUID) (*store.Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StoreDTO
	err := gormx.ForUpdate(r.db.WithContext(ctx), r.lock).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, gormx.NotFound(err, "store", id)
	}

	return toDomain(dto)
}

func (r *GormStoreRepository) List(ctx context.Context) ([]*store.Store, error) {
	var dtos []StoreDTO
	if err := r.db.WithContext(ctx).Order("name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	stores := make([]*store.Store, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, nil
}
