package orderrepo

import (
	"context"

	"marketplace/internal/adapters/out/sqlstore/gormx"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db   *gorm.DB
	lock bool
}

// NewGormOrderRepository creates a repository over db. With lock set, Get
// takes a row lock that lasts until the surrounding transaction ends.
func NewGormOrderRepository(db *gorm.DB, lock bool) *GormOrderRepository {
	return &GormOrderRepository{db: db, lock: lock}
}

// Add inserts the order together with its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return gormx.CreateError("order", aggregate.ID(), err)
	}
	return nil
}

// Update writes the mutable columns and bumps the version. Items are fixed at
// placement and never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"driver_id":          dto.DriverID,
			"status":             dto.Status,
			"payment_status":     dto.PaymentStatus,
			"customer_validated": dto.CustomerValidated,
			"driver_validated":   dto.DriverValidated,
			"updated_at":         dto.UpdatedAt,
			"version":            dto.Version + 1,
		})

	return gormx.CheckVersioned(db, result, &OrderDTO{}, "order", aggregate.ID())
}

// Get loads an order with its items, locked for update inside a transaction.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := gormx.ForUpdate(r.db.WithContext(ctx), r.lock).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, gormx.NotFound(err, "order", id)
	}

	if err = r.db.WithContext(ctx).Order("position").Find(&dto.Items, "order_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// List pushes the visibility scope and status filter down to SQL and returns
// rows in insertion order.
func (r *GormOrderRepository) List(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("seq")

	scope := filter.Scope
	switch {
	case scope.CustomerID != nil:
		query = query.Where("customer_id = ?", scope.CustomerID.Bytes())
	case scope.StoreID != nil:
		query = query.Where("store_id = ?", scope.StoreID.Bytes())
	case scope.DriverID != nil:
		query = query.Where("(driver_id = ? OR (driver_id IS NULL AND status = ?))",
			scope.DriverID.Bytes(), int(order.ReadyForPickup))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", int(*filter.Status))
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
