// Package sqlstore provides the GORM-based implementation of the Unit of Work
// pattern over postgres, mysql and sqlite.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	s, err := uow.StoreRepository().Get(ctx, storeID) // SELECT ... FOR UPDATE
//	...
//	return uow.Commit(ctx)
//
// Concurrency:
//   - inside a transaction, orders and stores are read with row locks, so two
//     placements against one pack or two claims of one order run one after another
//   - every Update is conditional on the loaded version and fails with
//     errs.ErrVersionIsInvalid when another writer got there first
//   - repositories obtained without Begin read the committed state without locks
package sqlstore

import (
	"context"

	"marketplace/internal/adapters/out/sqlstore/catalogrepo"
	"marketplace/internal/adapters/out/sqlstore/notificationrepo"
	"marketplace/internal/adapters/out/sqlstore/orderrepo"
	"marketplace/internal/adapters/out/sqlstore/storerepo"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.UnitOfWork = (*GormUnitOfWork)(nil)

// GormUnitOfWorkFactory creates UnitOfWork instances over one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work; instances are not shared between goroutines.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the repositories.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling it twice does not nest.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. It is a no-op once committed or rolled back,
// so handlers defer it unconditionally.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db, inTx := uow.conn()
	return orderrepo.NewGormOrderRepository(db, inTx)
}

func (uow *GormUnitOfWork) StoreRepository() ports.StoreRepository {
	db, inTx := uow.conn()
	return storerepo.NewGormStoreRepository(db, inTx)
}

func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	db, _ := uow.conn()
	return catalogrepo.NewGormCatalogRepository(db)
}

func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	db, _ := uow.conn()
	return notificationrepo.NewGormNotificationRepository(db)
}

func (uow *GormUnitOfWork) conn() (*gorm.DB, bool) {
	if uow.tx != nil {
		return uow.tx, true
	}
	return uow.db, false
}
