package memory

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

var ErrNoActiveTransaction = errors.New("no active transaction")

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

type UnitOfWork struct {
	db     *Database
	staged *tables
}

func NewUnitOfWork(db *Database) *UnitOfWork {
	return &UnitOfWork{db: db}
}

type UnitOfWorkFactory struct {
	db *Database
}

func NewUnitOfWorkFactory(db *Database) UnitOfWorkFactory {
	return UnitOfWorkFactory{db: db}
}

func (f UnitOfWorkFactory) Create() ports.UnitOfWork {
	return NewUnitOfWork(f.db)
}

// Begin waits for the writer lock or for ctx to end.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.staged != nil {
		return errors.New("transaction already started")
	}

	select {
	case u.db.writer <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	staged := newTables()
	u.staged = &staged
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.staged == nil {
		return ErrNoActiveTransaction
	}

	u.db.apply(*u.staged)
	u.release()
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.staged == nil {
		return nil
	}

	u.release()
	return nil
}

func (u *UnitOfWork) release() {
	u.staged = nil
	<-u.db.writer
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

func (u *UnitOfWork) StoreRepository() ports.StoreRepository {
	return &StoreRepository{uow: u}
}

func (u *UnitOfWork) CatalogRepository() ports.CatalogRepository {
	return &CatalogRepository{uow: u}
}

func (u *UnitOfWork) NotificationRepository() ports.NotificationRepository {
	return &NotificationRepository{uow: u}
}

// view calls fn with the staged rows (nil outside a transaction) and the committed rows.
func (u *UnitOfWork) view(fn func(staged *tables, committed *tables)) {
	u.db.read(func(committed *tables) {
		fn(u.staged, committed)
	})
}

// write stages a change. Outside a transaction it takes the writer lock and is
// applied immediately.
func (u *UnitOfWork) write(fn func(staged *tables) error) error {
	if u.staged != nil {
		return fn(u.staged)
	}

	u.db.writer <- struct{}{}
	defer func() { <-u.db.writer }()

	direct := newTables()
	if err := fn(&direct); err != nil {
		return err
	}
	u.db.apply(direct)
	return nil
}

// lookup finds a row, preferring the staged copy.
func lookup[V any](staged, committed *table[V], id kernel.UUID) (V, bool) {
	if staged != nil {
		if v, ok := staged.get(id); ok {
			return v, true
		}
	}
	return committed.get(id)
}

// visible lists committed rows with staged rows layered on top, in insertion order.
func visible[V any](staged, committed *table[V]) []V {
	values := make([]V, 0, len(committed.order))
	for _, id := range committed.order {
		v := committed.rows[id]
		if staged != nil {
			if override, ok := staged.get(id); ok {
				v = override
			}
		}
		values = append(values, v)
	}
	if staged != nil {
		for _, id := range staged.order {
			if !committed.has(id) {
				values = append(values, staged.rows[id])
			}
		}
	}
	return values
}
