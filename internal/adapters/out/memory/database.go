package memory

import (
	"sync"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
)

// tables is one full set of rows. The Database owns the committed set and every
// unit of work stages its writes in a set of its own.
type tables struct {
	orders        table[order.State]
	stores        table[store.State]
	notifications table[notification.State]
	users         table[catalog.User]
	products      table[catalog.Product]
	pickupPoints  table[catalog.PickupPoint]
	packs         table[store.Pack]
}

func newTables() tables {
	return tables{
		orders:        newTable[order.State](),
		stores:        newTable[store.State](),
		notifications: newTable[notification.State](),
		users:         newTable[catalog.User](),
		products:      newTable[catalog.Product](),
		pickupPoints:  newTable[catalog.PickupPoint](),
		packs:         newTable[store.Pack](),
	}
}

func (t *tables) merge(staged tables) {
	t.orders.merge(staged.orders)
	t.stores.merge(staged.stores)
	t.notifications.merge(staged.notifications)
	t.users.merge(staged.users)
	t.products.merge(staged.products)
	t.pickupPoints.merge(staged.pickupPoints)
	t.packs.merge(staged.packs)
}

type Database struct {
	// writer is a one-slot semaphore held by the active unit of work.
	writer chan struct{}

	mu        sync.RWMutex
	committed tables
}

func NewDatabase() *Database {
	return &Database{
		writer:    make(chan struct{}, 1),
		committed: newTables(),
	}
}

func (db *Database) read(fn func(t *tables)) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	fn(&db.committed)
}

func (db *Database) apply(staged tables) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.committed.merge(staged)
}

// The accessors below tolerate a nil set so callers can pass the staged rows of a
// unit of work that has not begun.

func (t *tables) orderRows() *table[order.State] {
	if t == nil {
		return nil
	}
	return &t.orders
}

func (t *tables) storeRows() *table[store.State] {
	if t == nil {
		return nil
	}
	return &t.stores
}

func (t *tables) notificationRows() *table[notification.State] {
	if t == nil {
		return nil
	}
	return &t.notifications
}

func (t *tables) userRows() *table[catalog.User] {
	if t == nil {
		return nil
	}
	return &t.users
}

func (t *tables) productRows() *table[catalog.Product] {
	if t == nil {
		return nil
	}
	return &t.products
}

func (t *tables) pickupPointRows() *table[catalog.PickupPoint] {
	if t == nil {
		return nil
	}
	return &t.pickupPoints
}

func (t *tables) packRows() *table[store.Pack] {
	if t == nil {
		return nil
	}
	return &t.packs
}
