package memory_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 5, 5, 10, 30, 0, 0, time.UTC)

func newOrder(t *testing.T, customerID, storeID kernel.UUID, createdAt time.Time) *order.Order {
	t.Helper()
	price, err := kernel.MoneyFromString("5.99")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Sourdough Bread", 2, price)
	require.NoError(t, err)
	f, err := order.NewPickup(kernel.NewUUID())
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		CustomerID:    customerID,
		StoreID:       storeID,
		Items:         []order.Item{item},
		Fulfillment:   f,
		PaymentMethod: order.PaymentMethodCash,
	}, createdAt)
	require.NoError(t, err)
	return o
}

func admin(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.RoleAdmin, kernel.NewUUID())
	require.NoError(t, err)
	return actor
}

func TestUnitOfWork_CommitMakesWritesVisible(t *testing.T) {
	ctx := testContext(t)
	db := memory.NewDatabase()
	o := newOrder(t, kernel.NewUUID(), kernel.NewUUID(), testNow)

	uow := memory.NewUnitOfWork(db)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))

	_, err := memory.NewUnitOfWork(db).OrderRepository().Get(ctx, o.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound, "staged writes stay private")

	staged, err := uow.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err, "the transaction reads its own writes")
	assert.True(t, staged.IsEqual(o))

	require.NoError(t, uow.Commit(ctx))
	require.NoError(t, uow.Rollback(ctx), "rollback after commit is a no-op")

	loaded, err := memory.NewUnitOfWork(db).OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, o.State(), loaded.State())
}

func TestUnitOfWork_RollbackDiscardsWrites(t *testing.T) {
	ctx := testContext(t)
	db := memory.NewDatabase()
	o := newOrder(t, kernel.NewUUID(), kernel.NewUUID(), testNow)

	uow := memory.NewUnitOfWork(db)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Rollback(ctx))

	_, err := memory.NewUnitOfWork(db).OrderRepository().Get(ctx, o.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUnitOfWork_SerializesWriters(t *testing.T) {
	ctx := testContext(t)
	db := memory.NewDatabase()

	first := memory.NewUnitOfWork(db)
	require.NoError(t, first.Begin(ctx))

	waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	err := memory.NewUnitOfWork(db).Begin(waitCtx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, first.Rollback(ctx))
	second := memory.NewUnitOfWork(db)
	require.NoError(t, second.Begin(ctx))
	require.NoError(t, second.Rollback(ctx))
}

func TestUnitOfWork_CommitWithoutBegin(t *testing.T) {
	err := memory.NewUnitOfWork(memory.NewDatabase()).Commit(testContext(t))

	require.ErrorIs(t, err, memory.ErrNoActiveTransaction)
}

func TestOrderRepository_Update(t *testing.T) {
	ctx := testContext(t)
	db := memory.NewDatabase()
	o := newOrder(t, kernel.NewUUID(), kernel.NewUUID(), testNow)
	require.NoError(t, memory.NewUnitOfWork(db).OrderRepository().Add(ctx, o))

	t.Run("bumps the version", func(t *testing.T) {
		repo := memory.NewUnitOfWork(db).OrderRepository()
		loaded, err := repo.Get(ctx, o.ID())
		require.NoError(t, err)
		require.NoError(t, loaded.Advance(admin(t), testNow))

		require.NoError(t, repo.Update(ctx, loaded))

		reloaded, err := repo.Get(ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, loaded.Version()+1, reloaded.Version())
		assert.Equal(t, order.Confirmed, reloaded.Status())
	})

	t.Run("rejects a stale write", func(t *testing.T) {
		repo := memory.NewUnitOfWork(db).OrderRepository()
		stale, err := repo.Get(ctx, o.ID())
		require.NoError(t, err)
		fresh, err := repo.Get(ctx, o.ID())
		require.NoError(t, err)
		require.NoError(t, fresh.Advance(admin(t), testNow))
		require.NoError(t, repo.Update(ctx, fresh))

		require.NoError(t, stale.Cancel(admin(t), testNow))
		err = repo.Update(ctx, stale)

		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})

	t.Run("unknown order", func(t *testing.T) {
		err := memory.NewUnitOfWork(db).OrderRepository().Update(ctx, newOrder(t, kernel.NewUUID(), kernel.NewUUID(), testNow))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrderRepository_Add_Duplicate(t *testing.T) {
	ctx := testContext(t)
	repo := memory.NewUnitOfWork(memory.NewDatabase()).OrderRepository()
	o := newOrder(t, kernel.NewUUID(), kernel.NewUUID(), testNow)
	require.NoError(t, repo.Add(ctx, o))

	require.ErrorIs(t, repo.Add(ctx, o), errs.ErrValueIsInvalid)
}

func TestOrderRepository_List(t *testing.T) {
	ctx := testContext(t)
	db := memory.NewDatabase()
	repo := memory.NewUnitOfWork(db).OrderRepository()

	customerID, storeA, storeB := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	first := newOrder(t, customerID, storeA, testNow)
	second := newOrder(t, kernel.NewUUID(), storeB, testNow.Add(time.Minute))
	third := newOrder(t, customerID, storeB, testNow.Add(2*time.Minute))
	for _, o := range []*order.Order{third, first, second} {
		require.NoError(t, repo.Add(ctx, o))
	}

	t.Run("admin sees everything in insertion order", func(t *testing.T) {
		orders, err := repo.List(ctx, order.Filter{})

		require.NoError(t, err)
		require.Len(t, orders, 3)
		assert.True(t, orders[0].IsEqual(third))
		assert.True(t, orders[1].IsEqual(first))
		assert.True(t, orders[2].IsEqual(second))
	})

	t.Run("customer scope", func(t *testing.T) {
		customer, _ := kernel.NewActor(kernel.RoleCustomer, customerID)

		orders, err := repo.List(ctx, order.Filter{Scope: order.ScopeFor(customer)})

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.True(t, orders[0].IsEqual(third))
		assert.True(t, orders[1].IsEqual(first))
	})

	t.Run("store scope with status filter", func(t *testing.T) {
		s, _ := kernel.NewActor(kernel.RoleStore, storeB)
		pending := order.Pending
		confirmed := order.Confirmed

		orders, err := repo.List(ctx, order.Filter{Scope: order.ScopeFor(s), Status: &pending})
		require.NoError(t, err)
		assert.Len(t, orders, 2)

		orders, err = repo.List(ctx, order.Filter{Scope: order.ScopeFor(s), Status: &confirmed})
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestOrderRepository_ListKeepsInsertionOrderForEqualTimestamps(t *testing.T) {
	ctx := testContext(t)
	db := memory.NewDatabase()
	customerID, storeID := kernel.NewUUID(), kernel.NewUUID()

	var placed []kernel.UUID
	for _i := 0; _i < 3; _i++ {
		o := newOrder(t, customerID, storeID, testNow)
		require.NoError(t, memory.NewUnitOfWork(db).OrderRepository().Add(ctx, o))
		placed = append(placed, o.ID())
	}

	uow := memory.NewUnitOfWork(db)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback(ctx) //nolint:errcheck
	staged := newOrder(t, customerID, storeID, testNow)
	require.NoError(t, uow.OrderRepository().Add(ctx, staged))

	for _i := 0; _i < 5; _i++ {
		orders, err := uow.OrderRepository().List(ctx, order.Filter{})
		require.NoError(t, err)

		ids := make([]kernel.UUID, 0, len(orders))
		for _, o := range orders {
			ids = append(ids, o.ID())
		}
		assert.Equal(t, append(append([]kernel.UUID{}, placed...), staged.ID()), ids)
	}
}
