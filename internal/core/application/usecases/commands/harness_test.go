package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/clock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 5, 5, 10, 30, 0, 0, time.UTC)

type recordingPublisher struct {
	mu     sync.Mutex
	events []order.Event
}

func (p *recordingPublisher) Publish(_ context.Context, events []order.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
}

func (p *recordingPublisher) types() []order.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]order.EventType, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

type uowFactory struct {
	memory.UnitOfWorkFactory
}

func (f uowFactory) order() commands.OrderUoWFactory {
	return orderUoWFactory(func() commands.OrderUoW { return f.Create() })
}

func (f uowFactory) store() commands.StoreUoWFactory {
	return storeUoWFactory(func() commands.StoreUoW { return f.Create() })
}

func (f uowFactory) notification() commands.NotificationUoWFactory {
	return notificationUoWFactory(func() commands.NotificationUoW { return f.Create() })
}

func (f uowFactory) all() commands.UoWFactory {
	return allUoWFactory(func() commands.UoW { return f.Create() })
}

type orderUoWFactory func() commands.OrderUoW

func (f orderUoWFactory) Create() commands.OrderUoW { return f() }

type storeUoWFactory func() commands.StoreUoW

func (f storeUoWFactory) Create() commands.StoreUoW { return f() }

type notificationUoWFactory func() commands.NotificationUoW

func (f notificationUoWFactory) Create() commands.NotificationUoW { return f() }

type allUoWFactory func() commands.UoW

func (f allUoWFactory) Create() commands.UoW { return f() }

// harness is a seeded in-memory marketplace: one customer, two drivers, an admin
// and a bakery with a pack of the requested size.
type harness struct {
	factories uowFactory
	publisher *recordingPublisher
	now       time.Time

	customer kernel.Actor
	driver   kernel.Actor
	rival    kernel.Actor
	admin    kernel.Actor
	bakery   kernel.Actor

	storeID kernel.UUID
	bread   catalog.Product
	pack    store.Pack
}

func newHarness(t *testing.T, deliveries int) *harness {
	t.Helper()
	ctx := testContext(t)
	h := &harness{
		factories: uowFactory{memory.NewUnitOfWorkFactory(memory.NewDatabase())},
		publisher: &recordingPublisher{},
		now:       testNow,
	}
	uow := h.factories.Create()
	require.NoError(t, uow.Begin(ctx))
	catalogRepo := uow.CatalogRepository()

	addUser := func(name string, role kernel.Role) kernel.Actor {
		u, err := catalog.NewUser(kernel.NewUUID(), name, role, catalog.Contact{})
		require.NoError(t, err)
		require.NoError(t, catalogRepo.AddUser(ctx, u))
		return u.Actor()
	}
	h.customer = addUser("John Doe", kernel.RoleCustomer)
	h.driver = addUser("Mike Rider", kernel.RoleDriver)
	h.rival = addUser("Sam Swift", kernel.RoleDriver)
	h.admin = addUser("Admin User", kernel.RoleAdmin)

	location, err := kernel.NewGeoPoint(40.7128, -74.006)
	require.NoError(t, err)
	s, err := store.NewStore(kernel.NewUUID(), store.Profile{Name: "Jane's Bakery", Location: location})
	require.NoError(t, err)
	h.storeID = s.ID()
	h.bakery, err = kernel.NewActor(kernel.RoleStore, s.ID())
	require.NoError(t, err)

	h.pack, err = store.NewPack(kernel.NewUUID(), "Starter", 50, kernel.MoneyFromInt(25000),
		decimal.RequireFromString("0.15"), 30, "")
	require.NoError(t, err)
	require.NoError(t, catalogRepo.AddPack(ctx, h.pack))

	if deliveries > 0 {
		small, packErr := store.NewPack(kernel.NewUUID(), "Trial", deliveries, kernel.MoneyFromInt(0),
			decimal.RequireFromString("0.15"), 30, "")
		require.NoError(t, packErr)
		require.NoError(t, s.PurchasePack(h.admin, small, store.PolicyReject, testNow))
	}
	require.NoError(t, uow.StoreRepository().Add(ctx, s))

	price, err := kernel.MoneyFromString("5.99")
	require.NoError(t, err)
	h.bread, err = catalog.NewProduct(kernel.NewUUID(), s.ID(), "Sourdough Bread", "", price, "", true)
	require.NoError(t, err)
	require.NoError(t, catalogRepo.AddProduct(ctx, h.bread))

	require.NoError(t, uow.Commit(ctx))
	return h
}

func (h *harness) clock() clock.Clock {
	return clock.Func(func() time.Time { return h.now })
}

func (h *harness) placeHandler() commands.PlaceOrderCommandHandler {
	placement := services.NewOrderPlacement(services.NewPackAccountant(), true)
	return commands.NewPlaceOrderCommandHandler(h.factories.all(), placement, h.publisher, h.clock())
}

func (h *harness) advanceHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(h.factories.order(), h.publisher, h.clock())
}

func (h *harness) placeOrder(t *testing.T) kernel.UUID {
	t.Helper()
	location, err := kernel.NewGeoPoint(40.7158, -74.046)
	require.NoError(t, err)
	id := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(id, h.customer, h.storeID,
		[]services.Line{{ProductID: h.bread.ID(), Quantity: 4}},
		commands.DeliveryChoice{Address: "789 Pine St, City", Location: &location},
		order.PaymentMethodCash, "Ring twice")
	require.NoError(t, err)
	require.NoError(t, h.placeHandler().Handle(testContext(t), cmd))
	return id
}

// advanceTo moves an order forward as admin until it reaches status.
func (h *harness) advanceTo(t *testing.T, orderID kernel.UUID, status order.Status) {
	t.Helper()
	for h.order(t, orderID).Status() != status {
		cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, h.admin)
		require.NoError(t, err)
		require.NoError(t, h.advanceHandler().Handle(testContext(t), cmd))
	}
}

func (h *harness) order(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := h.factories.Create().OrderRepository().Get(testContext(t), id)
	require.NoError(t, err)
	return o
}

func (h *harness) store(t *testing.T) *store.Store {
	t.Helper()
	s, err := h.factories.Create().StoreRepository().Get(testContext(t), h.storeID)
	require.NoError(t, err)
	return s
}
