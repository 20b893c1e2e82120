package sqlstore_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"marketplace/internal/adapters/out/sqlstore"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/clock"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, 5, 5, 10, 30, 0, 0, time.UTC)

// RepositorySuite runs the same persistence contract against every SQL dialect.
// Concrete suites set db in SetupSuite.
type RepositorySuite struct {
	suite.Suite
	db      *gorm.DB
	factory *sqlstore.GormUnitOfWorkFactory
	ctx     context.Context

	admin    kernel.Actor
	customer kernel.Actor
	driver   kernel.Actor
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	for _, table := range []string{
		"order_items", "orders", "notifications", "stores",
		"products", "pickup_points", "delivery_packs", "users",
	} {
		s.Require().NoError(s.db.Exec("DELETE FROM " + table).Error)
	}
	s.factory = sqlstore.NewGormUnitOfWorkFactory(s.db)

	s.admin = s.addUser("Admin User", kernel.RoleAdmin)
	s.customer = s.addUser("John Doe", kernel.RoleCustomer)
	s.driver = s.addUser("Mike Rider", kernel.RoleDriver)
}

func (s *RepositorySuite) addUser(name string, role kernel.Role) kernel.Actor {
	u, err := catalog.NewUser(kernel.NewUUID(), name, role, catalog.Contact{Email: "user@example.com", Phone: "+1-555"})
	s.Require().NoError(err)
	s.Require().NoError(s.factory.Create().CatalogRepository().AddUser(s.ctx, u))
	return u.Actor()
}

func (s *RepositorySuite) newStore(name string, deliveries int) *store.Store {
	location, err := kernel.NewGeoPoint(40.7128, -74.006)
	s.Require().NoError(err)
	st, err := store.NewStore(kernel.NewUUID(), store.Profile{
		Name:       name,
		Address:    "123 Main St",
		Rating:     4.5,
		Location:   location,
		Categories: []string{"Bakery", "Breakfast"},
	})
	s.Require().NoError(err)

	if deliveries > 0 {
		pack, packErr := store.NewPack(kernel.NewUUID(), "Starter", deliveries, kernel.MoneyFromInt(25000),
			decimal.RequireFromString("0.15"), 30, "For small stores")
		s.Require().NoError(packErr)
		s.Require().NoError(st.PurchasePack(s.admin, pack, store.PolicyReject, testNow))
	}
	return st
}

func (s *RepositorySuite) newOrder(storeID kernel.UUID, createdAt time.Time) *order.Order {
	price, err := kernel.MoneyFromString("23.95")
	s.Require().NoError(err)
	first, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Sourdough Bread", 1, price)
	s.Require().NoError(err)
	second, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Croissant", 3, kernel.MoneyFromInt(2))
	s.Require().NoError(err)
	location, err := kernel.NewGeoPoint(40.7158, -74.046)
	s.Require().NoError(err)
	fulfillment, err := order.NewHomeDelivery("789 Pine St, City", location)
	s.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		CustomerID:    s.customer.ID(),
		StoreID:       storeID,
		Items:         []order.Item{first, second},
		Fulfillment:   fulfillment,
		PaymentMethod: order.PaymentMethodAirtel,
		Charges:       order.Charges{DeliveryFee: kernel.MoneyFromInt(1500), DriverCommission: kernel.MoneyFromInt(4)},
		Notes:         "Ring twice",
	}, createdAt)
	s.Require().NoError(err)
	return o
}

func (s *RepositorySuite) TestOrder_RoundTrip() {
	o := s.newOrder(kernel.NewUUID(), testNow)
	repo := s.factory.Create().OrderRepository()
	s.Require().NoError(repo.Add(s.ctx, o))

	loaded, err := repo.Get(s.ctx, o.ID())

	s.Require().NoError(err)
	s.Equal(order.Pending, loaded.Status())
	s.Equal(order.PaymentMethodAirtel, loaded.PaymentMethod())
	s.Equal(order.PaymentStatusPending, loaded.PaymentStatus())
	s.True(loaded.Total().IsEqual(o.Total()))
	s.True(loaded.DeliveryFee().IsEqual(kernel.MoneyFromInt(1500)))
	s.Equal("789 Pine St, City", loaded.Fulfillment().Address())
	s.InDelta(40.7158, loaded.Fulfillment().Location().Latitude(), 1e-9)
	s.Require().Len(loaded.Items(), 2)
	s.Equal("Sourdough Bread", loaded.Items()[0].Name())
	s.Equal("Croissant", loaded.Items()[1].Name())
	s.True(loaded.CreatedAt().Equal(testNow))
	s.Equal("Ring twice", loaded.Notes())
	s.Equal(0, loaded.Version())
}

func (s *RepositorySuite) TestOrder_PickupRoundTrip() {
	pointID := kernel.NewUUID()
	fulfillment, err := order.NewPickup(pointID)
	s.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Apples", 2, kernel.MoneyFromInt(300))
	s.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		CustomerID:    s.customer.ID(),
		StoreID:       kernel.NewUUID(),
		Items:         []order.Item{item},
		Fulfillment:   fulfillment,
		PaymentMethod: order.PaymentMethodCash,
	}, testNow)
	s.Require().NoError(err)
	repo := s.factory.Create().OrderRepository()
	s.Require().NoError(repo.Add(s.ctx, o))

	loaded, err := repo.Get(s.ctx, o.ID())

	s.Require().NoError(err)
	s.True(loaded.Fulfillment().IsPickup())
	s.Require().NotNil(loaded.Fulfillment().PickupPointID())
	s.True(loaded.Fulfillment().PickupPointID().IsEqual(pointID))
	s.True(loaded.DeliveryFee().IsZero())
}

func (s *RepositorySuite) TestOrder_AddDuplicate() {
	o := s.newOrder(kernel.NewUUID(), testNow)
	repo := s.factory.Create().OrderRepository()
	s.Require().NoError(repo.Add(s.ctx, o))

	err := repo.Add(s.ctx, o)

	s.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (s *RepositorySuite) TestOrder_GetUnknown() {
	_, err := s.factory.Create().OrderRepository().Get(s.ctx, kernel.NewUUID())

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *RepositorySuite) TestOrder_UpdateBumpsVersionAndRejectsStaleWrite() {
	o := s.newOrder(kernel.NewUUID(), testNow)
	repo := s.factory.Create().OrderRepository()
	s.Require().NoError(repo.Add(s.ctx, o))

	first, err := repo.Get(s.ctx, o.ID())
	s.Require().NoError(err)
	stale, err := repo.Get(s.ctx, o.ID())
	s.Require().NoError(err)

	s.Require().NoError(first.Advance(s.admin, testNow.Add(time.Minute)))
	s.Require().NoError(repo.Update(s.ctx, first))

	s.Require().NoError(stale.Cancel(s.admin, testNow.Add(time.Minute)))
	err = repo.Update(s.ctx, stale)
	s.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	loaded, err := repo.Get(s.ctx, o.ID())
	s.Require().NoError(err)
	s.Equal(order.Confirmed, loaded.Status())
	s.Equal(1, loaded.Version())
}

func (s *RepositorySuite) TestOrder_UpdateUnknown() {
	err := s.factory.Create().OrderRepository().Update(s.ctx, s.newOrder(kernel.NewUUID(), testNow))

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *RepositorySuite) TestOrder_ListScopes() {
	storeID := kernel.NewUUID()
	repo := s.factory.Create().OrderRepository()

	pending := s.newOrder(storeID, testNow)
	ready := s.newOrder(storeID, testNow.Add(time.Minute))
	for _i := 0; _i < 3; _i++ {
		s.Require().NoError(ready.Advance(s.admin, testNow))
	}
	other := s.newOrder(kernel.NewUUID(), testNow.Add(2*time.Minute))
	for _, o := range []*order.Order{other, ready, pending} {
		s.Require().NoError(repo.Add(s.ctx, o))
	}

	storeActor, err := kernel.NewActor(kernel.RoleStore, storeID)
	s.Require().NoError(err)
	readyStatus := order.ReadyForPickup

	cases := []struct {
		name   string
		filter order.Filter
		want   []kernel.UUID
	}{
		{"admin sees all in insertion order", order.Filter{Scope: order.ScopeFor(s.admin)},
			[]kernel.UUID{other.ID(), ready.ID(), pending.ID()}},
		{"store sees its orders", order.Filter{Scope: order.ScopeFor(storeActor)},
			[]kernel.UUID{ready.ID(), pending.ID()}},
		{"driver sees the claim pool", order.Filter{Scope: order.ScopeFor(s.driver)},
			[]kernel.UUID{ready.ID()}},
		{"exact status", order.Filter{Scope: order.ScopeFor(s.customer), Status: &readyStatus},
			[]kernel.UUID{ready.ID()}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			orders, listErr := repo.List(s.ctx, tc.filter)
			s.Require().NoError(listErr)
			ids := make([]kernel.UUID, 0, len(orders))
			for _, o := range orders {
				ids = append(ids, o.ID())
			}
			s.Equal(tc.want, ids)
		})
	}
}

func (s *RepositorySuite) TestOrder_ListKeepsInsertionOrderForEqualTimestamps() {
	storeID := kernel.NewUUID()
	repo := s.factory.Create().OrderRepository()

	var placed []kernel.UUID
	for _i := 0; _i < 3; _i++ {
		o := s.newOrder(storeID, testNow)
		s.Require().NoError(repo.Add(s.ctx, o))
		placed = append(placed, o.ID())
	}

	for _i := 0; _i < 5; _i++ {
		orders, err := repo.List(s.ctx, order.Filter{Scope: order.ScopeFor(s.customer)})
		s.Require().NoError(err)
		ids := make([]kernel.UUID, 0, len(orders))
		for _, o := range orders {
			ids = append(ids, o.ID())
		}
		s.Equal(placed, ids)
	}
}

func (s *RepositorySuite) TestOrder_DriverScopeIncludesAssigned() {
	repo := s.factory.Create().OrderRepository()
	o := s.newOrder(kernel.NewUUID(), testNow)
	for _i := 0; _i < 3; _i++ {
		s.Require().NoError(o.Advance(s.admin, testNow))
	}
	s.Require().NoError(o.Claim(s.driver, testNow))
	s.Require().NoError(o.Advance(s.driver, testNow))
	s.Require().NoError(repo.Add(s.ctx, o))

	orders, err := repo.List(s.ctx, order.Filter{Scope: order.ScopeFor(s.driver)})

	s.Require().NoError(err)
	s.Require().Len(orders, 1)
	s.Equal(order.PickedUp, orders[0].Status())
	s.Require().NotNil(orders[0].Driver())
	s.True(orders[0].Driver().IsEqual(s.driver.ID()))
}

func (s *RepositorySuite) TestStore_RoundTripWithAndWithoutPack() {
	repo := s.factory.Create().StoreRepository()
	withPack := s.newStore("Jane's Bakery", 50)
	s.Require().NoError(withPack.ConsumeDelivery(testNow))
	withoutPack := s.newStore("Fresh Grocer", 0)
	s.Require().NoError(repo.Add(s.ctx, withPack))
	s.Require().NoError(repo.Add(s.ctx, withoutPack))

	loaded, err := repo.Get(s.ctx, withPack.ID())
	s.Require().NoError(err)
	s.Require().NotNil(loaded.CurrentPack())
	s.Equal("Starter", loaded.CurrentPack().Name())
	s.True(decimal.RequireFromString("0.15").Equal(loaded.CommissionRate()))
	s.Equal(49, loaded.RemainingDeliveries())
	s.Equal(50, loaded.TotalDeliveries())
	s.Require().NotNil(loaded.PackPurchasedAt())
	s.True(loaded.PackPurchasedAt().Equal(testNow))
	s.Equal([]string{"Bakery", "Breakfast"}, loaded.Profile().Categories)

	bare, err := repo.Get(s.ctx, withoutPack.ID())
	s.Require().NoError(err)
	s.Nil(bare.CurrentPack())
	s.False(bare.UsesPacks())

	stores, err := repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(stores, 2)
	s.Equal("Fresh Grocer", stores[0].Profile().Name)
}

func (s *RepositorySuite) TestStore_ExpiryClearsPackColumns() {
	repo := s.factory.Create().StoreRepository()
	st := s.newStore("Jane's Bakery", 5)
	s.Require().NoError(repo.Add(s.ctx, st))

	loaded, err := repo.Get(s.ctx, st.ID())
	s.Require().NoError(err)
	s.Require().True(loaded.ExpirePack(testNow.AddDate(0, 0, 31)))
	s.Require().NoError(repo.Update(s.ctx, loaded))

	reloaded, err := repo.Get(s.ctx, st.ID())
	s.Require().NoError(err)
	s.Nil(reloaded.CurrentPack())
	s.Nil(reloaded.PackPurchasedAt())
	s.Equal(0, reloaded.RemainingDeliveries())
	s.Equal(1, reloaded.Version())
}

func (s *RepositorySuite) TestUnitOfWork_RollbackDiscards() {
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	s.Require().NoError(uow.StoreRepository().Add(s.ctx, s.newStore("Jane's Bakery", 0)))
	s.Require().NoError(uow.Rollback(s.ctx))
	s.Require().NoError(uow.Rollback(s.ctx))

	stores, err := s.factory.Create().StoreRepository().List(s.ctx)
	s.Require().NoError(err)
	s.Empty(stores)
}

func (s *RepositorySuite) TestUnitOfWork_CommitWithoutBegin() {
	err := s.factory.Create().Commit(s.ctx)

	s.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (s *RepositorySuite) TestCatalog() {
	repo := s.factory.Create().CatalogRepository()
	storeID := kernel.NewUUID()

	bread, err := catalog.NewProduct(kernel.NewUUID(), storeID, "Sourdough Bread", "Fresh", kernel.MoneyFromInt(6), "", true)
	s.Require().NoError(err)
	s.Require().NoError(repo.AddProduct(s.ctx, bread))

	products, err := repo.GetProducts(s.ctx, []kernel.UUID{bread.ID(), kernel.NewUUID()})
	s.Require().NoError(err)
	s.Require().Len(products, 1)
	s.True(products[0].IsOrderableAt(storeID))

	drivers, err := repo.ListUsers(s.ctx, kernel.RoleDriver)
	s.Require().NoError(err)
	s.Require().Len(drivers, 1)
	s.Equal("Mike Rider", drivers[0].Name())

	everyone, err := repo.ListUsers(s.ctx, kernel.RoleUnknown)
	s.Require().NoError(err)
	s.Len(everyone, 3)

	location, err := kernel.NewGeoPoint(40.71, -74.0)
	s.Require().NoError(err)
	point, err := catalog.NewPickupPoint(kernel.NewUUID(), "Downtown", "1 Main St", location, "Tom",
		catalog.Contact{Phone: "+1-555"}, false)
	s.Require().NoError(err)
	s.Require().NoError(repo.AddPickupPoint(s.ctx, point))
	loadedPoint, err := repo.GetPickupPoint(s.ctx, point.ID())
	s.Require().NoError(err)
	s.False(loadedPoint.IsActive())

	_, err = repo.GetPack(s.ctx, kernel.NewUUID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *RepositorySuite) TestNotifications_NewestFirstAndMarkRead() {
	repo := s.factory.Create().NotificationRepository()
	var latest *notification.Notification
	for i, title := range []string{"Order placed", "Order confirmed"} {
		n, err := notification.NewNotification(kernel.NewUUID(), s.customer.ID(), notification.TypeOrder,
			title, "", testNow.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(err)
		s.Require().NoError(repo.Add(s.ctx, n))
		latest = n
	}

	s.Require().NoError(latest.MarkRead(s.customer))
	s.Require().NoError(repo.Update(s.ctx, latest))

	list, err := repo.ListForUser(s.ctx, s.customer.ID())
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Order confirmed", list[0].Title())
	s.True(list[0].IsRead())
	s.False(list[1].IsRead())
}

// TestConcurrentPlacementsNeverOversell drives the real command handler: the
// locked store row admits exactly as many placements as the pack holds.
func (s *RepositorySuite) TestConcurrentPlacementsNeverOversell() {
	const deliveries, attempts = 3, 6

	st := s.newStore("Jane's Bakery", deliveries)
	s.Require().NoError(s.factory.Create().StoreRepository().Add(s.ctx, st))
	bread, err := catalog.NewProduct(kernel.NewUUID(), st.ID(), "Sourdough Bread", "", kernel.MoneyFromInt(6), "", true)
	s.Require().NoError(err)
	s.Require().NoError(s.factory.Create().CatalogRepository().AddProduct(s.ctx, bread))

	handler := commands.NewPlaceOrderCommandHandler(
		uowFactory(func() commands.UoW { return s.factory.Create() }),
		services.NewOrderPlacement(services.NewPackAccountant(), true),
		noopPublisher{},
		clock.Fixed(testNow),
	)
	location, err := kernel.NewGeoPoint(40.7158, -74.046)
	s.Require().NoError(err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		exhausted int
	)
	for _i := 0; _i < attempts; _i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, cmdErr := commands.NewPlaceOrderCommand(kernel.NewUUID(), s.customer, st.ID(),
				[]services.Line{{ProductID: bread.ID(), Quantity: 1}},
				commands.DeliveryChoice{Address: "789 Pine St, City", Location: &location},
				order.PaymentMethodCash, "")
			if cmdErr != nil {
				return
			}
			handleErr := handler.Handle(s.ctx, cmd)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case handleErr == nil:
				succeeded++
			case errors.Is(handleErr, errs.ErrQuotaExhausted):
				exhausted++
			}
		}()
	}
	wg.Wait()

	s.Equal(deliveries, succeeded)
	s.Equal(attempts-deliveries, exhausted)

	reloaded, err := s.factory.Create().StoreRepository().Get(s.ctx, st.ID())
	s.Require().NoError(err)
	s.Equal(0, reloaded.RemainingDeliveries())
}

type uowFactory func() commands.UoW

func (f uowFactory) Create() commands.UoW { return f() }

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, []order.Event) {}

var _ ports.EventPublisher = noopPublisher{}
