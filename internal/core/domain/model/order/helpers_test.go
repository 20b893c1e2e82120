package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 5, 5, 10, 30, 0, 0, time.UTC)

type parties struct {
	customer kernel.Actor
	store    kernel.Actor
	driver   kernel.Actor
	admin    kernel.Actor
}

func newParties(t *testing.T) parties {
	t.Helper()
	return parties{
		customer: newActor(t, kernel.RoleCustomer),
		store:    newActor(t, kernel.RoleStore),
		driver:   newActor(t, kernel.RoleDriver),
		admin:    newActor(t, kernel.RoleAdmin),
	}
}

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(role, kernel.NewUUID())
	require.NoError(t, err)
	return actor
}

func newItem(t *testing.T, name string, quantity int, price string) order.Item {
	t.Helper()
	p, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), name, quantity, p)
	require.NoError(t, err)
	return item
}

func homeDelivery(t *testing.T) order.Fulfillment {
	t.Helper()
	point, err := kernel.NewGeoPoint(40.7158, -74.046)
	require.NoError(t, err)
	f, err := order.NewHomeDelivery("789 Pine St, City", point)
	require.NoError(t, err)
	return f
}

func pickup(t *testing.T) order.Fulfillment {
	t.Helper()
	f, err := order.NewPickup(kernel.NewUUID())
	require.NoError(t, err)
	return f
}

// newDeliveryOrder places the 23.95 bakery order used across tests.
func newDeliveryOrder(t *testing.T, p parties) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		CustomerID: p.customer.ID(),
		StoreID:    p.store.ID(),
		Items: []order.Item{
			newItem(t, "Sourdough Bread", 2, "5.99"),
			newItem(t, "Chocolate Croissant", 3, "3.99"),
		},
		Fulfillment:   homeDelivery(t),
		PaymentMethod: order.PaymentMethodAirtel,
		Charges: order.Charges{
			DeliveryFee:      kernel.MoneyFromInt(1500),
			DriverCommission: kernel.MoneyFromInt(4),
		},
	}, testNow)
	require.NoError(t, err)
	o.PullEvents()
	return o
}

// advanceTo walks the order forward as admin until it reaches target.
func advanceTo(t *testing.T, o *order.Order, p parties, target order.Status) {
	t.Helper()
	for o.Status() != target {
		if o.Status() == order.ReadyForPickup && o.Driver() == nil {
			require.NoError(t, o.Claim(p.driver, testNow))
		}
		require.NoError(t, o.Advance(p.admin, testNow))
	}
	o.PullEvents()
}
