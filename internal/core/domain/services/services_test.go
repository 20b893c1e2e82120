package services_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 5, 5, 10, 30, 0, 0, time.UTC)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newStore(t *testing.T) *store.Store {
	t.Helper()
	location, err := kernel.NewGeoPoint(40.7128, -74.006)
	require.NoError(t, err)
	s, err := store.NewStore(kernel.NewUUID(), store.Profile{Name: "Jane's Bakery", Location: location})
	require.NoError(t, err)
	return s
}

func withPack(t *testing.T, s *store.Store, deliveries int, rate string) *store.Store {
	t.Helper()
	p, err := store.NewPack(kernel.NewUUID(), "Starter", deliveries, kernel.MoneyFromInt(25000),
		decimal.RequireFromString(rate), 30, "")
	require.NoError(t, err)
	admin, err := kernel.NewActor(kernel.RoleAdmin, kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, s.PurchasePack(admin, p, store.PolicyReject, testNow))
	return s
}

func homeDelivery(t *testing.T) order.Fulfillment {
	t.Helper()
	point, err := kernel.NewGeoPoint(40.7158, -74.046)
	require.NoError(t, err)
	f, err := order.NewHomeDelivery("789 Pine St, City", point)
	require.NoError(t, err)
	return f
}

func newProduct(t *testing.T, storeID kernel.UUID, name, price string, available bool) catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(kernel.NewUUID(), storeID, name, "", money(t, price), "", available)
	require.NoError(t, err)
	return p
}
