package services_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customer(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.RoleCustomer, kernel.NewUUID())
	require.NoError(t, err)
	return actor
}

func TestOrderPlacement_Place(t *testing.T) {
	placement := services.NewOrderPlacement(services.NewPackAccountant(), true)

	t.Run("prices the order and consumes one delivery", func(t *testing.T) {
		s := withPack(t, newStore(t), 5, "0.15")
		bread := newProduct(t, s.ID(), "Sourdough Bread", "5.99", true)
		cake := newProduct(t, s.ID(), "Chocolate Cake", "12.99", true)

		o, err := placement.Place(services.Placement{
			OrderID:  kernel.NewUUID(),
			Customer: customer(t),
			Lines: []services.Line{
				{ProductID: bread.ID(), Quantity: 2},
				{ProductID: cake.ID(), Quantity: 1},
			},
			Fulfillment:   homeDelivery(t),
			PaymentMethod: order.PaymentMethodCash,
		}, s, []catalog.Product{bread, cake}, nil, testNow)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "24.97", o.Total().String())
		assert.Equal(t, "1500", o.DeliveryFee().String())
		assert.Equal(t, "4", o.DriverCommission().String())
		assert.Equal(t, "Sourdough Bread", o.Items()[0].Name())
		assert.Equal(t, 4, s.RemainingDeliveries())
	})

	t.Run("fails when the quota is exhausted", func(t *testing.T) {
		s := withPack(t, newStore(t), 1, "0.1")
		bread := newProduct(t, s.ID(), "Sourdough Bread", "5.99", true)
		p := services.Placement{
			OrderID:       kernel.NewUUID(),
			Customer:      customer(t),
			Lines:         []services.Line{{ProductID: bread.ID(), Quantity: 1}},
			Fulfillment:   homeDelivery(t),
			PaymentMethod: order.PaymentMethodOnline,
		}

		_, err := placement.Place(p, s, []catalog.Product{bread}, nil, testNow)
		require.NoError(t, err)

		p.OrderID = kernel.NewUUID()
		_, err = placement.Place(p, s, []catalog.Product{bread}, nil, testNow)
		require.ErrorIs(t, err, errs.ErrQuotaExhausted)
		assert.Equal(t, 0, s.RemainingDeliveries())
	})

	t.Run("store without pack places freely when packs are optional", func(t *testing.T) {
		s := newStore(t)
		bread := newProduct(t, s.ID(), "Sourdough Bread", "5.99", true)

		_, err := services.NewOrderPlacement(services.NewPackAccountant(), false).Place(services.Placement{
			OrderID:       kernel.NewUUID(),
			Customer:      customer(t),
			Lines:         []services.Line{{ProductID: bread.ID(), Quantity: 1}},
			Fulfillment:   homeDelivery(t),
			PaymentMethod: order.PaymentMethodCash,
		}, s, []catalog.Product{bread}, nil, testNow)

		require.NoError(t, err)
	})

	t.Run("expired pack is dropped before pricing when packs are optional", func(t *testing.T) {
		s := withPack(t, newStore(t), 5, "0.15")
		bread := newProduct(t, s.ID(), "Sourdough Bread", "5.99", true)
		afterExpiry := testNow.Add(31 * 24 * time.Hour)

		o, err := services.NewOrderPlacement(services.NewPackAccountant(), false).Place(services.Placement{
			OrderID:       kernel.NewUUID(),
			Customer:      customer(t),
			Lines:         []services.Line{{ProductID: bread.ID(), Quantity: 4}},
			Fulfillment:   homeDelivery(t),
			PaymentMethod: order.PaymentMethodCash,
		}, s, []catalog.Product{bread}, nil, afterExpiry)

		require.NoError(t, err)
		assert.True(t, o.DriverCommission().IsZero())
		assert.Equal(t, "1500", o.DeliveryFee().String())
		assert.False(t, s.UsesPacks())
		assert.Equal(t, 0, s.RemainingDeliveries())
	})

	t.Run("expired pack exhausts the quota when packs are required", func(t *testing.T) {
		s := withPack(t, newStore(t), 5, "0.15")
		bread := newProduct(t, s.ID(), "Sourdough Bread", "5.99", true)

		_, err := placement.Place(services.Placement{
			OrderID:       kernel.NewUUID(),
			Customer:      customer(t),
			Lines:         []services.Line{{ProductID: bread.ID(), Quantity: 1}},
			Fulfillment:   homeDelivery(t),
			PaymentMethod: order.PaymentMethodCash,
		}, s, []catalog.Product{bread}, nil, testNow.Add(31*24*time.Hour))

		require.ErrorIs(t, err, errs.ErrQuotaExhausted)
		assert.False(t, s.UsesPacks())
	})

	t.Run("product of another store is not found", func(t *testing.T) {
		s := withPack(t, newStore(t), 5, "0.1")
		foreign := newProduct(t, kernel.NewUUID(), "Fresh Apples", "3.99", true)

		_, err := placement.Place(services.Placement{
			OrderID:       kernel.NewUUID(),
			Customer:      customer(t),
			Lines:         []services.Line{{ProductID: foreign.ID(), Quantity: 1}},
			Fulfillment:   homeDelivery(t),
			PaymentMethod: order.PaymentMethodCash,
		}, s, []catalog.Product{foreign}, nil, testNow)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, 5, s.RemainingDeliveries())
	})

	t.Run("unavailable product is rejected", func(t *testing.T) {
		s := withPack(t, newStore(t), 5, "0.1")
		soldOut := newProduct(t, s.ID(), "Croissant", "3.49", false)

		_, err := placement.Place(services.Placement{
			OrderID:       kernel.NewUUID(),
			Customer:      customer(t),
			Lines:         []services.Line{{ProductID: soldOut.ID(), Quantity: 1}},
			Fulfillment:   homeDelivery(t),
			PaymentMethod: order.PaymentMethodCash,
		}, s, []catalog.Product{soldOut}, nil, testNow)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("pickup needs an active pickup point", func(t *testing.T) {
		s := withPack(t, newStore(t), 5, "0.1")
		bread := newProduct(t, s.ID(), "Sourdough Bread", "5.99", true)
		location, _ := kernel.NewGeoPoint(40.7, -74.0)
		closed, err := catalog.NewPickupPoint(kernel.NewUUID(), "East Side Pickup", "200 East Ave", location, "", catalog.Contact{}, false)
		require.NoError(t, err)
		f, err := order.NewPickup(closed.ID())
		require.NoError(t, err)
		p := services.Placement{
			OrderID:       kernel.NewUUID(),
			Customer:      customer(t),
			Lines:         []services.Line{{ProductID: bread.ID(), Quantity: 1}},
			Fulfillment:   f,
			PaymentMethod: order.PaymentMethodCash,
		}

		_, err = placement.Place(p, s, []catalog.Product{bread}, &closed, testNow)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = placement.Place(p, s, []catalog.Product{bread}, nil, testNow)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("only customers place orders", func(t *testing.T) {
		s := withPack(t, newStore(t), 5, "0.1")
		driver, _ := kernel.NewActor(kernel.RoleDriver, kernel.NewUUID())

		_, err := placement.Place(services.Placement{
			OrderID:     kernel.NewUUID(),
			Customer:    driver,
			Fulfillment: homeDelivery(t),
		}, s, nil, nil, testNow)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}
