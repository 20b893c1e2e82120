package services_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackAccountant_DeliveryFee(t *testing.T) {
	tests := []struct {
		subtotal string
		fee      int64
	}{
		{"0", 1500},
		{"10000", 1500},
		{"10000.01", 2000},
		{"10001", 2000},
		{"25000", 2000},
		{"25001", 2500},
		{"50000", 2500},
		{"50001", 3000},
		{"1000000", 3000},
	}

	accountant := services.NewPackAccountant()
	for _, tt := range tests {
		t.Run(tt.subtotal, func(t *testing.T) {
			fee := accountant.DeliveryFee(money(t, tt.subtotal))

			assert.True(t, fee.IsEqual(kernel.MoneyFromInt(tt.fee)), "got %s", fee)
		})
	}
}

func TestPackAccountant_DriverCommission(t *testing.T) {
	accountant := services.NewPackAccountant()

	t.Run("rounds to the nearest unit", func(t *testing.T) {
		commission := accountant.DriverCommission(money(t, "23.95"), decimal.RequireFromString("0.15"))

		assert.Equal(t, "4", commission.String())
	})

	t.Run("rounds half away from zero", func(t *testing.T) {
		commission := accountant.DriverCommission(money(t, "25"), decimal.RequireFromString("0.1"))

		assert.Equal(t, "3", commission.String())
	})

	t.Run("zero rate pays nothing", func(t *testing.T) {
		assert.True(t, accountant.DriverCommission(money(t, "5000"), decimal.Zero).IsZero())
	})
}

func TestPackAccountant_Quote(t *testing.T) {
	accountant := services.NewPackAccountant()

	t.Run("home delivery with a pack", func(t *testing.T) {
		s := withPack(t, newStore(t), 10, "0.15")

		charges := accountant.Quote(money(t, "23.95"), s, homeDelivery(t))

		assert.Equal(t, "1500", charges.DeliveryFee.String())
		assert.Equal(t, "4", charges.DriverCommission.String())
	})

	t.Run("no pack means no commission", func(t *testing.T) {
		charges := accountant.Quote(money(t, "23.95"), newStore(t), homeDelivery(t))

		assert.Equal(t, "1500", charges.DeliveryFee.String())
		assert.True(t, charges.DriverCommission.IsZero())
	})

	t.Run("pickup is free", func(t *testing.T) {
		f, err := order.NewPickup(kernel.NewUUID())
		require.NoError(t, err)

		charges := accountant.Quote(money(t, "60000"), withPack(t, newStore(t), 10, "0.15"), f)

		assert.Equal(t, order.Charges{}, charges)
	})
}
