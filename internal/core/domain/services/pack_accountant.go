package services

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"

	"github.com/shopspring/decimal"
)

// feeTier maps an upper subtotal bound (inclusive) to the delivery fee charged below it.
type feeTier struct {
	upTo kernel.Money
	fee  kernel.Money
}

func getFeeTiers() []feeTier {
	return []feeTier{
		{upTo: kernel.MoneyFromInt(10_000), fee: kernel.MoneyFromInt(1_500)},
		{upTo: kernel.MoneyFromInt(25_000), fee: kernel.MoneyFromInt(2_000)},
		{upTo: kernel.MoneyFromInt(50_000), fee: kernel.MoneyFromInt(2_500)},
	}
}

var topTierFee = kernel.MoneyFromInt(3_000)

// PackAccountant prices the delivery part of an order.
//
// Business rules:
//   - delivery fee follows the subtotal tiers 10,000 / 25,000 / 50,000 (inclusive)
//   - driver commission is the subtotal times the pack's rate, rounded to a whole unit
//   - pickup orders pay neither
//   - a store without a pack pays no commission
//
// Example usage:
//
//	accountant := services.NewPackAccountant()
//	charges := accountant.Quote(order.Subtotal(items), s, fulfillment)
type PackAccountant struct{}

func NewPackAccountant() PackAccountant {
	return PackAccountant{}
}

// DeliveryFee returns the tier fee for subtotal.
func (PackAccountant) DeliveryFee(subtotal kernel.Money) kernel.Money {
	for _, tier := range getFeeTiers() {
		if subtotal.LessThanOrEqual(tier.upTo) {
			return tier.fee
		}
	}
	return topTierFee
}

// DriverCommission returns round(subtotal × rate), half away from zero.
func (PackAccountant) DriverCommission(subtotal kernel.Money, rate decimal.Decimal) kernel.Money {
	return subtotal.ApplyRate(rate)
}

// Quote computes the charges of an order placed at s with fulfillment f.
//
// Parameters:
//   - subtotal: the sum of item subtotals
//   - s: the store the order is placed with; its pack supplies the commission rate
//   - f: the fulfillment choice; pickup orders are never charged
//
// Returns:
//   - order.Charges: fee and commission, both zero for pickup
func (a PackAccountant) Quote(subtotal kernel.Money, s *store.Store, f order.Fulfillment) order.Charges {
	if f.IsPickup() {
		return order.Charges{}
	}
	return order.Charges{
		DeliveryFee:      a.DeliveryFee(subtotal),
		DriverCommission: a.DriverCommission(subtotal, s.CommissionRate()),
	}
}
