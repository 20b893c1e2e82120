package kernel

import (
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative amount in the marketplace currency (CDF).
// The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// NewMoney rejects negative amounts.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, "unbounded")
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal literal such as "23.95".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// MoneyFromInt builds a whole-unit amount; negative input is clamped to zero.
func MoneyFromInt(units int64) Money {
	if units < 0 {
		return Money{}
	}
	return Money{amount: decimal.NewFromInt(units)}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times multiplies by a positive quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// ApplyRate returns m × rate rounded to whole currency units, half away from zero.
func (m Money) ApplyRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Round(0)}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) LessThanOrEqual(other Money) bool {
	return m.amount.LessThanOrEqual(other.amount)
}

func (m Money) String() string {
	return m.amount.String()
}
