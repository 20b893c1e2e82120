package store

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrPackIsNotConstructed = errors.New("Pack must be created via NewPack constructor")

// Pack is a delivery pack from the catalog: a bundle of deliveries sold to a store
// with the commission rate paid to drivers and a validity window.
type Pack struct { //nolint:recvcheck //using for validation
	id              kernel.UUID
	name            string
	deliveriesCount int
	price           kernel.Money
	commissionRate  decimal.Decimal
	validityDays    int
	description     string
	guard           guard.ConstructorGuard
}

func NewPack(
	id kernel.UUID,
	name string,
	deliveriesCount int,
	price kernel.Money,
	commissionRate decimal.Decimal,
	validityDays int,
	description string,
) (Pack, error) {
	p := Pack{
		price:       price,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		p.setName(name),
		p.setDeliveriesCount(deliveriesCount),
		p.setCommissionRate(commissionRate),
		p.setValidityDays(validityDays),
	); err != nil {
		return Pack{}, err
	}

	p.id = id
	return p, nil
}

func (p Pack) Validate() error {
	return p.guard.Validate(ErrPackIsNotConstructed)
}

func (p Pack) ID() kernel.UUID {
	return p.id
}

func (p Pack) Name() string {
	return p.name
}

func (p Pack) DeliveriesCount() int {
	return p.deliveriesCount
}

func (p Pack) Price() kernel.Money {
	return p.price
}

// CommissionRate is the driver commission as a fraction of the order subtotal.
func (p Pack) CommissionRate() decimal.Decimal {
	return p.commissionRate
}

func (p Pack) ValidityDays() int {
	return p.validityDays
}

func (p Pack) Description() string {
	return p.description
}

// ExpiresAt is the end of the validity window for a pack bought at purchasedAt.
func (p Pack) ExpiresAt(purchasedAt time.Time) time.Time {
	return purchasedAt.AddDate(0, 0, p.validityDays)
}

func (p *Pack) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("pack name")
	}
	p.name = name
	return nil
}

func (p *Pack) setDeliveriesCount(count int) error {
	if count <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveries count", fmt.Errorf("%d is not greater than 0", count))
	}
	p.deliveriesCount = count
	return nil
}

func (p *Pack) setCommissionRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return errs.NewValueIsOutOfRangeError("commission rate", rate.String(), 0, 1)
	}
	p.commissionRate = rate
	return nil
}

func (p *Pack) setValidityDays(days int) error {
	if days <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("validity", fmt.Errorf("%d days is not greater than 0", days))
	}
	p.validityDays = days
	return nil
}
