package order

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Charges are the amounts computed at placement on top of the goods total.
type Charges struct {
	DeliveryFee      kernel.Money
	DriverCommission kernel.Money
}

func (c Charges) validateFor(f Fulfillment) error {
	if f.IsPickup() && (!c.DeliveryFee.IsZero() || !c.DriverCommission.IsZero()) {
		return errs.NewValueIsInvalidError("pickup orders carry no delivery fee or driver commission")
	}
	return nil
}
