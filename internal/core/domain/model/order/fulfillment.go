package order

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Fulfillment is how the goods reach the customer: home delivery to an address,
// or collection at a pickup point. Exactly one of the two is set.
type Fulfillment struct {
	pickupPointID *kernel.UUID
	address       string
	location      kernel.GeoPoint
}

// NewHomeDelivery builds a delivery-to-address fulfillment.
func NewHomeDelivery(address string, location kernel.GeoPoint) (Fulfillment, error) {
	if address == "" {
		return Fulfillment{}, errs.NewValueIsRequiredError("delivery address")
	}
	if err := location.Validate(); err != nil {
		return Fulfillment{}, err
	}
	return Fulfillment{address: address, location: location}, nil
}

// NewPickup builds a pickup-point fulfillment.
func NewPickup(pickupPointID kernel.UUID) (Fulfillment, error) {
	if err := pickupPointID.Validate(); err != nil {
		return Fulfillment{}, err
	}
	return Fulfillment{pickupPointID: &pickupPointID}, nil
}

// NewFulfillment picks the mode from the supplied fields and refuses requests
// that name both a delivery address and a pickup point, or neither.
func NewFulfillment(address string, location *kernel.GeoPoint, pickupPointID *kernel.UUID) (Fulfillment, error) {
	hasAddress := address != "" || location != nil
	hasPickup := pickupPointID != nil

	switch {
	case hasAddress && hasPickup:
		return Fulfillment{}, errs.NewValidationConflictError("both a delivery address and a pickup point were given")
	case !hasAddress && !hasPickup:
		return Fulfillment{}, errs.NewValidationConflictError("either a delivery address or a pickup point is required")
	case hasPickup:
		return NewPickup(*pickupPointID)
	case location == nil:
		return Fulfillment{}, errs.NewValueIsRequiredError("delivery location")
	default:
		return NewHomeDelivery(address, *location)
	}
}

func (f Fulfillment) IsPickup() bool {
	return f.pickupPointID != nil
}

// PickupPointID is nil for home deliveries.
func (f Fulfillment) PickupPointID() *kernel.UUID {
	if f.pickupPointID == nil {
		return nil
	}
	id := *f.pickupPointID
	return &id
}

func (f Fulfillment) Address() string {
	return f.address
}

// Location is the zero GeoPoint for pickup orders.
func (f Fulfillment) Location() kernel.GeoPoint {
	return f.location
}
