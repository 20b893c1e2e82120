package catalog

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPickupPointIsNotConstructed = errors.New("PickupPoint must be created via NewPickupPoint constructor")

// PickupPoint is a place where customers collect pickup orders.
type PickupPoint struct { //nolint:recvcheck //using for validation
	id            kernel.UUID
	name          string
	address       string
	location      kernel.GeoPoint
	contactPerson string
	contact       Contact
	active        bool
	guard         guard.ConstructorGuard
}

func NewPickupPoint(
	id kernel.UUID,
	name, address string,
	location kernel.GeoPoint,
	contactPerson string,
	contact Contact,
	active bool,
) (PickupPoint, error) {
	p := PickupPoint{
		address:       address,
		contactPerson: contactPerson,
		contact:       contact,
		active:        active,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(id.Validate(), p.setName(name), location.Validate()); err != nil {
		return PickupPoint{}, err
	}

	p.id = id
	p.location = location
	return p, nil
}

func (p PickupPoint) Validate() error {
	return p.guard.Validate(ErrPickupPointIsNotConstructed)
}

func (p PickupPoint) ID() kernel.UUID {
	return p.id
}

func (p PickupPoint) Name() string {
	return p.name
}

func (p PickupPoint) Address() string {
	return p.address
}

func (p PickupPoint) Location() kernel.GeoPoint {
	return p.location
}

func (p PickupPoint) ContactPerson() string {
	return p.contactPerson
}

func (p PickupPoint) Contact() Contact {
	return p.contact
}

func (p PickupPoint) IsActive() bool {
	return p.active
}

func (p *PickupPoint) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("pickup point name")
	}
	p.name = name
	return nil
}
