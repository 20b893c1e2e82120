package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// State is the persisted shape of an Order, used by repositories to save and reload it.
type State struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	StoreID           kernel.UUID
	DriverID          *kernel.UUID
	Items             []Item
	Status            Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Fulfillment       Fulfillment
	PaymentMethod     PaymentMethod
	PaymentStatus     PaymentStatus
	Total             kernel.Money
	DeliveryFee       kernel.Money
	DriverCommission  kernel.Money
	CustomerValidated bool
	DriverValidated   bool
	Notes             string
	Version           int
}

// State returns a detached snapshot of the aggregate.
func (o *Order) State() State {
	return State{
		ID:                o.id,
		CustomerID:        o.customerID,
		StoreID:           o.storeID,
		DriverID:          o.Driver(),
		Items:             o.Items(),
		Status:            o.status,
		CreatedAt:         o.createdAt,
		UpdatedAt:         o.updatedAt,
		Fulfillment:       o.fulfillment,
		PaymentMethod:     o.paymentMethod,
		PaymentStatus:     o.paymentStatus,
		Total:             o.total,
		DeliveryFee:       o.charges.DeliveryFee,
		DriverCommission:  o.charges.DriverCommission,
		CustomerValidated: o.customerValidated,
		DriverValidated:   o.driverValidated,
		Notes:             o.notes,
		Version:           o.version,
	}
}

// Restore rebuilds an Order from persistence and re-checks its invariants.
// No events are recorded.
func Restore(s State) (*Order, error) {
	o := &Order{
		status:            s.Status,
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
		paymentStatus:     s.PaymentStatus,
		customerValidated: s.CustomerValidated,
		driverValidated:   s.DriverValidated,
		notes:             s.Notes,
		version:           s.Version,
		isConstructed:     true,
	}

	charges := Charges{DeliveryFee: s.DeliveryFee, DriverCommission: s.DriverCommission}
	if err := errors.Join(
		o.setID(s.ID),
		o.setParties(s.CustomerID, s.StoreID),
		o.setItems(s.Items),
		o.setPaymentMethod(s.PaymentMethod),
		o.setFulfillment(s.Fulfillment, charges),
		s.Status.Validate(),
		s.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if s.DriverID != nil {
		if err := s.DriverID.Validate(); err != nil {
			return nil, err
		}
		o.driverID = s.DriverID
	}

	o.total = Subtotal(o.items)
	if !o.total.IsEqual(s.Total) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("stored total %s does not match item subtotals %s", s.Total, o.total))
	}

	if (s.Status == Completed) != (s.CustomerValidated && s.DriverValidated) {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is inconsistent with delivery validations", s.Status))
	}

	return o, nil
}

// RestoreItem rebuilds an order line; the subtotal is recomputed from price and quantity.
func RestoreItem(id, productID kernel.UUID, name string, quantity int, price kernel.Money) (Item, error) {
	return NewItem(id, productID, name, quantity, price)
}
