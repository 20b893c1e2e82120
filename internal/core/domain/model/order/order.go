package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or Restore.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Draft carries everything a customer decides when placing an order.
// Charges are computed by the pack accountant before the order is built.
type Draft struct {
	CustomerID    kernel.UUID
	StoreID       kernel.UUID
	Items         []Item
	Fulfillment   Fulfillment
	PaymentMethod PaymentMethod
	Charges       Charges
	Notes         string
}

// Order is the aggregate root of the delivery lifecycle.
//
// Invariants:
//   - total is the sum of item subtotals and never changes after placement
//   - pickup orders carry a zero delivery fee and driver commission
//   - status only moves forward, except for an admin cancellation
//   - status is completed exactly when both customer and driver validated the delivery
type Order struct {
	id                kernel.UUID
	customerID        kernel.UUID
	storeID           kernel.UUID
	driverID          *kernel.UUID
	items             []Item
	status            Status
	createdAt         time.Time
	updatedAt         time.Time
	fulfillment       Fulfillment
	paymentMethod     PaymentMethod
	paymentStatus     PaymentStatus
	total             kernel.Money
	charges           Charges
	customerValidated bool
	driverValidated   bool
	notes             string
	version           int

	events []Event

	isConstructed bool
}

// NewOrder places an order in pending status with a pending payment.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
//	    CustomerID:    customerID,
//	    StoreID:       storeID,
//	    Items:         items,
//	    Fulfillment:   fulfillment,
//	    PaymentMethod: order.PaymentMethodCash,
//	    Charges:       charges,
//	}, time.Now())
func NewOrder(id kernel.UUID, draft Draft, now time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentStatusPending,
		createdAt:     now,
		updatedAt:     now,
		notes:         draft.Notes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(draft.CustomerID, draft.StoreID),
		o.setItems(draft.Items),
		o.setPaymentMethod(draft.PaymentMethod),
		o.setFulfillment(draft.Fulfillment, draft.Charges),
	); err != nil {
		return nil, err
	}

	o.total = Subtotal(o.items)
	o.record(EventPlaced, Unknown, now)
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// Driver returns a copy of the assigned driver id, or nil.
func (o *Order) Driver() *kernel.UUID {
	if o.driverID == nil {
		return nil
	}
	id := *o.driverID
	return &id
}

func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) Fulfillment() Fulfillment {
	return o.fulfillment
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) DeliveryFee() kernel.Money {
	return o.charges.DeliveryFee
}

func (o *Order) DriverCommission() kernel.Money {
	return o.charges.DriverCommission
}

func (o *Order) CustomerValidated() bool {
	return o.customerValidated
}

func (o *Order) DriverValidated() bool {
	return o.driverValidated
}

func (o *Order) Notes() string {
	return o.notes
}

// Version is the persisted revision the aggregate was loaded at.
func (o *Order) Version() int {
	return o.version
}

// Advance moves the order to its single forward successor.
//
// The role table decides first (store: pending..preparing, driver:
// ready_for_pickup..in_delivery, admin: always, customer: never) and fails with
// ErrInvalidTransition; ownership is checked next and fails with ErrForbidden:
// a store only advances its own orders and a driver only the orders assigned to them.
func (o *Order) Advance(actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	next, ok := o.status.Next()
	if !ok || !CanAdvance(actor.Role(), o.status) {
		return errs.NewInvalidTransitionError(o.status.String(), "advance")
	}

	if err := o.checkOwnership(actor); err != nil {
		return err
	}

	previous := o.status
	o.status = next
	o.updatedAt = now
	o.record(EventStatusChanged, previous, now)
	return nil
}

// AssignDriver lets an admin attach a driver while the order is confirmed,
// preparing or ready_for_pickup. The status does not change.
func (o *Order) AssignDriver(actor kernel.Actor, driverID kernel.UUID, now time.Time) error {
	if err := errors.Join(actor.Validate(), driverID.Validate()); err != nil {
		return err
	}

	switch {
	case !actor.IsAdmin():
		return errs.NewNotAssignableError("only an admin assigns drivers")
	case o.driverID != nil:
		return errs.NewNotAssignableError(fmt.Sprintf("order %s already has a driver", o.id))
	case !o.status.IsAssignable():
		return errs.NewNotAssignableError(fmt.Sprintf("status %s does not accept a driver", o.status))
	}

	o.driverID = &driverID
	o.updatedAt = now
	o.record(EventDriverAssigned, o.status, now)
	return nil
}

// Claim lets a driver take an unassigned order that is ready_for_pickup.
// A driver arriving after another claim succeeded gets ErrAlreadyClaimed.
func (o *Order) Claim(actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.Is(kernel.RoleDriver) {
		return errs.NewForbiddenError("only drivers claim orders")
	}

	if o.driverID != nil {
		return errs.NewAlreadyClaimedError(o.id)
	}
	if o.status != ReadyForPickup {
		return errs.NewNotAssignableError(fmt.Sprintf("status %s is not claimable", o.status))
	}

	driverID := actor.ID()
	o.driverID = &driverID
	o.updatedAt = now
	o.record(EventClaimed, o.status, now)
	return nil
}

// Cancel is an admin-only, irreversible move to cancelled from any non-terminal status.
func (o *Order) Cancel(actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() || o.status.IsTerminal() {
		return errs.NewInvalidTransitionError(o.status.String(), "cancel")
	}

	previous := o.status
	o.status = Cancelled
	o.updatedAt = now
	o.record(EventCancelled, previous, now)
	return nil
}

// ConfirmDelivery records one party's validation once the order is delivered.
// Repeating a validation is a no-op; the second distinct validation completes the order.
// The actor must be that party on this order, or an admin acting on their behalf.
func (o *Order) ConfirmDelivery(actor kernel.Actor, party Party, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !o.status.IsValidatable() {
		return errs.NewInvalidTransitionError(o.status.String(), "validate")
	}

	var flag *bool
	switch party {
	case PartyCustomer:
		if !actor.IsAdmin() && !(actor.Is(kernel.RoleCustomer) && actor.ID().IsEqual(o.customerID)) {
			return errs.NewForbiddenError("only the ordering customer validates as customer")
		}
		flag = &o.customerValidated
	case PartyDriver:
		if !actor.IsAdmin() && !o.isAssignedDriver(actor) {
			return errs.NewForbiddenError("only the assigned driver validates as driver")
		}
		flag = &o.driverValidated
	default:
		return errs.NewValueIsInvalidError("party")
	}

	if *flag {
		return nil
	}
	*flag = true
	o.updatedAt = now
	o.events = append(o.events, Event{
		Type:          EventDeliveryValidated,
		OrderID:       o.id,
		CustomerID:    o.customerID,
		StoreID:       o.storeID,
		DriverID:      o.Driver(),
		Status:        o.status,
		Party:         party,
		PaymentStatus: o.paymentStatus,
		OccurredAt:    now,
	})

	if o.customerValidated && o.driverValidated && o.status == Delivered {
		o.status = Completed
		o.record(EventCompleted, Delivered, now)
	}
	return nil
}

// RecordPayment lets an admin settle the payment as paid or failed.
func (o *Order) RecordPayment(actor kernel.Actor, status PaymentStatus, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewForbiddenError("only an admin records payments")
	}
	if status != PaymentStatusPaid && status != PaymentStatusFailed {
		return errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%s cannot be recorded", status))
	}
	if o.status == Cancelled {
		return errs.NewInvalidTransitionError(o.status.String(), "record payment for")
	}

	o.paymentStatus = status
	o.updatedAt = now
	o.record(EventPaymentRecorded, o.status, now)
	return nil
}

func (o *Order) checkOwnership(actor kernel.Actor) error {
	switch actor.Role() {
	case kernel.RoleAdmin:
		return nil
	case kernel.RoleStore:
		if actor.ID().IsEqual(o.storeID) {
			return nil
		}
		return errs.NewForbiddenError(fmt.Sprintf("order %s belongs to another store", o.id))
	case kernel.RoleDriver:
		if o.isAssignedDriver(actor) {
			return nil
		}
		return errs.NewForbiddenError(fmt.Sprintf("order %s is not assigned to this driver", o.id))
	default:
		return errs.NewForbiddenError("customers do not manage order progress")
	}
}

func (o *Order) isAssignedDriver(actor kernel.Actor) bool {
	return actor.Is(kernel.RoleDriver) && o.driverID != nil && o.driverID.IsEqual(actor.ID())
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(customerID, storeID kernel.UUID) error {
	if err := errors.Join(customerID.Validate(), storeID.Validate()); err != nil {
		return err
	}
	o.customerID = customerID
	o.storeID = storeID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setFulfillment(f Fulfillment, charges Charges) error {
	if !f.IsPickup() {
		if err := f.Location().Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("fulfillment", err)
		}
	}
	if err := charges.validateFor(f); err != nil {
		return err
	}
	o.fulfillment = f
	o.charges = charges
	return nil
}
