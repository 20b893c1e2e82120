package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// DeliveryChoice is the raw fulfillment request: either an address with its
// coordinates, or a pickup point. Naming both or neither is a validation conflict.
type DeliveryChoice struct {
	Address       string
	Location      *kernel.GeoPoint
	PickupPointID *kernel.UUID
}

// PlaceOrderCommand represents a customer's checkout at one store.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customer, storeID,
//	    []services.Line{{ProductID: breadID, Quantity: 2}},
//	    DeliveryChoice{PickupPointID: &pickupPointID},
//	    order.PaymentMethodCash, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customer      kernel.Actor
	storeID       kernel.UUID
	lines         []services.Line
	fulfillment   order.Fulfillment
	paymentMethod order.PaymentMethod
	notes         string

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customer kernel.Actor,
	storeID kernel.UUID,
	lines []services.Line,
	delivery DeliveryChoice,
	paymentMethod order.PaymentMethod,
	notes string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		customer.Validate(),
		storeID.Validate(),
		cmd.setLines(lines),
		cmd.setFulfillment(delivery),
		paymentMethod.Validate(),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.customer = customer
	cmd.storeID = storeID
	cmd.paymentMethod = paymentMethod
	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) Customer() kernel.Actor {
	return c.customer
}

func (c PlaceOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c PlaceOrderCommand) Lines() []services.Line {
	lines := make([]services.Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// ProductIDs lists the distinct products referenced by the lines.
func (c PlaceOrderCommand) ProductIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]bool, len(c.lines))
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, line := range c.lines {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			ids = append(ids, line.ProductID)
		}
	}
	return ids
}

func (c PlaceOrderCommand) Fulfillment() order.Fulfillment {
	return c.fulfillment
}

func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c PlaceOrderCommand) Notes() string {
	return c.notes
}

func (c *PlaceOrderCommand) setLines(lines []services.Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", line.Quantity))
		}
	}
	c.lines = make([]services.Line, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *PlaceOrderCommand) setFulfillment(delivery DeliveryChoice) error {
	f, err := order.NewFulfillment(delivery.Address, delivery.Location, delivery.PickupPointID)
	if err != nil {
		return err
	}
	c.fulfillment = f
	return nil
}
