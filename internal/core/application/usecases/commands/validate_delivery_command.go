package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrValidateDeliveryCommandIsNotConstructed = errors.New(
	"ValidateDeliveryCommand must be created via NewValidateDeliveryCommand constructor",
)

// ValidateDeliveryCommand records that one party confirms the delivery happened.
type ValidateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	party   order.Party
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

func NewValidateDeliveryCommand(orderID kernel.UUID, party order.Party, actor kernel.Actor) (ValidateDeliveryCommand, error) {
	cmd := ValidateDeliveryCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setParty(party),
		cmd.setActor(actor),
	); err != nil {
		return ValidateDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c ValidateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrValidateDeliveryCommandIsNotConstructed)
}

func (c ValidateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ValidateDeliveryCommand) Party() order.Party {
	return c.party
}

func (c ValidateDeliveryCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *ValidateDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ValidateDeliveryCommand) setParty(party order.Party) error {
	if party != order.PartyCustomer && party != order.PartyDriver {
		return errs.NewValueIsInvalidError("party")
	}
	c.party = party
	return nil
}

func (c *ValidateDeliveryCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
