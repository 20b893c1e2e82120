package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrPurchasePackCommandIsNotConstructed = errors.New(
	"PurchasePackCommand must be created via NewPurchasePackCommand constructor",
)

// PurchasePackCommand buys a catalog pack for a store.
type PurchasePackCommand struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID
	packID  kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

func NewPurchasePackCommand(storeID, packID kernel.UUID, actor kernel.Actor) (PurchasePackCommand, error) {
	cmd := PurchasePackCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(storeID.Validate(), packID.Validate(), actor.Validate()); err != nil {
		return PurchasePackCommand{}, err
	}

	cmd.storeID = storeID
	cmd.packID = packID
	cmd.actor = actor
	return cmd, nil
}

func (c PurchasePackCommand) Validate() error {
	return c.guard.Validate(ErrPurchasePackCommandIsNotConstructed)
}

func (c PurchasePackCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c PurchasePackCommand) PackID() kernel.UUID {
	return c.packID
}

func (c PurchasePackCommand) Actor() kernel.Actor {
	return c.actor
}
