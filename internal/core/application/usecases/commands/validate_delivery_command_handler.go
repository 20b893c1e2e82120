package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/clock"
)

// ValidateDeliveryCommandHandler sets one validation flag; the second distinct flag
// completes the order. Repeated validations commit nothing new.
type ValidateDeliveryCommandHandler struct {
	mutation orderMutation
}

func NewValidateDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	clk clock.Clock,
) ValidateDeliveryCommandHandler {
	return ValidateDeliveryCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, publisher: publisher, clock: clk},
	}
}

func (h ValidateDeliveryCommandHandler) Handle(ctx context.Context, cmd ValidateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutation.apply(ctx, cmd.OrderID(), func(_ OrderUoW, o *order.Order, now time.Time) error {
		return o.ConfirmDelivery(cmd.Actor(), cmd.Party(), now)
	})
}
