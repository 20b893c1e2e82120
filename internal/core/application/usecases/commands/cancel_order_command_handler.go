package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/clock"
)

// CancelOrderCommandHandler cancels an order on an admin's request. The consumed
// delivery is not returned to the store's pack.
type CancelOrderCommandHandler struct {
	mutation orderMutation
}

func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	clk clock.Clock,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, publisher: publisher, clock: clk},
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutation.apply(ctx, cmd.OrderID(), func(_ OrderUoW, o *order.Order, now time.Time) error {
		return o.Cancel(cmd.Actor(), now)
	})
}
