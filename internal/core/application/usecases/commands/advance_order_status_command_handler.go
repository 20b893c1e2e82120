package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/clock"
)

// AdvanceOrderStatusCommandHandler applies the role permission table and moves the
// order one step forward. The order row is locked for the whole transaction.
type AdvanceOrderStatusCommandHandler struct {
	mutation orderMutation
}

func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	clk clock.Clock,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, publisher: publisher, clock: clk},
	}
}

// Handle returns errs.ErrInvalidTransition when the role may not advance the current
// status and errs.ErrForbidden when the order belongs to someone else.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutation.apply(ctx, cmd.OrderID(), func(_ OrderUoW, o *order.Order, now time.Time) error {
		return o.Advance(cmd.Actor(), now)
	})
}
