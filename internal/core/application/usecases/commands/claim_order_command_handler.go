package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/clock"
)

// ClaimOrderCommandHandler resolves competing claims: the order row is locked for the
// transaction, so a second driver sees the committed driver and gets errs.ErrAlreadyClaimed.
type ClaimOrderCommandHandler struct {
	mutation orderMutation
}

func NewClaimOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	clk clock.Clock,
) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, publisher: publisher, clock: clk},
	}
}

func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutation.apply(ctx, cmd.OrderID(), func(_ OrderUoW, o *order.Order, now time.Time) error {
		return o.Claim(cmd.Driver(), now)
	})
}
