package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/clock"
)

type RecordPaymentCommandHandler struct {
	mutation orderMutation
}

func NewRecordPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	clk clock.Clock,
) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, publisher: publisher, clock: clk},
	}
}

func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutation.apply(ctx, cmd.OrderID(), func(_ OrderUoW, o *order.Order, now time.Time) error {
		return o.RecordPayment(cmd.Actor(), cmd.Status(), now)
	})
}
