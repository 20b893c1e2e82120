// Package notifier turns committed order events into stored notifications.
package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

var _ ports.EventPublisher = (*Publisher)(nil)

// Publisher stores one notification per interested party of each event:
// the customer, the store (addressed by store id) and the driver once assigned.
// It runs after the order change committed, so a failure is logged and dropped.
type Publisher struct {
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
}

func NewPublisher(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *Publisher {
	return &Publisher{
		uowFactory: uowFactory,
		logger:     logger.With("component", "notifier"),
	}
}

func (p *Publisher) Publish(ctx context.Context, events []order.Event) {
	if len(events) == 0 {
		return
	}

	if err := p.store(ctx, events); err != nil {
		p.logger.ErrorContext(ctx, "failed to store notifications",
			"orderId", events[0].OrderID.String(),
			"events", len(events),
			"error", err,
		)
	}
}

func (p *Publisher) store(ctx context.Context, events []order.Event) error {
	uow := p.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	for _, event := range events {
		kind, title, message := describe(event)
		for _, userID := range recipients(event) {
			n, err := notification.NewNotification(kernel.NewUUID(), userID, kind, title, message, event.OccurredAt)
			if err != nil {
				return err
			}
			if err = repo.Add(ctx, n); err != nil {
				return err
			}
		}
	}

	return uow.Commit(ctx)
}

func recipients(event order.Event) []kernel.UUID {
	ids := []kernel.UUID{event.CustomerID, event.StoreID}
	if event.DriverID != nil {
		ids = append(ids, *event.DriverID)
	}
	return ids
}

func describe(event order.Event) (notification.Type, string, string) {
	ref := shortRef(event.OrderID)

	switch event.Type {
	case order.EventPlaced:
		return notification.TypeOrder, "New order",
			fmt.Sprintf("Order %s was placed and is waiting for confirmation.", ref)
	case order.EventStatusChanged:
		return notification.TypeOrder, "Order updated",
			fmt.Sprintf("Order %s moved from %s to %s.", ref, event.PreviousStatus, event.Status)
	case order.EventDriverAssigned:
		return notification.TypeDelivery, "Driver assigned",
			fmt.Sprintf("A driver was assigned to order %s.", ref)
	case order.EventClaimed:
		return notification.TypeDelivery, "Order accepted",
			fmt.Sprintf("A driver accepted order %s.", ref)
	case order.EventCancelled:
		return notification.TypeOrder, "Order cancelled",
			fmt.Sprintf("Order %s was cancelled.", ref)
	case order.EventDeliveryValidated:
		return notification.TypeDelivery, "Delivery validated",
			fmt.Sprintf("The %s validated the delivery of order %s.", event.Party, ref)
	case order.EventCompleted:
		return notification.TypeDelivery, "Order completed",
			fmt.Sprintf("Order %s is completed.", ref)
	case order.EventPaymentRecorded:
		return notification.TypePayment, "Payment recorded",
			fmt.Sprintf("Payment for order %s is %s.", ref, event.PaymentStatus)
	default:
		return notification.TypeOrder, "Order update",
			fmt.Sprintf("Order %s changed.", ref)
	}
}

func shortRef(id kernel.UUID) string {
	s := id.String()
	if len(s) > 8 {
		return "#" + s[:8]
	}
	return "#" + s
}
