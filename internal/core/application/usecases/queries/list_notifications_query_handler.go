package queries

import (
	"context"

	"marketplace/internal/core/ports"
)

type ListNotificationsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListNotificationsQueryHandler(uowFactory ports.UnitOfWorkFactory) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{uowFactory: uowFactory}
}

// Handle returns the actor's notifications, newest first.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]NotificationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	notifications, err := h.uowFactory.Create().NotificationRepository().ListForUser(ctx, query.Actor().ID())
	if err != nil {
		return nil, err
	}

	views := make([]NotificationView, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, newNotificationView(n))
	}
	return views, nil
}
