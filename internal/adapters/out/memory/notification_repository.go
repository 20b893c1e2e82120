package memory

import (
	"context"
	"fmt"
	"slices"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

type NotificationRepository struct {
	uow *UnitOfWork
}

func (r *NotificationRepository) Add(_ context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.write(func(staged *tables) error {
		if _, exists := r.find(aggregate.ID()); exists {
			return errs.NewValueIsInvalidErrorWithCause("notification id", fmt.Errorf("%s already exists", aggregate.ID()))
		}
		staged.notifications.put(aggregate.ID(), aggregate.State())
		return nil
	})
}

func (r *NotificationRepository) Update(_ context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.write(func(staged *tables) error {
		if _, exists := r.find(aggregate.ID()); !exists {
			return errs.NewObjectNotFoundError("notification", aggregate.ID())
		}
		staged.notifications.put(aggregate.ID(), aggregate.State())
		return nil
	})
}

func (r *NotificationRepository) Get(_ context.Context, id kernel.UUID) (*notification.Notification, error) {
	state, ok := r.find(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("notification", id)
	}
	return notification.Restore(state)
}

func (r *NotificationRepository) ListForUser(_ context.Context, userID kernel.UUID) ([]*notification.Notification, error) {
	var states []notification.State
	r.uow.view(func(staged, committed *tables) {
		states = visible(staged.notificationRows(), committed.notificationRows())
	})

	states = slices.DeleteFunc(states, func(s notification.State) bool {
		return !s.UserID.IsEqual(userID)
	})
	slices.Reverse(states)
	slices.SortStableFunc(states, func(a, b notification.State) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	result := make([]*notification.Notification, 0, len(states))
	for _, state := range states {
		n, err := notification.Restore(state)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}

func (r *NotificationRepository) find(id kernel.UUID) (notification.State, bool) {
	var (
		state notification.State
		ok    bool
	)
	r.uow.view(func(staged, committed *tables) {
		state, ok = lookup(staged.notificationRows(), committed.notificationRows(), id)
	})
	return state, ok
}
