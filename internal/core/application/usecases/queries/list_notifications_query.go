package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery lists the notifications addressed to the actor.
// Store actors receive the notifications addressed to their store id.
type ListNotificationsQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

func NewListNotificationsQuery(actor kernel.Actor) (ListNotificationsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}
	return ListNotificationsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

func (q ListNotificationsQuery) Actor() kernel.Actor {
	return q.actor
}
