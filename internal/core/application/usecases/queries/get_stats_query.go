package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetStatsQueryIsNotConstructed = errors.New(
	"GetStatsQuery must be created via NewGetStatsQuery constructor",
)

// GetStatsQuery asks for the marketplace dashboard counters. Only admins may run it.
type GetStatsQuery struct { //nolint:recvcheck //using for validation
	actor kernel.Actor

	guard guard.ConstructorGuard
}

func NewGetStatsQuery(actor kernel.Actor) (GetStatsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetStatsQuery{}, err
	}

	return GetStatsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}

func (q GetStatsQuery) Actor() kernel.Actor {
	return q.actor
}
