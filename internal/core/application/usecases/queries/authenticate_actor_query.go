package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAuthenticateActorQueryIsNotConstructed = errors.New(
	"AuthenticateActorQuery must be created via NewAuthenticateActorQuery constructor",
)

// AuthenticateActorQuery checks a declared identity against the catalog.
type AuthenticateActorQuery struct { //nolint:recvcheck //using for validation
	role kernel.Role
	id   kernel.UUID

	guard guard.ConstructorGuard
}

func NewAuthenticateActorQuery(role kernel.Role, id kernel.UUID) (AuthenticateActorQuery, error) {
	if err := errors.Join(role.Validate(), id.Validate()); err != nil {
		return AuthenticateActorQuery{}, err
	}

	return AuthenticateActorQuery{role: role, id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q AuthenticateActorQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateActorQueryIsNotConstructed)
}

func (q AuthenticateActorQuery) Role() kernel.Role {
	return q.role
}

func (q AuthenticateActorQuery) ID() kernel.UUID {
	return q.id
}
