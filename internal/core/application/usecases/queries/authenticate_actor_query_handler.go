package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// AuthenticateActorQueryHandler resolves an actor only when the catalog knows it
// under the declared role. A store actor is accepted when either a store user
// or the store itself carries the id.
type AuthenticateActorQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewAuthenticateActorQueryHandler(uowFactory ports.UnitOfWorkFactory) AuthenticateActorQueryHandler {
	return AuthenticateActorQueryHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrObjectNotFound when the identity is unknown or
// registered under another role.
func (h AuthenticateActorQueryHandler) Handle(ctx context.Context, query AuthenticateActorQuery) (kernel.Actor, error) {
	if err := query.Validate(); err != nil {
		return kernel.Actor{}, err
	}

	uow := h.uowFactory.Create()
	user, err := uow.CatalogRepository().GetUser(ctx, query.ID())
	switch {
	case err == nil:
		if user.Role() != query.Role() {
			return kernel.Actor{}, errs.NewObjectNotFoundError(query.Role().String(), query.ID())
		}
		return user.Actor(), nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return kernel.Actor{}, err
	}

	if query.Role() != kernel.RoleStore {
		return kernel.Actor{}, errs.NewObjectNotFoundError(query.Role().String(), query.ID())
	}
	if _, err = uow.StoreRepository().Get(ctx, query.ID()); err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(kernel.RoleStore, query.ID())
}
