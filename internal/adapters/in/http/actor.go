package http

import (
	"context"
	"net/http"
	"strings"

	"marketplace/internal/adapters/in/http/api"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	HeaderActorRole = "X-Actor-Role"
	HeaderActorID   = "X-Actor-Id"

	actorKey = "actor"
)

// ActorAuthenticator resolves a declared identity against the catalog.
type ActorAuthenticator interface {
	Handle(ctx context.Context, query queries.AuthenticateActorQuery) (kernel.Actor, error)
}

// ActorMiddleware attributes every API request to an actor taken from the
// X-Actor-Role and X-Actor-Id headers. Unknown or malformed identities get a 401.
func ActorMiddleware(authenticator ActorAuthenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !strings.HasPrefix(ctx.Request().URL.Path, "/api/") {
				return next(ctx)
			}

			actor, ok := authenticate(ctx, authenticator)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, api.Error{
					Code:    http.StatusUnauthorized,
					Message: "Unknown actor",
				})
			}

			ctx.Set(actorKey, actor)
			return next(ctx)
		}
	}
}

func authenticate(ctx echo.Context, authenticator ActorAuthenticator) (kernel.Actor, bool) {
	header := ctx.Request().Header

	role, err := kernel.ParseRole(header.Get(HeaderActorRole))
	if err != nil {
		return kernel.Actor{}, false
	}
	id, err := kernel.UUIDFromString(header.Get(HeaderActorID))
	if err != nil {
		return kernel.Actor{}, false
	}

	query, err := queries.NewAuthenticateActorQuery(role, id)
	if err != nil {
		return kernel.Actor{}, false
	}

	actor, err := authenticator.Handle(ctx.Request().Context(), query)
	if err != nil {
		return kernel.Actor{}, false
	}
	return actor, true
}

// actorFrom returns the actor attached by ActorMiddleware.
func actorFrom(ctx echo.Context) kernel.Actor {
	actor, _ := ctx.Get(actorKey).(kernel.Actor)
	return actor
}
