package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/clock"
	"marketplace/internal/pkg/errs"
)

// AssignDriverCommandHandler attaches a driver chosen by an admin.
//
// The order's own rules are checked first (admin only, no driver yet, status in
// confirmed..ready_for_pickup, all ErrNotAssignable); the driver must then exist in
// the catalog with the driver role, otherwise errs.ErrObjectNotFound.
type AssignDriverCommandHandler struct {
	mutation orderMutation
}

func NewAssignDriverCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	clk clock.Clock,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		mutation: orderMutation{uowFactory: uowFactory, publisher: publisher, clock: clk},
	}
}

func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutation.apply(ctx, cmd.OrderID(), func(uow OrderUoW, o *order.Order, now time.Time) error {
		if err := o.AssignDriver(cmd.Actor(), cmd.DriverID(), now); err != nil {
			return err
		}

		driver, err := uow.CatalogRepository().GetUser(ctx, cmd.DriverID())
		if err != nil {
			return err
		}
		if driver.Role() != kernel.RoleDriver {
			return errs.NewObjectNotFoundError("driver", cmd.DriverID())
		}
		return nil
	})
}
