package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/clock"
)

// orderMutation runs one change against a locked order inside its own unit of work
// and publishes the recorded events once the change has committed.
type orderMutation struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	clock      clock.Clock
}

func (m orderMutation) apply(
	ctx context.Context,
	orderID kernel.UUID,
	change func(uow OrderUoW, o *order.Order, now time.Time) error,
) error {
	uow := m.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = change(uow, o, m.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	m.publisher.Publish(ctx, o.PullEvents())
	return nil
}
