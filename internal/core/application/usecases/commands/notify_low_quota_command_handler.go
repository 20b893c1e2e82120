package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/pkg/clock"
)

// NotifyLowQuotaCommandHandler sends one low-quota notice per installed pack.
type NotifyLowQuotaCommandHandler struct {
	uowFactory StoreUoWFactory
	clock      clock.Clock
}

func NewNotifyLowQuotaCommandHandler(uowFactory StoreUoWFactory, clk clock.Clock) NotifyLowQuotaCommandHandler {
	return NotifyLowQuotaCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Handle returns how many stores were alerted.
func (h NotifyLowQuotaCommandHandler) Handle(ctx context.Context, cmd NotifyLowQuotaCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()
	storeRepo := uow.StoreRepository()
	notificationRepo := uow.NotificationRepository()

	stores, err := storeRepo.List(ctx)
	if err != nil {
		return 0, err
	}

	alerted := 0
	for _, candidate := range stores {
		if !candidate.NeedsLowQuotaAlert(cmd.Threshold()) {
			continue
		}

		s, getErr := storeRepo.Get(ctx, candidate.ID())
		if getErr != nil {
			return 0, getErr
		}
		if !s.NeedsLowQuotaAlert(cmd.Threshold()) {
			continue
		}

		s.MarkLowQuotaAlerted()
		if err = storeRepo.Update(ctx, s); err != nil {
			return 0, err
		}

		n, nErr := notification.NewNotification(kernel.NewUUID(), s.ID(), notification.TypePack,
			"Low delivery quota",
			fmt.Sprintf("Only %d deliveries remain in your pack. Consider purchasing a new pack.", s.RemainingDeliveries()),
			now)
		if nErr != nil {
			return 0, nErr
		}
		if err = notificationRepo.Add(ctx, n); err != nil {
			return 0, err
		}
		alerted++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return alerted, nil
}
