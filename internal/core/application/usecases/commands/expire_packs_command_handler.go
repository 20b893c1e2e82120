package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/pkg/clock"
)

// ExpirePacksCommandHandler removes elapsed packs and tells each affected store.
// Candidates are found without locks, then re-read under lock before the change.
type ExpirePacksCommandHandler struct {
	uowFactory StoreUoWFactory
	clock      clock.Clock
}

func NewExpirePacksCommandHandler(uowFactory StoreUoWFactory, clk clock.Clock) ExpirePacksCommandHandler {
	return ExpirePacksCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Handle returns how many packs expired.
func (h ExpirePacksCommandHandler) Handle(ctx context.Context, cmd ExpirePacksCommand) (int, error) {
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

	expired := 0
	for _, candidate := range stores {
		expiresAt := candidate.PackExpiresAt()
		if expiresAt == nil || now.Before(*expiresAt) {
			continue
		}

		s, getErr := storeRepo.Get(ctx, candidate.ID())
		if getErr != nil {
			return 0, getErr
		}

		pack := s.CurrentPack()
		if pack == nil || !s.ExpirePack(now) {
			continue
		}

		if err = storeRepo.Update(ctx, s); err != nil {
			return 0, err
		}

		n, nErr := notification.NewNotification(kernel.NewUUID(), s.ID(), notification.TypePack,
			"Delivery pack expired",
			fmt.Sprintf("Your %s pack has expired. Purchase a new pack to keep accepting orders.", pack.Name()),
			now)
		if nErr != nil {
			return 0, nErr
		}
		if err = notificationRepo.Add(ctx, n); err != nil {
			return 0, err
		}
		expired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
