package commands

import (
	"context"

	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/clock"
)

// PurchasePackCommandHandler installs a pack on a store under the configured
// overlap policy (reject, replace or stack).
type PurchasePackCommandHandler struct {
	uowFactory StoreUoWFactory
	policy     store.PurchasePolicy
	clock      clock.Clock
}

func NewPurchasePackCommandHandler(
	uowFactory StoreUoWFactory,
	policy store.PurchasePolicy,
	clk clock.Clock,
) PurchasePackCommandHandler {
	return PurchasePackCommandHandler{uowFactory: uowFactory, policy: policy, clock: clk}
}

func (h PurchasePackCommandHandler) Handle(ctx context.Context, cmd PurchasePackCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pack, err := uow.CatalogRepository().GetPack(ctx, cmd.PackID())
	if err != nil {
		return err
	}

	storeRepo := uow.StoreRepository()
	s, err := storeRepo.Get(ctx, cmd.StoreID())
	if err != nil {
		return err
	}

	if err = s.PurchasePack(cmd.Actor(), pack, h.policy, h.clock.Now()); err != nil {
		return err
	}

	if err = storeRepo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
