package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/core/ports"
)

// Seeder writes a fixture in one unit of work. A backend that already holds
// users is left untouched.
type Seeder struct {
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
}

func NewSeeder(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *Seeder {
	return &Seeder{
		uowFactory: uowFactory,
		logger:     logger.With("component", "seed"),
	}
}

// Apply seeds f and reports whether anything was written. Stores naming a pack
// get it installed as if an admin had bought it at now.
func (s *Seeder) Apply(ctx context.Context, f Fixture, now time.Time) (bool, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	existing, err := catalogRepo.ListUsers(ctx, kernel.RoleUnknown)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		s.logger.InfoContext(ctx, "catalog already seeded, skipping", "users", len(existing))
		return false, nil
	}

	packs := make(map[string]store.Pack, len(f.Packs))
	for _, record := range f.Packs {
		pack, packErr := record.toDomain()
		if packErr != nil {
			return false, fmt.Errorf("pack %q: %w", record.Name, packErr)
		}
		if err = catalogRepo.AddPack(ctx, pack); err != nil {
			return false, err
		}
		packs[pack.Name()] = pack
	}

	for _, record := range f.Users {
		user, userErr := record.toDomain()
		if userErr != nil {
			return false, fmt.Errorf("user %q: %w", record.Name, userErr)
		}
		if err = catalogRepo.AddUser(ctx, user); err != nil {
			return false, err
		}
	}

	if err = s.addStores(ctx, uow, f.Stores, packs, now); err != nil {
		return false, err
	}

	for _, record := range f.Products {
		product, productErr := record.toDomain()
		if productErr != nil {
			return false, fmt.Errorf("product %q: %w", record.Name, productErr)
		}
		if err = catalogRepo.AddProduct(ctx, product); err != nil {
			return false, err
		}
	}

	for _, record := range f.PickupPoints {
		point, pointErr := record.toDomain()
		if pointErr != nil {
			return false, fmt.Errorf("pickup point %q: %w", record.Name, pointErr)
		}
		if err = catalogRepo.AddPickupPoint(ctx, point); err != nil {
			return false, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	s.logger.InfoContext(ctx, "catalog seeded",
		"packs", len(f.Packs),
		"users", len(f.Users),
		"stores", len(f.Stores),
		"products", len(f.Products),
		"pickupPoints", len(f.PickupPoints),
	)
	return true, nil
}

func (s *Seeder) addStores(
	ctx context.Context,
	uow ports.UnitOfWork,
	records []StoreRecord,
	packs map[string]store.Pack,
	now time.Time,
) error {
	seeder, err := kernel.NewActor(kernel.RoleAdmin, kernel.NewUUID())
	if err != nil {
		return err
	}

	for _, record := range records {
		st, storeErr := record.toDomain()
		if storeErr != nil {
			return fmt.Errorf("store %q: %w", record.Name, storeErr)
		}

		if record.Pack != "" {
			pack, ok := packs[record.Pack]
			if !ok {
				return fmt.Errorf("store %q names unknown pack %q", record.Name, record.Pack)
			}
			if err = st.PurchasePack(seeder, pack, store.PolicyReject, now); err != nil {
				return err
			}
		}

		if err = uow.StoreRepository().Add(ctx, st); err != nil {
			return err
		}
	}
	return nil
}
