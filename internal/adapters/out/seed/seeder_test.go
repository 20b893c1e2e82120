package seed_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/adapters/out/seed"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seededAt = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newSeeder(t *testing.T) (*seed.Seeder, memory.UnitOfWorkFactory) {
	t.Helper()
	factory := memory.NewUnitOfWorkFactory(memory.NewDatabase())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return seed.NewSeeder(factory, logger), factory
}

func TestDefault(t *testing.T) {
	f, err := seed.Default()

	require.NoError(t, err)
	assert.Len(t, f.Packs, 3)
	assert.Len(t, f.Users, 4)
	assert.Len(t, f.Stores, 4)
	assert.Len(t, f.Products, 6)
	assert.Len(t, f.PickupPoints, 2)
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := seed.Parse([]byte("packs: [unterminated"))

	require.Error(t, err)
}

func TestSeeder_Apply(t *testing.T) {
	ctx := context.Background()
	f, err := seed.Default()
	require.NoError(t, err)

	t.Run("fills an empty backend", func(t *testing.T) {
		seeder, factory := newSeeder(t)

		applied, err := seeder.Apply(ctx, f, seededAt)

		require.NoError(t, err)
		assert.True(t, applied)

		repos := factory.Create()
		users, err := repos.CatalogRepository().ListUsers(ctx, kernel.RoleUnknown)
		require.NoError(t, err)
		assert.Len(t, users, 4)

		stores, err := repos.StoreRepository().List(ctx)
		require.NoError(t, err)
		require.Len(t, stores, 4)

		bakery, err := repos.StoreRepository().Get(ctx, kernel.MustUUIDFromString(f.Stores[0].ID))
		require.NoError(t, err)
		require.NotNil(t, bakery.CurrentPack())
		assert.Equal(t, "Starter", bakery.CurrentPack().Name())
		assert.Equal(t, 50, bakery.RemainingDeliveries())
		assert.True(t, bakery.HasActivePack(seededAt))

		unpacked, err := repos.StoreRepository().Get(ctx, kernel.MustUUIDFromString(f.Stores[2].ID))
		require.NoError(t, err)
		assert.Nil(t, unpacked.CurrentPack())

		products, err := repos.CatalogRepository().ListProducts(ctx, bakery.ID())
		require.NoError(t, err)
		assert.NotEmpty(t, products)

		packs, err := repos.CatalogRepository().ListPacks(ctx)
		require.NoError(t, err)
		assert.Len(t, packs, 3)
	})

	t.Run("leaves a seeded backend alone", func(t *testing.T) {
		seeder, _ := newSeeder(t)
		_, err := seeder.Apply(ctx, f, seededAt)
		require.NoError(t, err)

		applied, err := seeder.Apply(ctx, f, seededAt)

		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("rejects a store naming an unknown pack", func(t *testing.T) {
		seeder, factory := newSeeder(t)
		broken := f
		broken.Stores = []seed.StoreRecord{f.Stores[0]}
		broken.Stores[0].Pack = "Platinum"

		_, err := seeder.Apply(ctx, broken, seededAt)

		require.ErrorContains(t, err, "Platinum")
		users, err := factory.Create().CatalogRepository().ListUsers(ctx, kernel.RoleUnknown)
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}
