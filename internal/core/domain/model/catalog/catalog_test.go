package catalog_test

import (
	"testing"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("builds the actor from role and id", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := catalog.NewUser(id, "Mike Rider", kernel.RoleDriver, catalog.Contact{Email: "mike@example.com"})

		require.NoError(t, err)
		assert.True(t, u.Actor().Is(kernel.RoleDriver))
		assert.True(t, u.Actor().ID().IsEqual(id))
		assert.Equal(t, "mike@example.com", u.Contact().Email)
	})

	t.Run("requires name and a known role", func(t *testing.T) {
		_, err := catalog.NewUser(kernel.NewUUID(), "", kernel.RoleUnknown, catalog.Contact{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, catalog.User{}.Validate(), catalog.ErrUserIsNotConstructed)
	})
}

func TestProduct_IsOrderableAt(t *testing.T) {
	storeID := kernel.NewUUID()
	available, err := catalog.NewProduct(kernel.NewUUID(), storeID, "Sourdough Bread", "", kernel.MoneyFromInt(6), "", true)
	require.NoError(t, err)
	soldOut, err := catalog.NewProduct(kernel.NewUUID(), storeID, "Croissant", "", kernel.MoneyFromInt(4), "", false)
	require.NoError(t, err)

	assert.True(t, available.IsOrderableAt(storeID))
	assert.False(t, available.IsOrderableAt(kernel.NewUUID()))
	assert.False(t, soldOut.IsOrderableAt(storeID))
}

func TestNewPickupPoint(t *testing.T) {
	location, err := kernel.NewGeoPoint(40.7128, -74.006)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		p, err := catalog.NewPickupPoint(kernel.NewUUID(), "Central Pickup", "100 Center Plaza", location,
			"Alex Johnson", catalog.Contact{Phone: "555-111-2222"}, true)

		require.NoError(t, err)
		assert.True(t, p.IsActive())
		assert.True(t, p.Location().IsEqual(location))
	})

	t.Run("requires a location", func(t *testing.T) {
		_, err := catalog.NewPickupPoint(kernel.NewUUID(), "Central Pickup", "", kernel.GeoPoint{}, "", catalog.Contact{}, true)

		require.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
	})
}
