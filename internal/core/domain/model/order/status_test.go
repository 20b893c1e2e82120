package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("should round-trip every wire name", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			parsed, err := order.ParseStatus(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "Delivered", "shipped"} {
			_, err := order.ParseStatus(name)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, name)
		}
	})
}

func TestStatus_Next(t *testing.T) {
	testCases := []struct {
		from     order.Status
		expected order.Status
		ok       bool
	}{
		{order.Pending, order.Confirmed, true},
		{order.Confirmed, order.Preparing, true},
		{order.Preparing, order.ReadyForPickup, true},
		{order.ReadyForPickup, order.PickedUp, true},
		{order.PickedUp, order.InDelivery, true},
		{order.InDelivery, order.Delivered, true},
		{order.Delivered, order.Unknown, false},
		{order.Completed, order.Unknown, false},
		{order.Cancelled, order.Unknown, false},
		{order.Unknown, order.Unknown, false},
	}

	for _, tc := range testCases {
		t.Run(tc.from.String(), func(t *testing.T) {
			next, ok := tc.from.Next()

			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, next)
		})
	}
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Delivered.IsTerminal())

	assert.True(t, order.Preparing.IsAssignable())
	assert.False(t, order.Pending.IsAssignable())
	assert.False(t, order.PickedUp.IsAssignable())

	assert.True(t, order.Delivered.IsValidatable())
	assert.True(t, order.Completed.IsValidatable())
	assert.False(t, order.InDelivery.IsValidatable())

	require.Error(t, order.Status(42).Validate())
	assert.Equal(t, "unknown", order.Status(42).String())
}
