package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkNotificationReadCommandHandler_Handle(t *testing.T) {
	h := newHarness(t, 0)
	n, err := notification.NewNotification(kernel.NewUUID(), h.customer.ID(), notification.TypeOrder,
		"Order confirmed", "Your order is confirmed", testNow)
	require.NoError(t, err)
	require.NoError(t, h.factories.Create().NotificationRepository().Add(testContext(t), n))
	handler := commands.NewMarkNotificationReadCommandHandler(h.factories.notification())

	cmd, err := commands.NewMarkNotificationReadCommand(n.ID(), h.driver)
	require.NoError(t, err)
	require.ErrorIs(t, handler.Handle(testContext(t), cmd), errs.ErrForbidden)

	cmd, err = commands.NewMarkNotificationReadCommand(n.ID(), h.customer)
	require.NoError(t, err)
	require.NoError(t, handler.Handle(testContext(t), cmd))

	stored, err := h.factories.Create().NotificationRepository().Get(testContext(t), n.ID())
	require.NoError(t, err)
	assert.True(t, stored.IsRead())
}
