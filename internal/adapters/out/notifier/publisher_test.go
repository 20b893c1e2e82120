package notifier_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/adapters/out/notifier"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var occurredAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	customerID, storeID, driverID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	orderID := kernel.NewUUID()

	factory := memory.NewUnitOfWorkFactory(memory.NewDatabase())
	publisher := notifier.NewPublisher(factory, slog.New(slog.NewTextHandler(io.Discard, nil)))

	publisher.Publish(ctx, []order.Event{
		{
			Type:       order.EventPlaced,
			OrderID:    orderID,
			CustomerID: customerID,
			StoreID:    storeID,
			Status:     order.Pending,
			OccurredAt: occurredAt,
		},
		{
			Type:       order.EventClaimed,
			OrderID:    orderID,
			CustomerID: customerID,
			StoreID:    storeID,
			DriverID:   &driverID,
			Status:     order.ReadyForPickup,
			OccurredAt: occurredAt.Add(time.Minute),
		},
	})

	repo := factory.Create().NotificationRepository()

	customerInbox, err := repo.ListForUser(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, customerInbox, 2)
	assert.Equal(t, "Order accepted", customerInbox[0].Title())
	assert.Equal(t, notification.TypeDelivery, customerInbox[0].Type())
	assert.Equal(t, "New order", customerInbox[1].Title())
	assert.Equal(t, occurredAt, customerInbox[1].CreatedAt())
	assert.False(t, customerInbox[1].IsRead())

	storeInbox, err := repo.ListForUser(ctx, storeID)
	require.NoError(t, err)
	assert.Len(t, storeInbox, 2)

	driverInbox, err := repo.ListForUser(ctx, driverID)
	require.NoError(t, err)
	require.Len(t, driverInbox, 1)
	assert.Contains(t, driverInbox[0].Message(), orderID.String()[:8])
}

func TestPublisher_PublishNothing(t *testing.T) {
	factory := failingFactory{err: errors.New("must not be called")}
	var logs bytes.Buffer
	publisher := notifier.NewPublisher(factory, slog.New(slog.NewTextHandler(&logs, nil)))

	publisher.Publish(context.Background(), nil)

	assert.Empty(t, logs.String())
}

func TestPublisher_LogsFailures(t *testing.T) {
	factory := failingFactory{err: errors.New("database is gone")}
	var logs bytes.Buffer
	publisher := notifier.NewPublisher(factory, slog.New(slog.NewTextHandler(&logs, nil)))

	publisher.Publish(context.Background(), []order.Event{{
		Type:       order.EventCancelled,
		OrderID:    kernel.NewUUID(),
		CustomerID: kernel.NewUUID(),
		StoreID:    kernel.NewUUID(),
		OccurredAt: occurredAt,
	}})

	assert.Contains(t, logs.String(), "failed to store notifications")
	assert.Contains(t, logs.String(), "database is gone")
}

type failingFactory struct {
	err error
}

func (f failingFactory) Create() ports.UnitOfWork {
	return failingUoW(f)
}

type failingUoW struct {
	err error
}

func (u failingUoW) Begin(context.Context) error    { return u.err }
func (u failingUoW) Commit(context.Context) error   { return u.err }
func (u failingUoW) Rollback(context.Context) error { return nil }

func (u failingUoW) OrderRepository() ports.OrderRepository               { return nil }
func (u failingUoW) StoreRepository() ports.StoreRepository               { return nil }
func (u failingUoW) CatalogRepository() ports.CatalogRepository           { return nil }
func (u failingUoW) NotificationRepository() ports.NotificationRepository { return nil }
