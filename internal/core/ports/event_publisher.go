package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// EventPublisher receives order events once the unit of work that produced them
// has committed. Publishing is best effort: failures are logged by the adapter
// and never undo the committed change.
type EventPublisher interface {
	Publish(ctx context.Context, events []order.Event)
}
