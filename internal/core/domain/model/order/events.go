package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

type EventType string

const (
	EventPlaced            EventType = "order.placed"
	EventStatusChanged     EventType = "order.status_changed"
	EventDriverAssigned    EventType = "order.driver_assigned"
	EventClaimed           EventType = "order.claimed"
	EventCancelled         EventType = "order.cancelled"
	EventDeliveryValidated EventType = "order.delivery_validated"
	EventCompleted         EventType = "order.completed"
	EventPaymentRecorded   EventType = "order.payment_recorded"
)

// Event is a fact recorded by the Order aggregate. Events are collected with
// PullEvents and published only after the surrounding unit of work commits.
type Event struct {
	Type           EventType
	OrderID        kernel.UUID
	CustomerID     kernel.UUID
	StoreID        kernel.UUID
	DriverID       *kernel.UUID
	PreviousStatus Status
	Status         Status
	Party          Party
	PaymentStatus  PaymentStatus
	OccurredAt     time.Time
}

func (o *Order) record(eventType EventType, previous Status, now time.Time) {
	o.events = append(o.events, Event{
		Type:           eventType,
		OrderID:        o.id,
		CustomerID:     o.customerID,
		StoreID:        o.storeID,
		DriverID:       o.Driver(),
		PreviousStatus: previous,
		Status:         o.status,
		PaymentStatus:  o.paymentStatus,
		OccurredAt:     now,
	})
}

// PullEvents returns the recorded events and clears them.
func (o *Order) PullEvents() []Event {
	events := o.events
	o.events = nil
	return events
}
