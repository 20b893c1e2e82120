package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the position of an order in its lifecycle.
//
//	pending → confirmed → preparing → ready_for_pickup → picked_up → in_delivery → delivered → completed
//	   └──────────┴───────────┴──────────────┴──────────────┴────────────┴──────────┴──→ cancelled
//
// delivered only moves to completed once both parties validated the delivery;
// completed and cancelled are terminal.
type Status int

const (
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	ReadyForPickup
	PickedUp
	InDelivery
	Delivered
	Completed
	Cancelled
)

func getStatusNames() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		ReadyForPickup: "ready_for_pickup",
		PickedUp:       "picked_up",
		InDelivery:     "in_delivery",
		Delivered:      "delivered",
		Completed:      "completed",
		Cancelled:      "cancelled",
	}
}

// getForwardSteps is the single allowed successor of each advanceable status.
func getForwardSteps() map[Status]Status {
	//nolint:exhaustive // terminal and validation-gated statuses have no forward step
	return map[Status]Status{
		Pending:        Confirmed,
		Confirmed:      Preparing,
		Preparing:      ReadyForPickup,
		ReadyForPickup: PickedUp,
		PickedUp:       InDelivery,
		InDelivery:     Delivered,
	}
}

// ParseStatus converts a wire name such as "ready_for_pickup".
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusNames() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, ReadyForPickup, PickedUp, InDelivery, Delivered, Completed, Cancelled}
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := getStatusNames()[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Next returns the forward successor, or false when the status cannot be advanced.
func (s Status) Next() (Status, bool) {
	next, ok := getForwardSteps()[s]
	return next, ok
}

// IsAssignable reports whether an admin may attach a driver in this status.
func (s Status) IsAssignable() bool {
	return s == Confirmed || s == Preparing || s == ReadyForPickup
}

// IsValidatable reports whether delivery confirmations are accepted in this status.
func (s Status) IsValidatable() bool {
	return s == Delivered || s == Completed
}
