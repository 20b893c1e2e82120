package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Party is a side that must confirm a delivery before the order completes.
type Party int

const (
	PartyUnknown Party = iota
	PartyCustomer
	PartyDriver
)

func ParseParty(s string) (Party, error) {
	switch s {
	case "customer":
		return PartyCustomer, nil
	case "driver":
		return PartyDriver, nil
	default:
		return PartyUnknown, errs.NewValueIsInvalidErrorWithCause("party", fmt.Errorf("%q is not a valid party", s))
	}
}

func (p Party) String() string {
	switch p {
	case PartyCustomer:
		return "customer"
	case PartyDriver:
		return "driver"
	default:
		return "unknown"
	}
}
