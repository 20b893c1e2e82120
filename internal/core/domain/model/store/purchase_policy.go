package store

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PurchasePolicy decides what happens when a store buys a pack while one is still active.
type PurchasePolicy int

const (
	// PolicyReject refuses the purchase with ErrAlreadyActive.
	PolicyReject PurchasePolicy = iota
	// PolicyReplace discards the remaining deliveries of the current pack.
	PolicyReplace
	// PolicyStack adds the new deliveries to the remainder and adopts the new pack's terms.
	PolicyStack
)

func ParsePurchasePolicy(s string) (PurchasePolicy, error) {
	switch s {
	case "reject":
		return PolicyReject, nil
	case "replace":
		return PolicyReplace, nil
	case "stack":
		return PolicyStack, nil
	default:
		return PolicyReject, errs.NewValueIsInvalidErrorWithCause(
			"pack purchase policy", fmt.Errorf("%q is not one of reject, replace, stack", s))
	}
}

func (p PurchasePolicy) String() string {
	switch p {
	case PolicyReplace:
		return "replace"
	case PolicyStack:
		return "stack"
	default:
		return "reject"
	}
}
