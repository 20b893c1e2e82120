package errs

import (
	"errors"
	"fmt"
)

// Business rule kinds. A RuleViolationError always unwraps to exactly one of them,
// so callers classify failures with errors.Is.
var (
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrNotAssignable      = errors.New("order is not assignable")
	ErrAlreadyClaimed     = errors.New("order is already claimed")
	ErrQuotaExhausted     = errors.New("delivery quota exhausted")
	ErrValidationConflict = errors.New("validation conflict")
	ErrAlreadyActive      = errors.New("pack is already active")
	ErrForbidden          = errors.New("action is forbidden")
)

// RuleViolationError describes a refused state change on an aggregate.
type RuleViolationError struct {
	Kind   error
	Detail string
}

func (e *RuleViolationError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *RuleViolationError) Unwrap() error {
	return e.Kind
}

func NewInvalidTransitionError(from string, action string) *RuleViolationError {
	return &RuleViolationError{
		Kind:   ErrInvalidTransition,
		Detail: fmt.Sprintf("cannot %s an order in status %s", action, from),
	}
}

func NewNotAssignableError(detail string) *RuleViolationError {
	return &RuleViolationError{Kind: ErrNotAssignable, Detail: detail}
}

func NewAlreadyClaimedError(orderID any) *RuleViolationError {
	return &RuleViolationError{Kind: ErrAlreadyClaimed, Detail: fmt.Sprintf("order %s has a driver", orderID)}
}

func NewQuotaExhaustedError(storeID any) *RuleViolationError {
	return &RuleViolationError{
		Kind:   ErrQuotaExhausted,
		Detail: fmt.Sprintf("store %s has no remaining deliveries", storeID),
	}
}

func NewValidationConflictError(detail string) *RuleViolationError {
	return &RuleViolationError{Kind: ErrValidationConflict, Detail: detail}
}

func NewAlreadyActiveError(storeID any) *RuleViolationError {
	return &RuleViolationError{
		Kind:   ErrAlreadyActive,
		Detail: fmt.Sprintf("store %s still has an active pack", storeID),
	}
}

func NewForbiddenError(detail string) *RuleViolationError {
	return &RuleViolationError{Kind: ErrForbidden, Detail: detail}
}
