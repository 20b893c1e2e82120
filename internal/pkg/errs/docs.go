// Package errs provides standardized error types for the marketplace service.
//
// Two families live here:
//   - value errors (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
//     ObjectNotFoundError, VersionIsInvalidError) produced while building or loading aggregates
//   - rule violations (RuleViolationError) produced when an aggregate refuses a state change,
//     classified by the ErrInvalidTransition, ErrNotAssignable, ErrAlreadyClaimed,
//     ErrQuotaExhausted, ErrValidationConflict, ErrAlreadyActive and ErrForbidden sentinels
//
// Every error type exposes a sentinel through Unwrap, so the transport layer maps
// failures with errors.Is and never inspects messages.
package errs
