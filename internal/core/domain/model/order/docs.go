// Package order holds the Order aggregate and its delivery lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root (placement, advance, driver assignment and claim,
//     cancellation, dual delivery validation, payment recording)
//   - Status: the lifecycle and its forward mapping
//   - CanAdvance: the one role permission table for status progression
//   - Item, Fulfillment, Charges: the parts fixed at placement time
//   - Scope and Filter: role-scoped visibility used by the repositories
//   - Event: facts recorded by the aggregate and published after commit
//
// Every refused change returns an errs.RuleViolationError whose kind tells the
// caller why (invalid transition, not assignable, already claimed, forbidden).
package order
