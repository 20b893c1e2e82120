// Package memory is the in-process storage backend.
//
// A Database keeps aggregate snapshots (order.State, store.State, notification.State)
// and catalog values keyed by id, remembering insertion order. A UnitOfWork holds the
// database-wide writer lock from Begin until Commit or Rollback, stages its writes and
// applies them atomically at Commit. Repositories used without Begin read the last
// committed data.
package memory
