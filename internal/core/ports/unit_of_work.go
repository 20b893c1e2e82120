package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage the transaction lifecycle; repositories
// obtained without Begin read outside any transaction.
type UnitOfWork interface {
	// Begin starts a new transaction. The memory backend takes the writer lock here.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Calling it after Commit is a no-op.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	StoreRepository() StoreRepository
	CatalogRepository() CatalogRepository
	NotificationRepository() NotificationRepository
}
