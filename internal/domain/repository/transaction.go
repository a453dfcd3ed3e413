package repository

import "context"

// TransactionManager runs multi-store writes atomically. Account deletion uses
// it so warranties and their owner disappear together.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory returns stores bound to the running transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	WarrantyRepo() WarrantyRepository
}
