// internal/repository/directory.go
package repository

import (
	"context"

	"bankist/internal/domain"
)

// Directory is the fixed roster of accounts the bank operates on.
type Directory interface {
	// Resolve returns the first account whose derived username equals username.
	Resolve(username string) (*domain.Account, error)
	// GenerateUsernames recomputes every account's username from its owner.
	GenerateUsernames()
	// Remove deletes the account with the same identity as account.
	Remove(account *domain.Account) error
	// Accounts returns the roster in seed order.
	Accounts() []*domain.Account
	// Len returns the number of accounts in the roster.
	Len() int
}

// SeedSource provides the accounts a Directory is built from at startup.
type SeedSource interface {
	// LoadAccounts returns the seed roster, movements included, in roster order.
	LoadAccounts(ctx context.Context) ([]*domain.Account, error)
}
