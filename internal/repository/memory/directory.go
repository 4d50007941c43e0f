// internal/repository/memory/directory.go
package memory

import (
	"fmt"
	"slices"

	"bankist/internal/domain"
	"bankist/internal/repository"
	"bankist/internal/util"
)

// Directory implements repository.Directory over an ordered in-memory slice.
// It is not safe for concurrent use; callers serialize access.
type Directory struct {
	accounts []*domain.Account
}

// NewDirectory creates a Directory holding accounts in the given order and
// derives every username before returning.
func NewDirectory(accounts []*domain.Account) *Directory {
	d := &Directory{accounts: append([]*domain.Account(nil), accounts...)}
	d.GenerateUsernames()
	return d
}

var _ repository.Directory = (*Directory)(nil)

// Resolve returns the first account whose username matches exactly.
// Colliding usernames are not detected: later accounts are unreachable.
func (d *Directory) Resolve(username string) (*domain.Account, error) {
	for _, acc := range d.accounts {
		if acc.Username == username {
			return acc, nil
		}
	}
	return nil, util.ErrUnknownAccount
}

// GenerateUsernames recomputes usernames from owners.
func (d *Directory) GenerateUsernames() {
	for _, acc := range d.accounts {
		acc.Username = domain.DeriveUsername(acc.Owner)
	}
}

// Remove deletes the account with the same ID, keeping the order of the rest.
func (d *Directory) Remove(account *domain.Account) error {
	for i, acc := range d.accounts {
		if acc.ID == account.ID {
			d.accounts = slices.Delete(d.accounts, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("remove account %s: %w", account.ID, util.ErrUnknownAccount)
}

// Accounts returns a copy of the roster slice. The accounts themselves are shared.
func (d *Directory) Accounts() []*domain.Account {
	return append([]*domain.Account(nil), d.accounts...)
}

// Len returns the number of accounts.
func (d *Directory) Len() int {
	return len(d.accounts)
}
