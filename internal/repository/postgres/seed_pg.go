// internal/repository/postgres/seed_pg.go
package postgres

import (
	"context"
	"fmt"

	"bankist/internal/domain"
	"bankist/internal/repository"
	"bankist/pkg/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	selectAccountsQuery = `SELECT id, owner, pin, interest_rate
		FROM accounts
		ORDER BY position`

	selectMovementsQuery = `SELECT account_id, amount
		FROM movements
		ORDER BY account_id, seq`
)

type accountRow struct {
	ID           uuid.UUID       `db:"id"`
	Owner        string          `db:"owner"`
	PIN          int             `db:"pin"`
	InterestRate decimal.Decimal `db:"interest_rate"`
}

type movementRow struct {
	AccountID uuid.UUID       `db:"account_id"`
	Amount    decimal.Decimal `db:"amount"`
}

// SeedRepository implements repository.SeedSource for PostgreSQL.
// Both queries run inside one read-only transaction.
type SeedRepository struct {
	conn       db.DBTxBeginner
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
}

// NewSeedRepository creates a new SeedRepository over conn (usually *sqlx.DB).
func NewSeedRepository(conn db.DBTxBeginner) repository.SeedSource {
	return &SeedRepository{
		conn:       conn,
		beginTx:    db.BeginReadOnlyTx,
		commitTx:   db.CommitTx,
		rollbackTx: db.RollbackTx,
	}
}

// LoadAccounts reads the roster and attaches each account's movements in seq order.
func (r *SeedRepository) LoadAccounts(ctx context.Context) ([]*domain.Account, error) {
	tx, err := r.beginTx(ctx, r.conn)
	if err != nil {
		return nil, fmt.Errorf("load accounts: failed to begin transaction: %w", err)
	}
	defer r.rollbackTx(tx)

	q, ok := tx.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("load accounts: transaction controller does not implement DBExecutor")
	}

	var accountRows []accountRow
	if err := q.SelectContext(ctx, &accountRows, selectAccountsQuery); err != nil {
		return nil, fmt.Errorf("load accounts: failed to fetch accounts: %w", err)
	}

	var movementRows []movementRow
	if err := q.SelectContext(ctx, &movementRows, selectMovementsQuery); err != nil {
		return nil, fmt.Errorf("load accounts: failed to fetch movements: %w", err)
	}

	if err := r.commitTx(tx); err != nil {
		return nil, fmt.Errorf("load accounts: failed to commit transaction: %w", err)
	}

	accounts := make([]*domain.Account, 0, len(accountRows))
	byID := make(map[uuid.UUID]*domain.Account, len(accountRows))
	for _, row := range accountRows {
		acc := &domain.Account{
			ID:           row.ID,
			Owner:        row.Owner,
			PIN:          row.PIN,
			InterestRate: row.InterestRate,
			Movements:    []domain.Movement{},
		}
		accounts = append(accounts, acc)
		byID[row.ID] = acc
	}
	for _, row := range movementRows {
		acc, ok := byID[row.AccountID]
		if !ok {
			return nil, fmt.Errorf("load accounts: movement references unknown account %s", row.AccountID)
		}
		acc.Append(domain.NewMovement(row.Amount))
	}

	return accounts, nil
}
