// internal/repository/db_executor.go
package repository

import "context"

// DBExecutor defines the read operation the seed repository runs.
// Both *sqlx.DB and *sqlx.Tx implement it.
// This allows repositories to operate on either a direct DB connection or a transaction.
type DBExecutor interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}
