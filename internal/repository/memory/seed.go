// internal/repository/memory/seed.go
package memory

import (
	"context"

	"bankist/internal/domain"
	"bankist/internal/repository"

	"github.com/shopspring/decimal"
)

// StaticSeed is the built-in demo roster.
type StaticSeed struct{}

// NewStaticSeed creates the built-in seed source.
func NewStaticSeed() repository.SeedSource {
	return StaticSeed{}
}

// LoadAccounts returns fresh copies of the four demo accounts on every call.
func (StaticSeed) LoadAccounts(ctx context.Context) ([]*domain.Account, error) {
	return []*domain.Account{
		domain.NewAccount("Jonas Schmedtmann", 1111, decimal.RequireFromString("1.2"),
			domain.MovementsFromInts(200, 450, -400, 3000, -650, -130, 70, 1300)),
		domain.NewAccount("Jessica Davis", 2222, decimal.RequireFromString("1.5"),
			domain.MovementsFromInts(5000, 3400, -150, -790, -3210, -1000, 8500, -30)),
		domain.NewAccount("Steven Thomas Williams", 3333, decimal.RequireFromString("0.7"),
			domain.MovementsFromInts(200, -200, 340, -300, -20, 50, 400, -460)),
		domain.NewAccount("Sarah Smith", 4444, decimal.NewFromInt(1),
			domain.MovementsFromInts(430, 1000, 700, 50, 90)),
	}, nil
}
