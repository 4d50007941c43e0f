// internal/api/types/view.go
package types

import (
	"bankist/internal/domain"

	"github.com/shopspring/decimal"
)

// MovementRow is one line of the rendered movement list.
type MovementRow struct {
	Index int                 `json:"index"` // 1-based position in the supplied order
	Type  domain.MovementKind `json:"type"`
	Value decimal.Decimal     `json:"value"`
}

// AccountView is everything a renderer needs to redraw an account.
type AccountView struct {
	Owner     string          `json:"owner"`
	Username  string          `json:"username"`
	Welcome   string          `json:"welcome"`
	Movements []MovementRow   `json:"movements"`
	Balance   decimal.Decimal `json:"balance"`
	Summary   domain.Summary  `json:"summary"`
	Sorted    bool            `json:"sorted"`
}

// NewAccountView renders acc with its movements listed in the order given.
// Balance and summary always come from the account's own ledger.
func NewAccountView(acc *domain.Account, movements []domain.Movement, sorted bool) AccountView {
	rows := make([]MovementRow, 0, len(movements))
	for i, m := range movements {
		rows = append(rows, MovementRow{
			Index: i + 1,
			Type:  m.Kind(),
			Value: m.Amount(),
		})
	}
	return AccountView{
		Owner:     acc.Owner,
		Username:  acc.Username,
		Welcome:   "Welcome back, " + acc.FirstName(),
		Movements: rows,
		Balance:   acc.Balance(),
		Summary:   acc.Summary(),
		Sorted:    sorted,
	}
}
