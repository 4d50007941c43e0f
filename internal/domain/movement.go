// internal/domain/movement.go
package domain

import (
	"slices"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// MovementKind describes how a movement is interpreted. It is derived from the
// sign of the amount and never stored alongside it.
type MovementKind string

const (
	MovementKindDeposit    MovementKind = "deposit"
	MovementKindWithdrawal MovementKind = "withdrawal"
)

// Movement is a signed cash movement. Positive amounts are deposits, everything
// else is a withdrawal.
type Movement decimal.Decimal

// NewMovement creates a Movement from a decimal amount.
func NewMovement(amount decimal.Decimal) Movement {
	return Movement(amount)
}

// MovementsFromInts is a convenience for building ledgers from whole amounts.
func MovementsFromInts(amounts ...int64) []Movement {
	out := make([]Movement, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, Movement(decimal.NewFromInt(a)))
	}
	return out
}

// Amount returns the signed amount of the movement.
func (m Movement) Amount() decimal.Decimal {
	return decimal.Decimal(m)
}

// Kind interprets the movement by its sign.
func (m Movement) Kind() MovementKind {
	if m.Amount().IsPositive() {
		return MovementKindDeposit
	}
	return MovementKindWithdrawal
}

// IsDeposit reports whether the movement adds money to the account.
func (m Movement) IsDeposit() bool {
	return m.Kind() == MovementKindDeposit
}

func (m Movement) String() string {
	return m.Amount().String()
}

// MarshalJSON encodes the movement the same way decimal.Decimal does.
func (m Movement) MarshalJSON() ([]byte, error) {
	return m.Amount().MarshalJSON()
}

// UnmarshalJSON accepts anything decimal.Decimal accepts.
func (m *Movement) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*m = Movement(d)
	return nil
}

// SortedView returns the movements ordered for display. When ascending is set
// the copy is sorted by signed amount (stable for equal amounts), otherwise it
// keeps chronological order. The input slice is never modified.
func SortedView(movements []Movement, ascending bool) []Movement {
	view := slices.Clone(movements)
	if view == nil {
		view = []Movement{}
	}
	if ascending {
		slices.SortStableFunc(view, func(a, b Movement) int {
			return a.Amount().Cmp(b.Amount())
		})
	}
	return view
}
