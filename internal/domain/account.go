// internal/domain/account.go
package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Account is a single customer account and its ledger.
// The balance is not stored: it is always the sum of Movements.
type Account struct {
	ID           uuid.UUID       `db:"id" json:"id"`                       // Identity used for removal
	Owner        string          `db:"owner" json:"owner"`                 // Display name, e.g. "Jessica Davis"
	Username     string          `db:"-" json:"username"`                  // Derived from Owner, see DeriveUsername
	PIN          int             `db:"pin" json:"-"`                       // Plain equality credential
	InterestRate decimal.Decimal `db:"interest_rate" json:"interest_rate"` // Percentage applied to deposits
	Movements    []Movement      `db:"-" json:"movements"`                 // Oldest first
}

// NewAccount creates a new Account with a fresh identity and a derived username.
func NewAccount(owner string, pin int, interestRate decimal.Decimal, movements []Movement) *Account {
	return &Account{
		ID:           uuid.New(),
		Owner:        owner,
		Username:     DeriveUsername(owner),
		PIN:          pin,
		InterestRate: interestRate,
		Movements:    movements,
	}
}

// Append records a new movement at the end of the ledger.
func (a *Account) Append(m Movement) {
	a.Movements = append(a.Movements, m)
}

// Balance is the sum of every movement.
func (a *Account) Balance() decimal.Decimal {
	return Balance(a.Movements)
}

// Summary computes inflow, outflow and interest for the account.
func (a *Account) Summary() Summary {
	return Summarize(a.Movements, a.InterestRate)
}

// FirstName returns the first token of the owner name.
func (a *Account) FirstName() string {
	fields := strings.Fields(a.Owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Matches reports whether username and pin are exactly this account's credentials.
func (a *Account) Matches(username string, pin int) bool {
	return a.Username == username && a.PIN == pin
}

// DeriveUsername builds a username from the lowercase initial of each
// whitespace-separated token of owner ("Steven Thomas Williams" -> "stw").
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, name := range strings.Fields(strings.ToLower(owner)) {
		r := []rune(name)
		b.WriteRune(r[0])
	}
	return b.String()
}
