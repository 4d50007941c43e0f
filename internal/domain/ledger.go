// internal/domain/ledger.go
package domain

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)

	// MinInterest is the smallest per-deposit interest amount that counts
	// towards the summary. Smaller amounts are dropped one by one, not
	// after summing.
	MinInterest = decimal.NewFromInt(1)
)

// Summary holds the aggregated figures shown next to an account's ledger.
type Summary struct {
	In       decimal.Decimal `json:"in"`
	Out      decimal.Decimal `json:"out"`
	Interest decimal.Decimal `json:"interest"`
}

// Balance sums the movements. An empty ledger has a zero balance.
func Balance(movements []Movement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		total = total.Add(m.Amount())
	}
	return total
}

// Summarize computes inflow, absolute outflow and the interest earned on
// deposits at the given percentage rate.
func Summarize(movements []Movement, interestRate decimal.Decimal) Summary {
	s := Summary{In: decimal.Zero, Out: decimal.Zero, Interest: decimal.Zero}
	for _, m := range movements {
		amount := m.Amount()
		switch {
		case amount.IsPositive():
			s.In = s.In.Add(amount)
			if interest := DepositInterest(amount, interestRate); interest.GreaterThanOrEqual(MinInterest) {
				s.Interest = s.Interest.Add(interest)
			}
		case amount.IsNegative():
			s.Out = s.Out.Add(amount)
		}
	}
	s.Out = s.Out.Abs()
	return s
}

// DepositInterest is the raw interest a single deposit earns.
func DepositInterest(deposit, interestRate decimal.Decimal) decimal.Decimal {
	return deposit.Mul(interestRate).Div(hundred)
}

// HasMovementAtLeast reports whether any movement, regardless of sign, is
// greater than or equal to threshold.
func HasMovementAtLeast(movements []Movement, threshold decimal.Decimal) bool {
	for _, m := range movements {
		if m.Amount().GreaterThanOrEqual(threshold) {
			return true
		}
	}
	return false
}
