// internal/domain/account_test.go
package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveUsername(t *testing.T) {
	cases := []struct {
		owner string
		want  string
	}{
		{"Jessica Davis", "jd"},
		{"Steven Thomas Williams", "stw"},
		{"Jonas Schmedtmann", "js"},
		{"Sarah Smith", "ss"},
		{"  Ada   Lovelace ", "al"},
		{"Émile Zola", "éz"},
		{"", ""},
	}
	for _, tc := range cases {
		t.Run(tc.owner, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveUsername(tc.owner))
		})
	}
}

func TestNewAccount(t *testing.T) {
	acc := NewAccount("Jessica Davis", 2222, decimal.RequireFromString("1.5"), MovementsFromInts(5000))

	assert.NotEqual(t, uuid.Nil, acc.ID)
	assert.Equal(t, "jd", acc.Username)
	assert.Equal(t, "Jessica", acc.FirstName())
	assert.True(t, acc.Matches("jd", 2222))
	assert.False(t, acc.Matches("jd", 2223))
	assert.False(t, acc.Matches("js", 2222))
}

func TestAccountSummary(t *testing.T) {
	acc := NewAccount("Sarah Smith", 4444, decimal.NewFromInt(1), MovementsFromInts(430, 1000, 700, 50, 90))
	s := acc.Summary()

	assert.True(t, decimal.NewFromInt(2270).Equal(s.In))
	assert.True(t, s.Out.IsZero())
	// 4.3 + 10 + 7; 0.5 and 0.9 fall under the floor.
	assert.True(t, decimal.RequireFromString("21.3").Equal(s.Interest), "interest = %s", s.Interest)
}
