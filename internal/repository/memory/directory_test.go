// internal/repository/memory/directory_test.go
package memory

import (
	"context"
	"testing"

	"bankist/internal/domain"
	"bankist/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DirectorySuite struct {
	suite.Suite
	dir *Directory
}

func (s *DirectorySuite) SetupTest() {
	accounts, err := NewStaticSeed().LoadAccounts(context.Background())
	s.Require().NoError(err)
	s.dir = NewDirectory(accounts)
}

func TestDirectorySuite(t *testing.T) {
	suite.Run(t, new(DirectorySuite))
}

func (s *DirectorySuite) TestSeedUsernames() {
	var names []string
	for _, acc := range s.dir.Accounts() {
		names = append(names, acc.Username)
	}
	s.Equal([]string{"js", "jd", "stw", "ss"}, names)
}

func (s *DirectorySuite) TestResolve() {
	acc, err := s.dir.Resolve("jd")
	s.NoError(err)
	s.Equal("Jessica Davis", acc.Owner)

	_, err = s.dir.Resolve("JD")
	s.ErrorIs(err, util.ErrUnknownAccount)

	_, err = s.dir.Resolve("")
	s.ErrorIs(err, util.ErrUnknownAccount)
}

func (s *DirectorySuite) TestGenerateUsernamesIsIdempotent() {
	before := s.dir.Accounts()
	first := make([]string, len(before))
	for i, acc := range before {
		first[i] = acc.Username
	}

	s.dir.GenerateUsernames()
	s.dir.GenerateUsernames()

	for i, acc := range s.dir.Accounts() {
		s.Equal(first[i], acc.Username)
	}
}

func (s *DirectorySuite) TestGenerateUsernamesOverridesStaleValues() {
	acc, err := s.dir.Resolve("ss")
	s.Require().NoError(err)
	acc.Username = "tampered"

	s.dir.GenerateUsernames()

	again, err := s.dir.Resolve("ss")
	s.NoError(err)
	s.Same(acc, again)
}

func (s *DirectorySuite) TestRemoveByIdentity() {
	target, err := s.dir.Resolve("stw")
	s.Require().NoError(err)
	others := map[string]int{}
	for _, acc := range s.dir.Accounts() {
		if acc != target {
			others[acc.Username] = len(acc.Movements)
		}
	}

	s.NoError(s.dir.Remove(target))

	s.Equal(3, s.dir.Len())
	_, err = s.dir.Resolve("stw")
	s.ErrorIs(err, util.ErrUnknownAccount)
	for _, acc := range s.dir.Accounts() {
		s.Equal(others[acc.Username], len(acc.Movements))
	}
}

func (s *DirectorySuite) TestRemoveReleasesClosedAccount() {
	target, err := s.dir.Resolve("js")
	s.Require().NoError(err)

	s.NoError(s.dir.Remove(target))

	backing := s.dir.accounts[:cap(s.dir.accounts)]
	s.Len(s.dir.accounts, 3)
	s.Nil(backing[len(backing)-1])
	for _, acc := range backing {
		s.NotSame(target, acc)
	}
}

func (s *DirectorySuite) TestRemoveAbsentAccount() {
	stranger := domain.NewAccount("Nobody Here", 1, decimal.Zero, nil)
	err := s.dir.Remove(stranger)
	s.ErrorIs(err, util.ErrUnknownAccount)
	s.Equal(4, s.dir.Len())
}

// Usernames are not unique; the first account in roster order wins and the
// other stays unreachable by username until the first is removed.
func (s *DirectorySuite) TestUsernameCollisionKnownLimitation() {
	jane := domain.NewAccount("Jane Smith", 5555, decimal.NewFromInt(1), nil)
	john := domain.NewAccount("John Smith", 6666, decimal.NewFromInt(1), nil)
	dir := NewDirectory([]*domain.Account{jane, john})

	got, err := dir.Resolve("js")
	s.NoError(err)
	s.Same(jane, got)

	s.NoError(dir.Remove(jane))
	got, err = dir.Resolve("js")
	s.NoError(err)
	s.Same(john, got)
}

func (s *DirectorySuite) TestStaticSeedReturnsFreshCopies() {
	seed := NewStaticSeed()
	a, err := seed.LoadAccounts(context.Background())
	s.Require().NoError(err)
	b, err := seed.LoadAccounts(context.Background())
	s.Require().NoError(err)

	a[0].Append(domain.NewMovement(decimal.NewFromInt(1)))
	s.Len(b[0].Movements, 8)
	s.NotEqual(a[0].ID, b[0].ID)
	s.True(decimal.NewFromInt(3840).Equal(b[0].Balance()))
}
