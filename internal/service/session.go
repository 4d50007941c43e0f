// internal/service/session.go
package service

import (
	"bankist/internal/domain"
	"bankist/internal/util"
)

// Session is the state of the single browsing session: who is logged in and
// whether movements are displayed sorted.
type Session struct {
	current     *domain.Account
	sortToggled bool
}

func (s *Session) login(acc *domain.Account) {
	s.current = acc
}

func (s *Session) clear() {
	s.current = nil
}

func (s *Session) toggleSort() bool {
	s.sortToggled = !s.sortToggled
	return s.sortToggled
}

func (s *Session) requireAccount() (*domain.Account, error) {
	if s.current == nil {
		return nil, util.ErrNoSession
	}
	return s.current, nil
}
