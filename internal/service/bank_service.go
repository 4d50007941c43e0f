// internal/service/bank_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"bankist/internal/domain"
	"bankist/internal/repository"
	"bankist/internal/util"

	"github.com/shopspring/decimal"
)

// loanCoverage is the share of a requested loan that some earlier movement must reach.
var loanCoverage = decimal.New(1, -1) // 0.1

// BankService defines the commands a client can issue against the bank.
// Every command either fully applies or leaves all state untouched and
// returns an error from the util taxonomy.
type BankService interface {
	Login(ctx context.Context, username string, pin int) (*domain.Account, error)
	Logout(ctx context.Context)
	Transfer(ctx context.Context, amount decimal.Decimal, toUsername string) (*domain.Account, error)
	RequestLoan(ctx context.Context, amount decimal.Decimal) (*domain.Account, error)
	CloseAccount(ctx context.Context, username string, pin int) error
	ToggleSort(ctx context.Context) (*domain.Account, []domain.Movement, bool, error)
	Current(ctx context.Context) (*domain.Account, []domain.Movement, bool, error)
}

// MetricsRecorder receives command telemetry. Implemented by metrics.PrometheusMetrics.
type MetricsRecorder interface {
	RecordCommand(command, outcome string, duration time.Duration)
	RecordTransfer(amount decimal.Decimal)
	RecordLoan(amount decimal.Decimal)
	SetAccountsOpen(n int)
}

// bankService implements the BankService interface.
// mu serializes commands so each runs to completion before the next starts.
type bankService struct {
	mu        sync.Mutex
	directory repository.Directory
	session   Session
	metrics   MetricsRecorder
	logger    *slog.Logger
}

// NewBankService creates a new instance of BankService over directory.
func NewBankService(directory repository.Directory, metrics MetricsRecorder, logger *slog.Logger) BankService {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	metrics.SetAccountsOpen(directory.Len())
	return &bankService{
		directory: directory,
		metrics:   metrics,
		logger:    logger,
	}
}

// Login makes the account owning username the current account if pin matches.
// A failed login leaves the session as it was.
func (s *bankService) Login(ctx context.Context, username string, pin int) (acc *domain.Account, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.observe(ctx, "login", time.Now(), &err)

	acc, err = s.directory.Resolve(username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", util.ErrInvalidCredentials, err)
	}
	if acc.PIN != pin {
		return nil, util.ErrInvalidCredentials
	}

	s.session.login(acc)
	return acc, nil
}

// Logout ends the session. The sort toggle is kept, as it is on login.
func (s *bankService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.clear()
	s.logger.InfoContext(ctx, "session ended")
}

// Transfer moves amount from the current account to the account owning toUsername.
func (s *bankService) Transfer(ctx context.Context, amount decimal.Decimal, toUsername string) (sender *domain.Account, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.observe(ctx, "transfer", time.Now(), &err)

	sender, err = s.session.requireAccount()
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %w", util.ErrInvalidTransfer, util.ErrNonPositiveAmount)
	}
	receiver, err := s.directory.Resolve(toUsername)
	if err != nil {
		return nil, util.ErrReceiverNotFound
	}
	if sender.Balance().LessThan(amount) {
		return nil, util.ErrInsufficientFunds
	}
	if receiver.Username == sender.Username {
		return nil, util.ErrSelfTransfer
	}

	sender.Append(domain.NewMovement(amount.Neg()))
	receiver.Append(domain.NewMovement(amount))

	s.metrics.RecordTransfer(amount)
	s.logger.InfoContext(ctx, "transfer completed",
		"from", sender.Username,
		"to", receiver.Username,
		"amount", amount.String(),
		"sender_balance", sender.Balance().String())
	return sender, nil
}

// RequestLoan grants amount to the current account when some earlier
// movement is at least a tenth of it.
func (s *bankService) RequestLoan(ctx context.Context, amount decimal.Decimal) (acc *domain.Account, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.observe(ctx, "loan", time.Now(), &err)

	acc, err = s.session.requireAccount()
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %w", util.ErrLoanRejected, util.ErrNonPositiveAmount)
	}
	if !domain.HasMovementAtLeast(acc.Movements, amount.Mul(loanCoverage)) {
		return nil, util.ErrNoQualifyingMove
	}

	acc.Append(domain.NewMovement(amount))

	s.metrics.RecordLoan(amount)
	s.logger.InfoContext(ctx, "loan approved", "username", acc.Username, "amount", amount.String())
	return acc, nil
}

// CloseAccount removes the current account from the directory once the
// caller re-enters its own username and pin, and ends the session.
func (s *bankService) CloseAccount(ctx context.Context, username string, pin int) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.observe(ctx, "close", time.Now(), &err)

	acc, err := s.session.requireAccount()
	if err != nil {
		return err
	}
	if !acc.Matches(username, pin) {
		return util.ErrInvalidCredentials
	}
	if err := s.directory.Remove(acc); err != nil {
		return fmt.Errorf("close account: %w", err)
	}

	s.session.clear()
	s.metrics.SetAccountsOpen(s.directory.Len())
	s.logger.InfoContext(ctx, "account closed", "username", acc.Username, "accounts_open", s.directory.Len())
	return nil
}

// ToggleSort flips the display ordering and returns the movements in the new order.
func (s *bankService) ToggleSort(ctx context.Context) (acc *domain.Account, view []domain.Movement, sorted bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.observe(ctx, "sort", time.Now(), &err)

	acc, err = s.session.requireAccount()
	if err != nil {
		return nil, nil, false, err
	}
	sorted = s.session.toggleSort()
	return acc, domain.SortedView(acc.Movements, sorted), sorted, nil
}

// Current returns the logged-in account, its movements in display order and
// whether that order is sorted.
func (s *bankService) Current(ctx context.Context) (*domain.Account, []domain.Movement, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.session.requireAccount()
	if err != nil {
		return nil, nil, false, err
	}
	return acc, domain.SortedView(acc.Movements, s.session.sortToggled), s.session.sortToggled, nil
}

// observe records metrics and a log line for a finished command.
func (s *bankService) observe(ctx context.Context, command string, start time.Time, errp *error) {
	outcome := Outcome(*errp)
	s.metrics.RecordCommand(command, outcome, time.Since(start))
	if *errp != nil {
		s.logger.DebugContext(ctx, "command rejected", "command", command, "outcome", outcome, "error", *errp)
	}
}

// Outcome names the result of a command for metrics labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case util.IsError(err, util.ErrNoSession):
		return "no_session"
	case util.IsError(err, util.ErrInvalidCredentials):
		return "invalid_credentials"
	case util.IsError(err, util.ErrInvalidTransfer):
		return "invalid_transfer"
	case util.IsError(err, util.ErrLoanRejected):
		return "loan_rejected"
	case util.IsError(err, util.ErrUnknownAccount):
		return "unknown_account"
	default:
		return "error"
	}
}

// NopMetrics discards all telemetry.
type NopMetrics struct{}

func (NopMetrics) RecordCommand(string, string, time.Duration) {}
func (NopMetrics) RecordTransfer(decimal.Decimal)              {}
func (NopMetrics) RecordLoan(decimal.Decimal)                  {}
func (NopMetrics) SetAccountsOpen(int)                         {}
