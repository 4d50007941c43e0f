// internal/util/errors.go
package util

import (
	"errors"
	"fmt"
)

// Command failure kinds. Every failed command returns an error that matches
// exactly one of these via errors.Is (ErrUnknownAccount may match as well).
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTransfer    = errors.New("invalid transfer")
	ErrLoanRejected       = errors.New("loan rejected")
	ErrUnknownAccount     = errors.New("unknown account")
	ErrNoSession          = errors.New("no active session")
	ErrInvalidInput       = errors.New("invalid input provided")
)

// Reasons behind a failed transfer or loan. Each wraps its kind.
var (
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrReceiverNotFound  = fmt.Errorf("%w: %w", ErrInvalidTransfer, ErrUnknownAccount)
	ErrInsufficientFunds = fmt.Errorf("%w: insufficient funds", ErrInvalidTransfer)
	ErrSelfTransfer      = fmt.Errorf("%w: cannot transfer to the same account", ErrInvalidTransfer)
	ErrNoQualifyingMove  = fmt.Errorf("%w: no prior movement of at least 10%% of the amount", ErrLoanRejected)
)

// IsError reports whether err matches target anywhere in its chain.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
