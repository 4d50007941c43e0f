// internal/api/handler/bank.go
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"bankist/internal/api/types"
	"bankist/internal/domain"
	"bankist/internal/service"
	"bankist/internal/util" // For custom errors
)

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 15 * time.Second

// BankHandler handles HTTP requests for the bank commands.
type BankHandler struct {
	service   service.BankService
	validator *RequestValidator
	logger    *slog.Logger
}

// NewBankHandler creates a new BankHandler.
func NewBankHandler(svc service.BankService, logger *slog.Logger) *BankHandler {
	return &BankHandler{
		service:   svc,
		validator: NewRequestValidator(),
		logger:    logger,
	}
}

// Helper function to send JSON responses.
func (h *BankHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses.
func (h *BankHandler) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrNoSession):
		statusCode = http.StatusUnauthorized
		message = err.Error()
	case util.IsError(err, util.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		message = util.ErrInvalidCredentials.Error() // do not reveal which half was wrong
	case util.IsError(err, util.ErrInsufficientFunds):
		statusCode = http.StatusPaymentRequired
		message = err.Error()
	case util.IsError(err, util.ErrInvalidTransfer), util.IsError(err, util.ErrLoanRejected):
		statusCode = http.StatusUnprocessableEntity
		message = err.Error()
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, types.ErrorResponse{Error: message})
}

// decode reads a JSON body into req and validates it.
func (h *BankHandler) decode(r *http.Request, req any) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return fmt.Errorf("%w: malformed JSON body", util.ErrInvalidInput)
	}
	return h.validator.Validate(req)
}

// CredentialsRequest is the body of login and close.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	PIN      *int   `json:"pin" validate:"required"`
}

// TransferRequest represents the request body for transfer.
type TransferRequest struct {
	Amount *decimal.Decimal `json:"amount" validate:"required"`
	To     string           `json:"to" validate:"required,max=64"`
}

// LoanRequest represents the request body for a loan.
type LoanRequest struct {
	Amount *decimal.Decimal `json:"amount" validate:"required"`
}

// Login handles the login request.
// POST /login
func (h *BankHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := h.decode(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	acc, err := h.service.Login(r.Context(), req.Username, *req.PIN)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.renderChronological(w, acc)
}

// Logout ends the session.
// POST /logout
func (h *BankHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Transfer handles the transfer money request and renders the sender.
// POST /transfers
func (h *BankHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := h.decode(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	sender, err := h.service.Transfer(r.Context(), *req.Amount, req.To)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.renderChronological(w, sender)
}

// RequestLoan handles the loan request.
// POST /loans
func (h *BankHandler) RequestLoan(w http.ResponseWriter, r *http.Request) {
	var req LoanRequest
	if err := h.decode(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	acc, err := h.service.RequestLoan(r.Context(), *req.Amount)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.renderChronological(w, acc)
}

// CloseAccount handles the account closure request.
// POST /close
func (h *BankHandler) CloseAccount(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := h.decode(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	if err := h.service.CloseAccount(r.Context(), req.Username, *req.PIN); err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.CloseResponse{Closed: true})
}

// ToggleSort flips the movement ordering.
// POST /sort
func (h *BankHandler) ToggleSort(w http.ResponseWriter, r *http.Request) {
	acc, movements, sorted, err := h.service.ToggleSort(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewAccountView(acc, movements, sorted))
}

// GetAccount renders the current account in the order selected by the sort toggle.
// GET /account
func (h *BankHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	acc, movements, sorted, err := h.service.Current(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.NewAccountView(acc, movements, sorted))
}

// renderChronological redraws acc after a mutation. Only the sort command and
// the account read honour the sort toggle.
func (h *BankHandler) renderChronological(w http.ResponseWriter, acc *domain.Account) {
	h.respondWithJSON(w, http.StatusOK, types.NewAccountView(acc, domain.SortedView(acc.Movements, false), false))
}
