// internal/api/handler/bank_test.go
package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bankist/internal/domain"
	"bankist/internal/util"
)

// MockBankService is a mock implementation of service.BankService.
type MockBankService struct {
	mock.Mock
}

func (m *MockBankService) Login(ctx context.Context, username string, pin int) (*domain.Account, error) {
	args := m.Called(ctx, username, pin)
	acc, _ := args.Get(0).(*domain.Account)
	return acc, args.Error(1)
}

func (m *MockBankService) Logout(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockBankService) Transfer(ctx context.Context, amount decimal.Decimal, toUsername string) (*domain.Account, error) {
	args := m.Called(ctx, amount, toUsername)
	acc, _ := args.Get(0).(*domain.Account)
	return acc, args.Error(1)
}

func (m *MockBankService) RequestLoan(ctx context.Context, amount decimal.Decimal) (*domain.Account, error) {
	args := m.Called(ctx, amount)
	acc, _ := args.Get(0).(*domain.Account)
	return acc, args.Error(1)
}

func (m *MockBankService) CloseAccount(ctx context.Context, username string, pin int) error {
	return m.Called(ctx, username, pin).Error(0)
}

func (m *MockBankService) ToggleSort(ctx context.Context) (*domain.Account, []domain.Movement, bool, error) {
	args := m.Called(ctx)
	acc, _ := args.Get(0).(*domain.Account)
	movs, _ := args.Get(1).([]domain.Movement)
	return acc, movs, args.Bool(2), args.Error(3)
}

func (m *MockBankService) Current(ctx context.Context) (*domain.Account, []domain.Movement, bool, error) {
	args := m.Called(ctx)
	acc, _ := args.Get(0).(*domain.Account)
	movs, _ := args.Get(1).([]domain.Movement)
	return acc, movs, args.Bool(2), args.Error(3)
}

func post(h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestRespondWithError_StatusMapping(t *testing.T) {
	h := NewBankHandler(new(MockBankService), util.DiscardLogger())

	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{util.ErrInvalidInput, http.StatusBadRequest, "invalid input provided"},
		{util.ErrNoSession, http.StatusUnauthorized, "no active session"},
		{util.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{util.ErrInsufficientFunds, http.StatusPaymentRequired, util.ErrInsufficientFunds.Error()},
		{util.ErrSelfTransfer, http.StatusUnprocessableEntity, util.ErrSelfTransfer.Error()},
		{util.ErrReceiverNotFound, http.StatusUnprocessableEntity, util.ErrReceiverNotFound.Error()},
		{util.ErrNoQualifyingMove, http.StatusUnprocessableEntity, util.ErrNoQualifyingMove.Error()},
		{errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		h.respondWithError(rec, tc.err)
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
		assert.JSONEq(t, `{"error":"`+tc.msg+`"}`, rec.Body.String())
	}
}

func TestLogin_HidesUnknownAccount(t *testing.T) {
	svc := new(MockBankService)
	svc.On("Login", mock.Anything, "zz", 1111).
		Return(nil, errors.Join(util.ErrInvalidCredentials, util.ErrUnknownAccount)).Once()
	h := NewBankHandler(svc, util.DiscardLogger())

	rec := post(h.Login, "/login", `{"username":"zz","pin":1111}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid credentials"}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestTransfer_ValidationStopsBeforeService(t *testing.T) {
	svc := new(MockBankService)
	h := NewBankHandler(svc, util.DiscardLogger())

	rec := post(h.Transfer, "/transfers", `{"to":"jd"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "amount failed on required")

	rec = post(h.Transfer, "/transfers", `{"amount":10}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "to failed on required")

	svc.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransfer_RendersSender(t *testing.T) {
	acc := domain.NewAccount("Sarah Smith", 4444, decimal.NewFromInt(1), domain.MovementsFromInts(430, -30))
	svc := new(MockBankService)
	svc.On("Transfer", mock.Anything, decimal.RequireFromString("30.5"), "js").Return(acc, nil).Once()
	h := NewBankHandler(svc, util.DiscardLogger())

	rec := post(h.Transfer, "/transfers", `{"amount":"30.5","to":"js"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"username":"ss"`)
	assert.Contains(t, rec.Body.String(), `"balance":"400"`)
	assert.Contains(t, rec.Body.String(), `"sorted":false`)
	svc.AssertExpectations(t)
	svc.AssertNotCalled(t, "Current", mock.Anything)
}

func TestLogout(t *testing.T) {
	svc := new(MockBankService)
	svc.On("Logout", mock.Anything).Return().Once()
	h := NewBankHandler(svc, util.DiscardLogger())

	rec := post(h.Logout, "/logout", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertExpectations(t)
}

func TestLogin_QuotedPinIsInvalidInput(t *testing.T) {
	svc := new(MockBankService)
	h := NewBankHandler(svc, util.DiscardLogger())

	rec := post(h.Login, "/login", `{"username":"js","pin":"1111"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "malformed JSON body")
	svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}
