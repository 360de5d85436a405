package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
)

func TestFlexibleAmount(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "Number", body: `{"amount":150.5}`, want: "150.5"},
		{name: "Integer", body: `{"amount":20}`, want: "20"},
		{name: "String", body: `{"amount":" 99.99 "}`, want: "99.99"},
		{name: "Null", body: `{"amount":null}`, want: ""},
		{name: "Missing", body: `{}`, want: ""},
		{name: "Boolean", body: `{"amount":true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req WithdrawalRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Amount.String())
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domainerr.ErrUnauthorized, http.StatusUnauthorized},
		{domainerr.ErrForbidden, http.StatusForbidden},
		{domainerr.ErrRequestNotFound, http.StatusNotFound},
		{fmt.Errorf("lookup: %w", domainerr.ErrTournamentNotFound), http.StatusNotFound},
		{domainerr.NewVersionConflictError("topup_1", 1, 2), http.StatusConflict},
		{domainerr.ErrDuplicateReference, http.StatusConflict},
		{domainerr.ErrProofTooLarge, http.StatusRequestEntityTooLarge},
		{domainerr.ErrUnsupportedProof, http.StatusUnsupportedMediaType},
		{domainerr.ErrRateLimited, http.StatusTooManyRequests},
		{domainerr.ErrDatabaseConnection, http.StatusServiceUnavailable},
		{domainerr.ErrAmountBelowMinimum, http.StatusBadRequest},
		{domainerr.NewInsufficientBalanceError("user-1", "10.00", "5.00"), http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	t.Run("Validation errors carry their fields", func(t *testing.T) {
		verr := domainerr.NewValidationError("top-up")
		verr.Add("amount", "must be at least 50.00")

		resp := NewErrorResponse(verr)

		assert.Equal(t, domainerr.CodeValidation, resp.Code)
		assert.Equal(t, "Validation failed", resp.Message)
		assert.Len(t, resp.Fields, 1)
	})

	t.Run("Server errors hide their cause", func(t *testing.T) {
		resp := NewErrorResponse(errors.New("pq: password authentication failed"))

		assert.Equal(t, ErrorResponse{Code: domainerr.CodeInternalServer, Message: "Internal server error"}, resp)
	})

	t.Run("Client errors keep their message", func(t *testing.T) {
		resp := NewErrorResponse(domainerr.ErrSelfTransfer)

		assert.Equal(t, ErrorResponse{Code: domainerr.CodeValidation, Message: "cannot transfer to yourself"}, resp)
	})
}

func TestReviewRequest(t *testing.T) {
	t.Run("Status words map onto decisions", func(t *testing.T) {
		for status, want := range map[string]usecase.ProcessAction{
			"approved":  usecase.ActionApprove,
			"Completed": usecase.ActionApprove,
			"approve":   usecase.ActionApprove,
			"rejected":  usecase.ActionReject,
			" reject ":  usecase.ActionReject,
		} {
			got, err := ReviewRequest{Status: status}.ActionFromStatus()
			require.NoError(t, err, status)
			assert.Equal(t, want, got, status)
		}

		_, err := ReviewRequest{Status: "pending"}.ActionFromStatus()
		assert.ErrorIs(t, err, domainerr.ErrValidation)
	})

	t.Run("Overrides parse every supplied field", func(t *testing.T) {
		amount := FlexibleAmount("75.5")
		account := " 01999999999 "
		method := "bKash"

		got, err := ReviewRequest{Amount: &amount, AccountNumber: &account, PaymentMethod: &method}.Overrides()

		require.NoError(t, err)
		require.NotNil(t, got.Amount)
		assert.Equal(t, int64(7550), *got.Amount)
		assert.Equal(t, "01999999999", *got.AccountNumber)
		assert.Equal(t, entity.PaymentBkash, *got.PaymentMethod)
	})

	t.Run("Invalid overrides are reported together", func(t *testing.T) {
		amount := FlexibleAmount("-1")
		method := "paypal"

		_, err := ReviewRequest{Amount: &amount, PaymentMethod: &method}.Overrides()

		var verr *domainerr.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 2)
	})

	t.Run("No overrides is empty", func(t *testing.T) {
		got, err := ReviewRequest{}.Overrides()

		require.NoError(t, err)
		assert.True(t, got.IsEmpty())
	})
}

func TestNewRequestListResponse(t *testing.T) {
	page := &entity.Page[*entity.FinancialRequest]{Info: entity.NewPageInfo(entity.NewPageQuery(1, 10), 0)}

	for kind, key := range map[entity.RequestKind]string{
		entity.KindTopUp:      "topUps",
		entity.KindWithdrawal: "withdrawals",
		entity.KindPrizeClaim: "prizes",
	} {
		body, err := json.Marshal(NewRequestListResponse(kind, page))
		require.NoError(t, err)

		var decoded map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(body, &decoded))
		assert.Contains(t, decoded, key)
		assert.Contains(t, decoded, "pagination")
	}
}
