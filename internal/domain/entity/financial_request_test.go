package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/arena-wallet/mocks/port/core"
)

func pendingRequest(kind RequestKind, amount int64) *FinancialRequest {
	return &FinancialRequest{
		ID:            kind.IDPrefix() + "_01",
		RequesterID:   "user-1",
		Kind:          kind,
		Amount:        amount,
		Status:        StatusPending,
		PaymentMethod: PaymentBkash,
		AccountNumber: "01700000000",
		Version:       1,
	}
}

func TestRequestKind(t *testing.T) {
	t.Run("ID prefixes", func(t *testing.T) {
		assert.Equal(t, "topup", KindTopUp.IDPrefix())
		assert.Equal(t, "wdr", KindWithdrawal.IDPrefix())
		assert.Equal(t, "prize", KindPrizeClaim.IDPrefix())
	})

	t.Run("Approved status per kind", func(t *testing.T) {
		assert.Equal(t, StatusApproved, KindTopUp.ApprovedStatus())
		assert.Equal(t, StatusApproved, KindPrizeClaim.ApprovedStatus())
		assert.Equal(t, StatusCompleted, KindWithdrawal.ApprovedStatus())
	})

	t.Run("Parse", func(t *testing.T) {
		kind, err := ParseRequestKind("withdrawal")
		require.NoError(t, err)
		assert.Equal(t, KindWithdrawal, kind)

		_, err = ParseRequestKind("refund")
		assert.ErrorIs(t, err, errs.ErrInvalidKind)
	})
}

func TestNormalizeStatusFilter(t *testing.T) {
	testCases := []struct {
		kind     RequestKind
		input    string
		expected RequestStatus
	}{
		{KindTopUp, "", ""},
		{KindTopUp, "all", ""},
		{KindTopUp, "pending", StatusPending},
		{KindTopUp, "approved", StatusApproved},
		{KindWithdrawal, "approved", StatusCompleted},
		{KindWithdrawal, "completed", StatusCompleted},
		{KindPrizeClaim, "REJECTED", StatusRejected},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind)+"/"+tc.input, func(t *testing.T) {
			status, err := NormalizeStatusFilter(tc.kind, tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		})
	}

	_, err := NormalizeStatusFilter(KindTopUp, "paid")
	assert.ErrorIs(t, err, errs.ErrInvalidStatus)
}

func TestFinancialRequest_Approve(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Top-up approval applies overrides", func(t *testing.T) {
		req := pendingRequest(KindTopUp, 10000)
		amount := int64(12000)
		account := "01800000000"
		method := PaymentNagad

		err := req.Approve("admin-1", ApprovalOverrides{Amount: &amount, AccountNumber: &account, PaymentMethod: &method}, 1, "ok", mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusApproved, req.Status)
		assert.Equal(t, int64(12000), req.Amount)
		assert.Equal(t, "01800000000", req.AccountNumber)
		assert.Equal(t, PaymentNagad, req.PaymentMethod)
		assert.Equal(t, "admin-1", req.ProcessedBy)
		assert.Equal(t, fixedTime, *req.ProcessedAt)
		assert.Equal(t, int64(2), req.Version)
		assert.Equal(t, "ok", req.Notes)
	})

	t.Run("Withdrawal completes as submitted", func(t *testing.T) {
		req := pendingRequest(KindWithdrawal, 50000)

		require.NoError(t, req.Approve("admin-1", ApprovalOverrides{}, 1, "", mockTime))
		assert.Equal(t, StatusCompleted, req.Status)
		assert.Equal(t, BadgeFor(KindWithdrawal, StatusCompleted), req.Badge())
	})

	t.Run("Withdrawal rejects overrides", func(t *testing.T) {
		req := pendingRequest(KindWithdrawal, 50000)
		amount := int64(1)

		err := req.Approve("admin-1", ApprovalOverrides{Amount: &amount}, 1, "", mockTime)

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, StatusPending, req.Status)
		assert.Equal(t, int64(1), req.Version)
	})

	t.Run("Override amount below the minimum", func(t *testing.T) {
		req := pendingRequest(KindTopUp, 10000)
		amount := int64(1)

		err := req.Approve("admin-1", ApprovalOverrides{Amount: &amount}, 10000, "", mockTime)

		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []errs.FieldError{{Field: "amount", Reason: "minimum is 100.00"}}, verr.Fields)
		assert.Equal(t, StatusPending, req.Status)
		assert.Equal(t, int64(10000), req.Amount)
	})

	t.Run("Non-positive override amount", func(t *testing.T) {
		req := pendingRequest(KindTopUp, 10000)
		amount := int64(0)

		err := req.Approve("admin-1", ApprovalOverrides{Amount: &amount}, 1, "", mockTime)

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, int64(10000), req.Amount)
	})

	t.Run("Terminal request cannot be approved again", func(t *testing.T) {
		req := pendingRequest(KindTopUp, 10000)
		require.NoError(t, req.Approve("admin-1", ApprovalOverrides{}, 1, "", mockTime))
		snapshot := *req

		err := req.Approve("admin-2", ApprovalOverrides{}, 1, "", mockTime)

		assert.ErrorIs(t, err, errs.ErrAlreadyProcessed)
		var te *errs.TransitionError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, "approved", te.From)
		assert.Equal(t, snapshot, *req)
	})
}

func TestFinancialRequest_Reject(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Prize claim rejected with notes", func(t *testing.T) {
		req := pendingRequest(KindPrizeClaim, 20000)

		require.NoError(t, req.Reject("admin-1", "insufficient proof", mockTime))
		assert.Equal(t, StatusRejected, req.Status)
		assert.Equal(t, "insufficient proof", req.Notes)
		assert.Equal(t, BadgeDanger, req.Badge().Category)
	})

	t.Run("Notes are mandatory", func(t *testing.T) {
		req := pendingRequest(KindTopUp, 10000)

		err := req.Reject("admin-1", "   ", mockTime)

		var verr *errs.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "notes", verr.Fields[0].Field)
		assert.Equal(t, StatusPending, req.Status)
	})

	t.Run("Approve then reject fails and keeps state", func(t *testing.T) {
		req := pendingRequest(KindWithdrawal, 50000)
		require.NoError(t, req.Approve("admin-1", ApprovalOverrides{}, 1, "", mockTime))

		err := req.Reject("admin-1", "changed my mind", mockTime)

		assert.ErrorIs(t, err, errs.ErrAlreadyProcessed)
		assert.Equal(t, StatusCompleted, req.Status)
		assert.Equal(t, int64(2), req.Version)
	})
}

func TestFinancialRequest_CheckVersion(t *testing.T) {
	req := pendingRequest(KindTopUp, 100)
	req.Version = 3

	assert.NoError(t, req.CheckVersion(0))
	assert.NoError(t, req.CheckVersion(3))
	assert.ErrorIs(t, req.CheckVersion(2), errs.ErrVersionConflict)
}

func TestFinancialRequest_BalanceEffects(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Withdrawal reserves at submission and refunds on reject", func(t *testing.T) {
		req := pendingRequest(KindWithdrawal, 50000)
		assert.Equal(t, BalanceEffect{Type: LedgerWithdrawal, Amount: -50000}, req.SubmissionEffect())

		require.NoError(t, req.Reject("admin-1", "wrong number", mockTime))
		assert.Equal(t, BalanceEffect{Type: LedgerRefund, Amount: 50000}, req.SettlementEffect())
	})

	t.Run("Completed withdrawal moves no money", func(t *testing.T) {
		req := pendingRequest(KindWithdrawal, 50000)
		require.NoError(t, req.Approve("admin-1", ApprovalOverrides{}, 1, "", mockTime))
		assert.True(t, req.SettlementEffect().None())
	})

	t.Run("Approved top-up and prize credit", func(t *testing.T) {
		topUp := pendingRequest(KindTopUp, 10000)
		assert.True(t, topUp.SubmissionEffect().None())
		require.NoError(t, topUp.Approve("admin-1", ApprovalOverrides{}, 1, "", mockTime))
		assert.Equal(t, BalanceEffect{Type: LedgerTopUp, Amount: 10000}, topUp.SettlementEffect())

		prize := pendingRequest(KindPrizeClaim, 20000)
		require.NoError(t, prize.Approve("admin-1", ApprovalOverrides{}, 1, "", mockTime))
		assert.Equal(t, BalanceEffect{Type: LedgerPrize, Amount: 20000}, prize.SettlementEffect())
	})

	t.Run("Rejected top-up moves no money", func(t *testing.T) {
		req := pendingRequest(KindTopUp, 10000)
		require.NoError(t, req.Reject("admin-1", "fake slip", mockTime))
		assert.True(t, req.SettlementEffect().None())
	})
}

func TestNewDistributedPrize(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	tournament := &Tournament{ID: "trn_1", TournamentCode: "FF-01"}
	winner := &Account{UserID: "user-9", Name: "Rafi"}
	kills := 7

	prize := NewDistributedPrize("prize_1", tournament, winner, Principal{UserID: "admin-1", Role: RoleAdmin},
		30000, PrizeKill, &kills, nil, "top fragger", mockTime)

	assert.Equal(t, StatusApproved, prize.Status)
	assert.Equal(t, "user-9", prize.RequesterID)
	assert.Equal(t, NotApplicable, prize.PlayerName)
	assert.Equal(t, NotApplicable, prize.AccountNumber)
	assert.Equal(t, "admin-1", prize.ProcessedBy)
	assert.Equal(t, "FF-01", prize.TournamentCode)
	assert.Empty(t, prize.ProofImage)
	assert.Equal(t, BalanceEffect{Type: LedgerPrize, Amount: 30000}, prize.SettlementEffect())
}
