package request

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
)

func TestService_ListAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults to pending", func(t *testing.T) {
		f := newFixture(t)
		items := []*entity.FinancialRequest{storedRequest(entity.KindTopUp, 100)}
		f.requests.EXPECT().List(ctx,
			entity.RequestFilter{Kind: entity.KindTopUp, Status: entity.StatusPending},
			entity.PageQuery{Page: 1, Limit: 10},
		).Return(items, int64(23), nil).Once()

		page, err := f.service.ListAdmin(ctx, admin, entity.KindTopUp, usecase.ListQuery{})

		require.NoError(t, err)
		assert.Equal(t, items, page.Items)
		assert.Equal(t, entity.PageInfo{Page: 1, Pages: 3, Total: 23, Limit: 10}, page.Info)
	})

	t.Run("All lifts the status filter and approved maps to completed for withdrawals", func(t *testing.T) {
		f := newFixture(t)
		f.requests.EXPECT().List(ctx,
			entity.RequestFilter{Kind: entity.KindTopUp, Search: "nadia"},
			entity.PageQuery{Page: 2, Limit: 5},
		).Return(nil, int64(0), nil).Once()
		f.requests.EXPECT().List(ctx,
			entity.RequestFilter{Kind: entity.KindWithdrawal, Status: entity.StatusCompleted},
			entity.PageQuery{Page: 1, Limit: 10},
		).Return(nil, int64(0), nil).Once()

		_, err := f.service.ListAdmin(ctx, admin, entity.KindTopUp, usecase.ListQuery{Page: 2, Limit: 5, Status: "all", Search: " nadia "})
		require.NoError(t, err)

		_, err = f.service.ListAdmin(ctx, admin, entity.KindWithdrawal, usecase.ListQuery{Status: "approved"})
		require.NoError(t, err)
	})

	t.Run("Players are forbidden", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.ListAdmin(ctx, player, entity.KindTopUp, usecase.ListQuery{})

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("Unknown status", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.ListAdmin(ctx, admin, entity.KindTopUp, usecase.ListQuery{Status: "paid"})

		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
	})
}

func TestService_ListOwn(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.requests.EXPECT().List(ctx,
		entity.RequestFilter{Kind: entity.KindPrizeClaim, RequesterID: "user-1"},
		entity.PageQuery{Page: 1, Limit: 100},
	).Return(nil, int64(250), nil).Once()

	page, err := f.service.ListOwn(ctx, player, entity.KindPrizeClaim, usecase.ListQuery{Limit: 1000})

	require.NoError(t, err)
	assert.Equal(t, 3, page.Info.Pages)
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	stored := storedRequest(entity.KindTopUp, 100)

	t.Run("Owner and admin can read", func(t *testing.T) {
		f := newFixture(t)
		f.requests.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil).Twice()

		req, err := f.service.Get(ctx, player, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, stored, req)

		_, err = f.service.Get(ctx, admin, stored.ID)
		require.NoError(t, err)
	})

	t.Run("Other players see not found", func(t *testing.T) {
		f := newFixture(t)
		f.requests.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil).Once()

		_, err := f.service.Get(ctx, entity.Principal{UserID: "user-2"}, stored.ID)

		assert.ErrorIs(t, err, errs.ErrRequestNotFound)
	})
}

func TestService_OpenProof(t *testing.T) {
	ctx := context.Background()
	stored := storedRequest(entity.KindTopUp, 100)
	stored.ProofImage = "/uploads/slip.png"
	file := &persistence.ProofFile{Name: "slip.png"}

	t.Run("Owner and admin can open", func(t *testing.T) {
		f := newFixture(t)
		f.requests.EXPECT().FindByProof(ctx, stored.ProofImage).Return(stored, nil).Twice()
		f.storage.EXPECT().Open(ctx, stored.ProofImage).Return(file, nil).Twice()

		got, err := f.service.OpenProof(ctx, player, stored.ProofImage)
		require.NoError(t, err)
		assert.Same(t, file, got)

		_, err = f.service.OpenProof(ctx, admin, stored.ProofImage)
		require.NoError(t, err)
	})

	t.Run("Other players see not found", func(t *testing.T) {
		f := newFixture(t)
		f.requests.EXPECT().FindByProof(ctx, stored.ProofImage).Return(stored, nil).Once()

		_, err := f.service.OpenProof(ctx, entity.Principal{UserID: "user-2"}, stored.ProofImage)

		assert.ErrorIs(t, err, errs.ErrRequestNotFound)
		f.storage.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
	})

	t.Run("Unreferenced image", func(t *testing.T) {
		f := newFixture(t)
		f.requests.EXPECT().FindByProof(ctx, "/uploads/orphan.png").Return(nil, errs.ErrRequestNotFound).Once()

		_, err := f.service.OpenProof(ctx, admin, "/uploads/orphan.png")

		assert.ErrorIs(t, err, errs.ErrRequestNotFound)
	})
}
