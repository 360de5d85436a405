package database_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/request"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/id"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/messaging"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/metrics"
)

func setup(t *testing.T) (*database.TestDBManager, *database.UnitOfWork) {
	t.Helper()

	tdb := database.NewTestDBManager(t, logger.NewNoopLogger())
	tdb.Connect(t)
	tdb.SetupTestDB(t)
	return tdb, tdb.Manager.CreateUnitOfWork()
}

func pendingTopUp(tdb *database.TestDBManager, ids *id.ULIDGenerator, userID, ref string) *entity.FinancialRequest {
	now := tdb.TimeProvider.Now()
	return &entity.FinancialRequest{
		ID:             ids.NewID("topup"),
		RequesterID:    userID,
		RequesterName:  "Test " + userID,
		Kind:           entity.KindTopUp,
		Amount:         50000,
		Status:         entity.StatusPending,
		PaymentMethod:  entity.PaymentBkash,
		AccountNumber:  "01711111111",
		TransactionRef: ref,
		ProofImage:     "/uploads/slip.png",
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestFinancialRequestRepository_Integration(t *testing.T) {
	tdb, uow := setup(t)
	ctx := context.Background()
	ids := id.NewULIDGenerator()
	tdb.CreateTestAccount(t, "user-1", 0)

	repo := uow.GetRequestRepository(ctx)

	first := pendingTopUp(tdb, ids, "user-1", "TRX-1")
	require.NoError(t, repo.Create(ctx, first))

	t.Run("duplicate live reference is refused", func(t *testing.T) {
		err := repo.Create(ctx, pendingTopUp(tdb, ids, "user-1", "TRX-1"))
		assert.ErrorIs(t, err, errs.ErrDuplicateReference)

		inUse, err := repo.ReferenceInUse(ctx, entity.PaymentBkash, "TRX-1")
		require.NoError(t, err)
		assert.True(t, inUse)
	})

	t.Run("search matches reference case-insensitively", func(t *testing.T) {
		found, total, err := repo.List(ctx, entity.RequestFilter{Kind: entity.KindTopUp, Search: "trx"}, entity.NewPageQuery(1, 10))
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, found, 1)
		assert.Equal(t, first.ID, found[0].ID)
	})

	t.Run("stale version is refused", func(t *testing.T) {
		stale, err := repo.GetByID(ctx, first.ID)
		require.NoError(t, err)

		current := *stale
		current.Notes = "checked"
		current.Version++
		require.NoError(t, repo.Update(ctx, &current))

		stale.Status = entity.StatusApproved
		stale.Version++
		assert.ErrorIs(t, repo.Update(ctx, stale), errs.ErrVersionConflict)

		stored, err := repo.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, stored.Status)
		assert.EqualValues(t, 2, stored.Version)
	})

	t.Run("rejected top-up frees its reference", func(t *testing.T) {
		second := pendingTopUp(tdb, ids, "user-1", "TRX-2")
		require.NoError(t, repo.Create(ctx, second))
		second.Status = entity.StatusRejected
		second.Version++
		require.NoError(t, repo.Update(ctx, second))

		assert.NoError(t, repo.Create(ctx, pendingTopUp(tdb, ids, "user-1", "TRX-2")))
	})
}

func TestUnitOfWork_Integration(t *testing.T) {
	tdb, uow := setup(t)
	ctx := context.Background()
	tdb.CreateTestAccount(t, "user-1", 10000)

	t.Run("rollback discards balance change", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)

		account, err := uow.GetAccountRepository(txCtx).GetForUpdate(txCtx, "user-1")
		require.NoError(t, err)
		account.RestoreBalance(0)
		require.NoError(t, uow.GetAccountRepository(txCtx).Update(txCtx, account))
		require.NoError(t, uow.Rollback(txCtx))

		stored, err := uow.GetAccountRepository(ctx).Get(ctx, "user-1")
		require.NoError(t, err)
		assert.EqualValues(t, 10000, stored.Balance())
	})

	t.Run("negative balance violates the check constraint", func(t *testing.T) {
		account, err := uow.GetAccountRepository(ctx).Get(ctx, "user-1")
		require.NoError(t, err)
		account.RestoreBalance(-1)
		assert.ErrorIs(t, uow.GetAccountRepository(ctx).Update(ctx, account), errs.ErrConstraintViolation)
	})

	t.Run("profile sync keeps a balance committed after the read", func(t *testing.T) {
		stale, err := uow.GetAccountRepository(ctx).Get(ctx, "user-1")
		require.NoError(t, err)

		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		locked, err := uow.GetAccountRepository(txCtx).GetForUpdate(txCtx, "user-1")
		require.NoError(t, err)
		locked.RestoreBalance(110000)
		locked.ReferredBy = "user-9"
		require.NoError(t, uow.GetAccountRepository(txCtx).Update(txCtx, locked))
		require.NoError(t, uow.Commit(txCtx))

		stale.Name = "Renamed"
		stale.RestoreBalance(0)
		stale.ReferredBy = ""
		require.NoError(t, uow.GetAccountRepository(ctx).UpdateProfile(ctx, stale))

		stored, err := uow.GetAccountRepository(ctx).Get(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", stored.Name)
		assert.EqualValues(t, 110000, stored.Balance())
		assert.Equal(t, "user-9", stored.ReferredBy)
	})

	t.Run("missing account", func(t *testing.T) {
		_, err := uow.GetAccountRepository(ctx).Get(ctx, "ghost")
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("commit without transaction", func(t *testing.T) {
		assert.ErrorIs(t, uow.Commit(ctx), database.ErrNoTransaction)
	})
}

func TestTournamentAndReferral_Integration(t *testing.T) {
	tdb, uow := setup(t)
	ctx := context.Background()
	ids := id.NewULIDGenerator()
	tdb.CreateTestAccount(t, "user-1", 0)
	tdb.CreateTestAccount(t, "user-2", 0)
	now := tdb.TimeProvider.Now()

	tournaments := uow.GetTournamentRepository(ctx)
	tournament := &entity.Tournament{
		ID:             ids.NewID("trn"),
		Slug:           "friday-night-squad",
		Title:          "Friday Night Squad",
		Game:           "PUBG",
		TournamentCode: "FNS-1",
		EntryFee:       2000,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, tournaments.Create(ctx, tournament))

	registration := &entity.Registration{
		ID:           ids.NewID("reg"),
		TournamentID: tournament.ID,
		UserID:       "user-1",
		PlayerName:   "Player",
		PlayerID:     "5123",
		EntryFee:     2000,
		CreatedAt:    now,
	}
	require.NoError(t, tournaments.CreateRegistration(ctx, registration))

	registration.ID = ids.NewID("reg")
	assert.ErrorIs(t, tournaments.CreateRegistration(ctx, registration), errs.ErrAlreadyRegistered)

	tournament.Complete(tdb.TimeProvider)
	require.NoError(t, tournaments.Update(ctx, tournament))

	completed, err := tournaments.ListCompletedForUser(ctx, "user-1", now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "FNS-1", completed[0].TournamentCode)

	roster, err := tournaments.ListTournamentRegistrations(ctx, tournament.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "Test user-1", roster[0].UserName)
	assert.Equal(t, "Player", roster[0].PlayerName)

	historical, err := tournaments.ListHistorical(ctx, 5)
	require.NoError(t, err)
	require.Len(t, historical, 1)
	assert.Equal(t, tournament.ID, historical[0].ID)

	counts, err := tournaments.CountRegistrationsByTournament(ctx, []string{tournament.ID, "trn_none"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{tournament.ID: 1}, counts)

	inactive := false
	_, total, err := tournaments.List(ctx, entity.TournamentFilter{IsActive: &inactive}, entity.NewPageQuery(1, 10))
	require.NoError(t, err)
	assert.Zero(t, total)

	referrals := uow.GetReferralRepository(ctx)
	referral := &entity.Referral{ID: ids.NewID("ref"), ReferrerID: "user-2", RefereeID: "user-1", Bonus: 2000, CreatedAt: now}
	require.NoError(t, referrals.Create(ctx, referral))

	referral.ID = ids.NewID("ref")
	assert.ErrorIs(t, referrals.Create(ctx, referral), errs.ErrAlreadyReferred)
}

func TestProcess_ConcurrentDecisions_Integration(t *testing.T) {
	tdb, uow := setup(t)
	ctx := context.Background()
	ids := id.NewULIDGenerator()
	tdb.CreateTestAccount(t, "user-1", 0)

	pending := pendingTopUp(tdb, ids, "user-1", "TRX-RACE")
	require.NoError(t, uow.GetRequestRepository(ctx).Create(ctx, pending))

	service := request.NewService(uow, nil, ids, tdb.TimeProvider, logger.NewNoopLogger(),
		messaging.NewNoopPublisher(), metrics.NoopRecorder{}, request.Policy{MinAmount: 100})
	ops := entity.Principal{UserID: "admin-1", Name: "Ops", Role: entity.RoleAdmin}

	commands := []usecase.ProcessCommand{
		{Action: usecase.ActionApprove, ExpectedVersion: 1},
		{Action: usecase.ActionReject, ExpectedVersion: 1, Notes: "duplicate slip"},
	}
	results := make([]error, len(commands))
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i, cmd := range commands {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, results[i] = service.Process(ctx, ops, entity.KindTopUp, pending.ID, cmd)
		}()
	}
	close(start)
	wg.Wait()

	winners, losers := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, errs.ErrAlreadyProcessed), errors.Is(err, errs.ErrVersionConflict):
			losers++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, losers)

	stored, err := uow.GetRequestRepository(ctx).GetByID(ctx, pending.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stored.Version)

	account, err := uow.GetAccountRepository(ctx).Get(ctx, "user-1")
	require.NoError(t, err)
	if stored.Status == entity.StatusApproved {
		assert.EqualValues(t, 50000, account.Balance())
	} else {
		assert.Equal(t, entity.StatusRejected, stored.Status)
		assert.EqualValues(t, 0, account.Balance())
	}
}

func seedRequests(t *testing.T, tdb *database.TestDBManager, uow *database.UnitOfWork, n int) []string {
	t.Helper()

	ctx := context.Background()
	ids := id.NewULIDGenerator()
	repo := uow.GetRequestRepository(ctx)
	now := tdb.TimeProvider.Now()

	seeded := make([]string, 0, n)
	for i := range n {
		req := pendingTopUp(tdb, ids, "user-1", fmt.Sprintf("TRX-%03d", i))
		// pairs share a timestamp so the id tie-break decides their order
		req.CreatedAt = now.Add(-time.Duration(i/2) * time.Minute)
		req.UpdatedAt = req.CreatedAt
		require.NoError(t, repo.Create(ctx, req))

		if i%3 == 0 {
			req.Status = entity.StatusApproved
			req.Version++
			require.NoError(t, repo.Update(ctx, req))
		}
		seeded = append(seeded, req.ID)
	}
	return seeded
}

func TestFinancialRequestRepository_Paging_Integration(t *testing.T) {
	tdb, uow := setup(t)
	ctx := context.Background()
	tdb.CreateTestAccount(t, "user-1", 0)

	const total = 23
	seeded := seedRequests(t, tdb, uow, total)
	repo := uow.GetRequestRepository(ctx)
	filter := entity.RequestFilter{Kind: entity.KindTopUp}

	t.Run("walking every page yields each request once", func(t *testing.T) {
		seen := make(map[string]int, total)
		pages := entity.NewPageInfo(entity.NewPageQuery(1, 10), total).Pages
		require.Equal(t, 3, pages)

		for page := 1; page <= pages; page++ {
			found, count, err := repo.List(ctx, filter, entity.NewPageQuery(page, 10))
			require.NoError(t, err)
			assert.EqualValues(t, total, count)
			for _, r := range found {
				seen[r.ID]++
			}
		}

		assert.Len(t, seen, total)
		for _, reqID := range seeded {
			assert.Equal(t, 1, seen[reqID], "request %s", reqID)
		}
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		found, count, err := repo.List(ctx, filter, entity.NewPageQuery(4, 10))
		require.NoError(t, err)
		assert.EqualValues(t, total, count)
		assert.Empty(t, found)
	})

	t.Run("repeating a filtered query returns the same page", func(t *testing.T) {
		query := entity.RequestFilter{Kind: entity.KindTopUp, Status: entity.StatusPending, Search: "trx-0"}
		page := entity.NewPageQuery(2, 5)

		first, firstTotal, err := repo.List(ctx, query, page)
		require.NoError(t, err)
		second, secondTotal, err := repo.List(ctx, query, page)
		require.NoError(t, err)

		assert.Equal(t, firstTotal, secondTotal)
		assert.EqualValues(t, 15, firstTotal)
		require.Len(t, second, len(first))
		for i := range first {
			assert.Equal(t, first[i].ID, second[i].ID)
			assert.Equal(t, entity.StatusPending, second[i].Status)
		}
	})
}
