package tournament

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
	mcore "github.com/amirhossein-jamali/arena-wallet/mocks/port/core"
	mpers "github.com/amirhossein-jamali/arena-wallet/mocks/port/persistence"
)

type txKey struct{}

var (
	fixedTime = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	txCtx     = context.WithValue(context.Background(), txKey{}, "tx")
	player    = entity.Principal{UserID: "user-1", Name: "Nadia", Role: entity.RoleUser}
	admin     = entity.Principal{UserID: "admin-1", Role: entity.RoleAdmin}
)

type fixture struct {
	uow         *mpers.MockUnitOfWork
	accounts    *mpers.MockAccountRepository
	ledger      *mpers.MockLedgerRepository
	tournaments *mpers.MockTournamentRepository
	events      *mcore.MockEventPublisher
	metrics     *mcore.MockMetricsRecorder
	service     *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:         mpers.NewMockUnitOfWork(t),
		accounts:    mpers.NewMockAccountRepository(t),
		ledger:      mpers.NewMockLedgerRepository(t),
		tournaments: mpers.NewMockTournamentRepository(t),
		events:      mcore.NewMockEventPublisher(t),
		metrics:     mcore.NewMockMetricsRecorder(t),
	}

	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	clock := mcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedTime).Maybe()
	ids := mcore.NewMockIDGenerator(t)
	ids.EXPECT().NewID(mock.Anything).RunAndReturn(func(prefix string) string { return prefix + "_01TEST" }).Maybe()

	f.uow.EXPECT().GetAccountRepository(mock.Anything).Return(f.accounts).Maybe()
	f.uow.EXPECT().GetLedgerRepository(mock.Anything).Return(f.ledger).Maybe()
	f.uow.EXPECT().GetTournamentRepository(mock.Anything).Return(f.tournaments).Maybe()

	f.service = NewService(f.uow, ids, clock, logger, f.events, f.metrics, Policy{})
	return f
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Slug skips taken candidates", func(t *testing.T) {
		f := newFixture(t)
		f.tournaments.EXPECT().SlugExists(ctx, "friday-night-squad").Return(true, nil).Once()
		f.tournaments.EXPECT().SlugExists(ctx, "friday-night-squad-2").Return(true, nil).Once()
		f.tournaments.EXPECT().SlugExists(ctx, "friday-night-squad-3").Return(false, nil).Once()
		f.tournaments.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()

		created, err := f.service.Create(ctx, admin, usecase.CreateTournamentCommand{
			Title:          "Friday Night Squad!",
			Game:           "Free Fire",
			TournamentCode: "FNS-1",
			EntryFee:       "20",
			WinningPrize:   "500.00",
			PerKillPrize:   "10",
			MaxPlayers:     48,
		})

		require.NoError(t, err)
		assert.Equal(t, "friday-night-squad-3", created.Slug)
		assert.Equal(t, "trn_01TEST", created.ID)
		assert.Equal(t, int64(2000), created.EntryFee)
		assert.Equal(t, int64(50000), created.WinningPrize)
		assert.True(t, created.IsActive)
	})

	t.Run("Invalid fees are reported together", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Create(ctx, admin, usecase.CreateTournamentCommand{
			Title:        "Cup",
			Game:         "Free Fire",
			EntryFee:     "abc",
			PerKillPrize: "1.234",
		})

		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 2)
	})

	t.Run("Players cannot create", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Create(ctx, player, usecase.CreateTournamentCommand{})

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	cmd := usecase.RegisterCommand{PlayerName: "NadiaFF", PlayerID: "5550123"}

	t.Run("Charges the entry fee", func(t *testing.T) {
		f := newFixture(t)
		trn := &entity.Tournament{ID: "trn_1", Title: "Cup", EntryFee: 2000, MaxPlayers: 2, IsActive: true}
		wallet := &entity.Account{UserID: "user-1"}
		wallet.RestoreBalance(5000)

		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.tournaments.EXPECT().GetForUpdate(txCtx, "trn_1").Return(trn, nil).Once()
		f.tournaments.EXPECT().IsRegistered(txCtx, "trn_1", "user-1").Return(false, nil).Once()
		f.tournaments.EXPECT().CountRegistrations(txCtx, "trn_1").Return(int64(1), nil).Once()
		f.accounts.EXPECT().GetForUpdate(txCtx, "user-1").Return(wallet, nil).Once()
		f.accounts.EXPECT().Update(txCtx, wallet).Return(nil).Once()
		f.ledger.EXPECT().Create(txCtx, mock.MatchedBy(func(e *entity.LedgerEntry) bool {
			return e.Type == entity.LedgerEntryFee && e.Amount == -2000 && e.Reference == "trn_1"
		})).Return(nil).Once()
		f.metrics.EXPECT().LedgerPosted("entry-fee", int64(-2000)).Once()
		f.tournaments.EXPECT().CreateRegistration(txCtx, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		f.events.EXPECT().Publish(ctx, mock.Anything).Return(nil).Once()

		reg, err := f.service.Register(ctx, player, "trn_1", cmd)

		require.NoError(t, err)
		assert.Equal(t, "reg_01TEST", reg.ID)
		assert.Equal(t, int64(2000), reg.EntryFee)
		assert.Equal(t, int64(3000), wallet.Balance())
	})

	t.Run("Full tournament", func(t *testing.T) {
		f := newFixture(t)
		trn := &entity.Tournament{ID: "trn_1", MaxPlayers: 2, IsActive: true}

		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.tournaments.EXPECT().GetForUpdate(txCtx, "trn_1").Return(trn, nil).Once()
		f.tournaments.EXPECT().IsRegistered(txCtx, "trn_1", "user-1").Return(false, nil).Once()
		f.tournaments.EXPECT().CountRegistrations(txCtx, "trn_1").Return(int64(2), nil).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := f.service.Register(ctx, player, "trn_1", cmd)

		assert.ErrorIs(t, err, errs.ErrTournamentFull)
	})

	t.Run("Already registered", func(t *testing.T) {
		f := newFixture(t)
		trn := &entity.Tournament{ID: "trn_1", IsActive: true}

		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.tournaments.EXPECT().GetForUpdate(txCtx, "trn_1").Return(trn, nil).Once()
		f.tournaments.EXPECT().IsRegistered(txCtx, "trn_1", "user-1").Return(true, nil).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := f.service.Register(ctx, player, "trn_1", cmd)

		assert.ErrorIs(t, err, errs.ErrAlreadyRegistered)
	})

	t.Run("Missing player identity", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Register(ctx, player, "trn_1", usecase.RegisterCommand{})

		assert.ErrorIs(t, err, errs.ErrValidation)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}

func TestService_Complete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	trn := &entity.Tournament{ID: "trn_1", IsActive: true}

	f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
	f.tournaments.EXPECT().GetForUpdate(txCtx, "trn_1").Return(trn, nil).Once()
	f.tournaments.EXPECT().Update(txCtx, trn).Return(nil).Once()
	f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

	completed, err := f.service.Complete(ctx, admin, "trn_1")

	require.NoError(t, err)
	assert.True(t, completed.IsCompleted)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, fixedTime, *completed.CompletedAt)
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	trn := &entity.Tournament{ID: "trn_1", Slug: "cup"}
	f.tournaments.EXPECT().GetByID(ctx, "cup").Return(nil, errs.ErrTournamentNotFound).Once()
	f.tournaments.EXPECT().GetBySlug(ctx, "cup").Return(trn, nil).Once()

	got, err := f.service.Get(ctx, " cup ")

	require.NoError(t, err)
	assert.Same(t, trn, got)
}

func TestService_RecentForPrize(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.tournaments.EXPECT().ListCompletedForUser(ctx, "user-1", fixedTime.Add(-7*24*time.Hour)).Return(nil, nil).Once()

	_, err := f.service.RecentForPrize(ctx, player)

	require.NoError(t, err)
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	edit := usecase.CreateTournamentCommand{
		Title:          "Saturday Squad",
		Game:           "Free Fire",
		TournamentCode: "SS-2",
		EntryFee:       "25",
		MaxPlayers:     40,
	}

	t.Run("Replaces fields and keeps the slug", func(t *testing.T) {
		f := newFixture(t)
		trn := &entity.Tournament{ID: "trn_1", Slug: "friday-night-squad", Title: "Friday Night Squad", IsActive: true}
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.tournaments.EXPECT().GetForUpdate(txCtx, "trn_1").Return(trn, nil).Once()
		f.tournaments.EXPECT().CountRegistrations(txCtx, "trn_1").Return(12, nil).Once()
		f.tournaments.EXPECT().Update(txCtx, trn).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		updated, err := f.service.Update(ctx, admin, "trn_1", edit)

		require.NoError(t, err)
		assert.Equal(t, "Saturday Squad", updated.Title)
		assert.Equal(t, "friday-night-squad", updated.Slug)
		assert.Equal(t, int64(2500), updated.EntryFee)
		assert.True(t, updated.IsActive)
		assert.Equal(t, fixedTime, updated.UpdatedAt)
		f.tournaments.AssertNotCalled(t, "SlugExists", mock.Anything, mock.Anything)
	})

	t.Run("Cap below the registered players", func(t *testing.T) {
		f := newFixture(t)
		trn := &entity.Tournament{ID: "trn_1", IsActive: true}
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.tournaments.EXPECT().GetForUpdate(txCtx, "trn_1").Return(trn, nil).Once()
		f.tournaments.EXPECT().CountRegistrations(txCtx, "trn_1").Return(41, nil).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := f.service.Update(ctx, admin, "trn_1", edit)

		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "maxPlayers", verr.Fields[0].Field)
		f.tournaments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Completed tournament is frozen", func(t *testing.T) {
		f := newFixture(t)
		trn := &entity.Tournament{ID: "trn_1", Title: "Friday Night Squad", IsCompleted: true}
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.tournaments.EXPECT().GetForUpdate(txCtx, "trn_1").Return(trn, nil).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := f.service.Update(ctx, admin, "trn_1", edit)

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, "Friday Night Squad", trn.Title)
	})

	t.Run("Players cannot edit", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Update(ctx, player, "trn_1", edit)

		assert.ErrorIs(t, err, errs.ErrForbidden)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}

func TestService_SetStatus(t *testing.T) {
	ctx := context.Background()
	yes, no := true, false

	t.Run("Deactivates", func(t *testing.T) {
		f := newFixture(t)
		trn := &entity.Tournament{ID: "trn_1", IsActive: true}
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.tournaments.EXPECT().GetForUpdate(txCtx, "trn_1").Return(trn, nil).Once()
		f.tournaments.EXPECT().Update(txCtx, trn).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		changed, err := f.service.SetStatus(ctx, admin, "trn_1", usecase.TournamentStatusCommand{IsActive: &no})

		require.NoError(t, err)
		assert.False(t, changed.IsActive)
		assert.False(t, changed.IsCompleted)
	})

	t.Run("Completes", func(t *testing.T) {
		f := newFixture(t)
		trn := &entity.Tournament{ID: "trn_1", IsActive: true}
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.tournaments.EXPECT().GetForUpdate(txCtx, "trn_1").Return(trn, nil).Once()
		f.tournaments.EXPECT().Update(txCtx, trn).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		changed, err := f.service.SetStatus(ctx, admin, "trn_1", usecase.TournamentStatusCommand{IsCompleted: &yes})

		require.NoError(t, err)
		assert.True(t, changed.IsCompleted)
		require.NotNil(t, changed.CompletedAt)
		assert.Equal(t, fixedTime, *changed.CompletedAt)
	})

	t.Run("Reopening is refused", func(t *testing.T) {
		f := newFixture(t)
		trn := &entity.Tournament{ID: "trn_1", IsCompleted: true}
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.tournaments.EXPECT().GetForUpdate(txCtx, "trn_1").Return(trn, nil).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := f.service.SetStatus(ctx, admin, "trn_1", usecase.TournamentStatusCommand{IsCompleted: &no})

		assert.ErrorIs(t, err, errs.ErrValidation)
		f.tournaments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Players cannot change status", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.SetStatus(ctx, player, "trn_1", usecase.TournamentStatusCommand{IsActive: &no})

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestService_Roster(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists registrations", func(t *testing.T) {
		f := newFixture(t)
		trn := &entity.Tournament{ID: "trn_1", MaxPlayers: 50}
		details := []entity.RegistrationDetail{
			{Registration: entity.Registration{ID: "reg_1", UserID: "user-1", PlayerName: "Nadia"}, UserName: "Nadia R"},
		}
		f.tournaments.EXPECT().GetByID(ctx, "trn_1").Return(trn, nil).Once()
		f.tournaments.EXPECT().ListTournamentRegistrations(ctx, "trn_1").Return(details, nil).Once()

		roster, err := f.service.Roster(ctx, admin, "trn_1")

		require.NoError(t, err)
		assert.Same(t, trn, roster.Tournament)
		assert.Equal(t, details, roster.Registrations)
	})

	t.Run("Unknown tournament", func(t *testing.T) {
		f := newFixture(t)
		f.tournaments.EXPECT().GetByID(ctx, "trn_x").Return(nil, errs.ErrTournamentNotFound).Once()

		_, err := f.service.Roster(ctx, admin, "trn_x")

		assert.ErrorIs(t, err, errs.ErrTournamentNotFound)
	})

	t.Run("Players cannot view", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Roster(ctx, player, "trn_1")

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	active := true
	filter := entity.TournamentFilter{IsActive: &active}
	f.tournaments.EXPECT().List(ctx, filter, entity.PageQuery{Page: 1, Limit: 6}).
		Return([]*entity.Tournament{{ID: "trn_1"}}, 1, nil).Once()

	page, err := f.service.List(ctx, usecase.TournamentQuery{IsActive: &active, Limit: 6})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Info.Total)
}

func TestService_Historical(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	older := &entity.Tournament{ID: "trn_1"}
	newer := &entity.Tournament{ID: "trn_2"}
	f.tournaments.EXPECT().ListHistorical(ctx, 10).Return([]*entity.Tournament{newer, older}, nil).Once()
	f.tournaments.EXPECT().CountRegistrationsByTournament(ctx, []string{"trn_2", "trn_1"}).
		Return(map[string]int64{"trn_2": 48}, nil).Once()

	results, err := f.service.Historical(ctx, 0)

	require.NoError(t, err)
	assert.Equal(t, []entity.TournamentResult{
		{Tournament: newer, PlayersRegistered: 48},
		{Tournament: older, PlayersRegistered: 0},
	}, results)
}
