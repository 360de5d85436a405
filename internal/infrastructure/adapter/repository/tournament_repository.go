package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/model"
)

// TournamentRepository implements the TournamentRepository port using GORM
type TournamentRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTournamentRepository creates a new TournamentRepository instance
func NewTournamentRepository(db *gorm.DB, logger coreport.Logger) *TournamentRepository {
	return &TournamentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func tournamentToEntity(m *model.Tournament) *entity.Tournament {
	return &entity.Tournament{
		ID:             m.ID,
		Slug:           m.Slug,
		Title:          m.Title,
		Game:           m.Game,
		Device:         m.Device,
		Mood:           m.Mood,
		Type:           m.Type,
		GameVersion:    m.GameVersion,
		Map:            m.Map,
		MatchType:      m.MatchType,
		TournamentCode: m.TournamentCode,
		Description:    m.Description,
		Rules:          m.Rules,
		Logo:           m.Logo,
		CoverImage:     m.CoverImage,
		EntryFee:       m.EntryFee,
		WinningPrize:   m.WinningPrize,
		PerKillPrize:   m.PerKillPrize,
		MaxPlayers:     m.MaxPlayers,
		MatchSchedule:  m.MatchSchedule,
		IsActive:       m.IsActive,
		IsCompleted:    m.IsCompleted,
		CompletedAt:    m.CompletedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func tournamentToModel(t *entity.Tournament) *model.Tournament {
	return &model.Tournament{
		ID:             t.ID,
		Slug:           t.Slug,
		Title:          t.Title,
		Game:           t.Game,
		Device:         t.Device,
		Mood:           t.Mood,
		Type:           t.Type,
		GameVersion:    t.GameVersion,
		Map:            t.Map,
		MatchType:      t.MatchType,
		TournamentCode: t.TournamentCode,
		Description:    t.Description,
		Rules:          t.Rules,
		Logo:           t.Logo,
		CoverImage:     t.CoverImage,
		EntryFee:       t.EntryFee,
		WinningPrize:   t.WinningPrize,
		PerKillPrize:   t.PerKillPrize,
		MaxPlayers:     t.MaxPlayers,
		MatchSchedule:  t.MatchSchedule,
		IsActive:       t.IsActive,
		IsCompleted:    t.IsCompleted,
		CompletedAt:    t.CompletedAt,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (r *TournamentRepository) handleDatabaseError(operation string, err error, key string) error {
	logDatabaseError(r.logger, operation, err, map[string]any{"tournament": key})
	return mapError(r.errorClassifier, err, errs.ErrTournamentNotFound, nil)
}

func (r *TournamentRepository) first(ctx context.Context, operation, key string, query *gorm.DB) (*entity.Tournament, error) {
	var m model.Tournament
	if err := query.WithContext(ctx).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError(operation, err, key)
	}
	return tournamentToEntity(&m), nil
}

// Create stores a new tournament
func (r *TournamentRepository) Create(ctx context.Context, tournament *entity.Tournament) error {
	if err := r.db.WithContext(ctx).Create(tournamentToModel(tournament)).Error; err != nil {
		return r.handleDatabaseError("creating tournament", err, tournament.Slug)
	}
	return nil
}

// Update saves every tournament column
func (r *TournamentRepository) Update(ctx context.Context, tournament *entity.Tournament) error {
	result := r.db.WithContext(ctx).Save(tournamentToModel(tournament))
	if result.Error != nil {
		return r.handleDatabaseError("updating tournament", result.Error, tournament.ID)
	}
	return nil
}

// GetByID retrieves a tournament
func (r *TournamentRepository) GetByID(ctx context.Context, id string) (*entity.Tournament, error) {
	return r.first(ctx, "getting tournament", id, r.db.Where("id = ?", id))
}

// GetBySlug retrieves a tournament by its slug
func (r *TournamentRepository) GetBySlug(ctx context.Context, slug string) (*entity.Tournament, error) {
	return r.first(ctx, "getting tournament by slug", slug, r.db.Where("slug = ?", slug))
}

// GetForUpdate retrieves a tournament and locks its row
func (r *TournamentRepository) GetForUpdate(ctx context.Context, id string) (*entity.Tournament, error) {
	return r.first(ctx, "locking tournament", id,
		r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id))
}

// SlugExists reports whether the slug is taken
func (r *TournamentRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Tournament{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, r.handleDatabaseError("checking slug", err, slug)
	}
	return count > 0, nil
}

// List returns one page of tournaments, newest first
func (r *TournamentRepository) List(
	ctx context.Context,
	filter entity.TournamentFilter,
	page entity.PageQuery,
) ([]*entity.Tournament, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Tournament{})
	if filter.IsCompleted != nil {
		query = query.Where("is_completed = ?", *filter.IsCompleted)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, r.handleDatabaseError("counting tournaments", err, "")
	}
	if total == 0 {
		return []*entity.Tournament{}, 0, nil
	}

	var rows []model.Tournament
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, r.handleDatabaseError("listing tournaments", err, "")
	}
	return tournamentsToEntities(rows), total, nil
}

func tournamentsToEntities(rows []model.Tournament) []*entity.Tournament {
	tournaments := make([]*entity.Tournament, 0, len(rows))
	for i := range rows {
		tournaments = append(tournaments, tournamentToEntity(&rows[i]))
	}
	return tournaments
}

// CountRegistrations returns the number of players registered for a tournament
func (r *TournamentRepository) CountRegistrations(ctx context.Context, tournamentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Registration{}).
		Where("tournament_id = ?", tournamentID).
		Count(&count).Error
	if err != nil {
		return 0, r.handleDatabaseError("counting registrations", err, tournamentID)
	}
	return count, nil
}

// IsRegistered reports whether the user joined the tournament
func (r *TournamentRepository) IsRegistered(ctx context.Context, tournamentID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Registration{}).
		Where("tournament_id = ? AND user_id = ?", tournamentID, userID).
		Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking registration", err, tournamentID)
	}
	return count > 0, nil
}

// CreateRegistration stores a registration
func (r *TournamentRepository) CreateRegistration(ctx context.Context, registration *entity.Registration) error {
	m := &model.Registration{
		ID:           registration.ID,
		TournamentID: registration.TournamentID,
		UserID:       registration.UserID,
		PlayerName:   registration.PlayerName,
		PlayerID:     registration.PlayerID,
		EntryFee:     registration.EntryFee,
		CreatedAt:    registration.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		logDatabaseError(r.logger, "creating registration", err, map[string]any{
			"tournament": registration.TournamentID,
			"user_id":    registration.UserID,
		})
		return mapError(r.errorClassifier, err, errs.ErrTournamentNotFound, func(string) error {
			return errs.ErrAlreadyRegistered
		})
	}
	return nil
}

// ListRegistrations returns a user's registrations, newest first
func (r *TournamentRepository) ListRegistrations(ctx context.Context, userID string) ([]*entity.Registration, error) {
	var rows []model.Registration
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing registrations", err, userID)
	}

	registrations := make([]*entity.Registration, 0, len(rows))
	for i := range rows {
		registrations = append(registrations, registrationToEntity(&rows[i]))
	}
	return registrations, nil
}

func registrationToEntity(m *model.Registration) *entity.Registration {
	return &entity.Registration{
		ID:           m.ID,
		TournamentID: m.TournamentID,
		UserID:       m.UserID,
		PlayerName:   m.PlayerName,
		PlayerID:     m.PlayerID,
		EntryFee:     m.EntryFee,
		CreatedAt:    m.CreatedAt,
	}
}

type registrationRow struct {
	model.Registration
	UserName  string
	UserPhone string
}

// ListTournamentRegistrations returns everyone registered for a tournament, oldest first
func (r *TournamentRepository) ListTournamentRegistrations(
	ctx context.Context,
	tournamentID string,
) ([]entity.RegistrationDetail, error) {
	var rows []registrationRow
	err := r.db.WithContext(ctx).
		Table("tournament_registrations").
		Select("tournament_registrations.*, accounts.name AS user_name, accounts.phone AS user_phone").
		Joins("LEFT JOIN accounts ON accounts.user_id = tournament_registrations.user_id").
		Where("tournament_registrations.tournament_id = ?", tournamentID).
		Order("tournament_registrations.created_at ASC").
		Order("tournament_registrations.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing tournament registrations", err, tournamentID)
	}

	details := make([]entity.RegistrationDetail, 0, len(rows))
	for i := range rows {
		details = append(details, entity.RegistrationDetail{
			Registration: *registrationToEntity(&rows[i].Registration),
			UserName:     rows[i].UserName,
			UserPhone:    rows[i].UserPhone,
		})
	}
	return details, nil
}

// ListHistorical returns up to limit completed tournaments, most recently completed first
func (r *TournamentRepository) ListHistorical(ctx context.Context, limit int) ([]*entity.Tournament, error) {
	var rows []model.Tournament
	err := r.db.WithContext(ctx).
		Where("is_completed = ?", true).
		Order("completed_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing historical tournaments", err, "")
	}
	return tournamentsToEntities(rows), nil
}

// CountRegistrationsByTournament counts registrations for each id in one grouped query
func (r *TournamentRepository) CountRegistrationsByTournament(
	ctx context.Context,
	tournamentIDs []string,
) (map[string]int64, error) {
	counts := make(map[string]int64, len(tournamentIDs))
	if len(tournamentIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		TournamentID string
		Players      int64
	}
	err := r.db.WithContext(ctx).Model(&model.Registration{}).
		Select("tournament_id, COUNT(*) AS players").
		Where("tournament_id IN ?", tournamentIDs).
		Group("tournament_id").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("counting registrations by tournament", err, "")
	}
	for _, row := range rows {
		counts[row.TournamentID] = row.Players
	}
	return counts, nil
}

// ListCompletedForUser returns tournaments the user joined that completed at or after since
func (r *TournamentRepository) ListCompletedForUser(
	ctx context.Context,
	userID string,
	since time.Time,
) ([]*entity.Tournament, error) {
	var rows []model.Tournament
	err := r.db.WithContext(ctx).
		Joins("JOIN tournament_registrations ON tournament_registrations.tournament_id = tournaments.id").
		Where("tournament_registrations.user_id = ?", userID).
		Where("tournaments.is_completed = ? AND tournaments.completed_at >= ?", true, since).
		Order("tournaments.completed_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing completed tournaments", err, userID)
	}
	return tournamentsToEntities(rows), nil
}
