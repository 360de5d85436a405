package tournament

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosimple/slug"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
)

const maxSlugAttempts = 50

// Create adds a tournament to the catalog with a unique slug derived from its title
func (s *Service) Create(ctx context.Context, admin entity.Principal, cmd usecase.CreateTournamentCommand) (*entity.Tournament, error) {
	if !admin.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	now := s.timeProvider.Now()
	t := &entity.Tournament{
		ID:        s.ids.NewID("trn"),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyCommand(t, cmd); err != nil {
		return nil, err
	}

	repo := s.uow.GetTournamentRepository(ctx)
	uniqueSlug, err := s.uniqueSlug(ctx, t.Title, t.ID)
	if err != nil {
		return nil, err
	}
	t.Slug = uniqueSlug

	if err := repo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.logger.Info("Tournament created", map[string]any{
		"tournament_id": t.ID,
		"slug":          t.Slug,
		"admin_id":      admin.UserID,
	})
	return t, nil
}

// uniqueSlug appends -2, -3, ... until the slug is free; the id is the last resort
func (s *Service) uniqueSlug(ctx context.Context, title, id string) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "tournament"
	}

	repo := s.uow.GetTournamentRepository(ctx)
	candidate := base
	for i := 2; i <= maxSlugAttempts; i++ {
		exists, err := repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return base + "-" + strings.ToLower(id), nil
}

// applyCommand copies the editable fields onto t and validates the result.
// A nil IsActive keeps the current flag.
func applyCommand(t *entity.Tournament, cmd usecase.CreateTournamentCommand) error {
	verr := errs.NewValidationError("tournament")
	entryFee := parseFee(verr, "entryFee", cmd.EntryFee)
	winningPrize := parseFee(verr, "winningPrize", cmd.WinningPrize)
	perKillPrize := parseFee(verr, "perKillPrize", cmd.PerKillPrize)
	if err := verr.OrNil(); err != nil {
		return err
	}

	t.Title = strings.TrimSpace(cmd.Title)
	t.Game = strings.TrimSpace(cmd.Game)
	t.Device = strings.TrimSpace(cmd.Device)
	t.Mood = strings.TrimSpace(cmd.Mood)
	t.Type = strings.TrimSpace(cmd.Type)
	t.GameVersion = strings.TrimSpace(cmd.GameVersion)
	t.Map = strings.TrimSpace(cmd.Map)
	t.MatchType = strings.TrimSpace(cmd.MatchType)
	t.TournamentCode = strings.TrimSpace(cmd.TournamentCode)
	t.Description = cmd.Description
	t.Rules = cmd.Rules
	t.Logo = cmd.Logo
	t.CoverImage = cmd.CoverImage
	t.EntryFee = entryFee
	t.WinningPrize = winningPrize
	t.PerKillPrize = perKillPrize
	t.MaxPlayers = cmd.MaxPlayers
	t.MatchSchedule = cmd.MatchSchedule
	if cmd.IsActive != nil {
		t.IsActive = *cmd.IsActive
	}
	return t.Validate()
}

func parseFee(verr *errs.ValidationError, field, raw string) int64 {
	if strings.TrimSpace(raw) == "" {
		return 0
	}
	minor, err := entity.ParseAmount(raw)
	if err != nil {
		verr.Add(field, err.Error())
		return 0
	}
	return minor
}
