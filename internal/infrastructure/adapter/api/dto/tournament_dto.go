package dto

import (
	"time"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
)

// CreateTournamentRequest is the admin body of POST /api/tournaments, accepted as JSON or form data
type CreateTournamentRequest struct {
	Title          string         `json:"title" form:"title"`
	Game           string         `json:"game" form:"game"`
	Device         string         `json:"device" form:"device"`
	Mood           string         `json:"mood" form:"mood"`
	Type           string         `json:"type" form:"type"`
	GameVersion    string         `json:"version" form:"version"`
	Map            string         `json:"map" form:"map"`
	MatchType      string         `json:"matchType" form:"matchType"`
	TournamentCode string         `json:"tournamentCode" form:"tournamentCode"`
	Description    string         `json:"description" form:"description"`
	Rules          string         `json:"rules" form:"rules"`
	Logo           string         `json:"logo" form:"logo"`
	CoverImage     string         `json:"coverImage" form:"coverImage"`
	EntryFee       FlexibleAmount `json:"entryFee" form:"entryFee"`
	WinningPrize   FlexibleAmount `json:"winningPrize" form:"winningPrize"`
	PerKillPrize   FlexibleAmount `json:"perKillPrize" form:"perKillPrize"`
	MaxPlayers     int            `json:"maxPlayers" form:"maxPlayers"`
	MatchSchedule  *time.Time     `json:"matchSchedule" form:"matchSchedule" time_format:"2006-01-02T15:04:05Z07:00"`
	IsActive       *bool          `json:"isActive" form:"isActive"`
}

// Command converts the body into a use case command
func (r CreateTournamentRequest) Command() usecase.CreateTournamentCommand {
	return usecase.CreateTournamentCommand{
		Title:          r.Title,
		Game:           r.Game,
		Device:         r.Device,
		Mood:           r.Mood,
		Type:           r.Type,
		GameVersion:    r.GameVersion,
		Map:            r.Map,
		MatchType:      r.MatchType,
		TournamentCode: r.TournamentCode,
		Description:    r.Description,
		Rules:          r.Rules,
		Logo:           r.Logo,
		CoverImage:     r.CoverImage,
		EntryFee:       r.EntryFee.String(),
		WinningPrize:   r.WinningPrize.String(),
		PerKillPrize:   r.PerKillPrize.String(),
		MaxPlayers:     r.MaxPlayers,
		MatchSchedule:  r.MatchSchedule,
		IsActive:       r.IsActive,
	}
}

// RegisterTournamentRequest is the body of POST /api/tournaments/:id/register
type RegisterTournamentRequest struct {
	PlayerName string `json:"playerName"`
	PlayerID   string `json:"playerId"`
}

// TournamentResponse represents a tournament in the API
type TournamentResponse struct {
	ID             string     `json:"id"`
	Slug           string     `json:"slug"`
	Title          string     `json:"title"`
	Game           string     `json:"game"`
	Device         string     `json:"device,omitempty"`
	Mood           string     `json:"mood,omitempty"`
	Type           string     `json:"type,omitempty"`
	GameVersion    string     `json:"version,omitempty"`
	Map            string     `json:"map,omitempty"`
	MatchType      string     `json:"matchType,omitempty"`
	TournamentCode string     `json:"tournamentCode"`
	Description    string     `json:"description,omitempty"`
	Rules          string     `json:"rules,omitempty"`
	Logo           string     `json:"logo,omitempty"`
	CoverImage     string     `json:"coverImage,omitempty"`
	EntryFee       string     `json:"entryFee"`
	WinningPrize   string     `json:"winningPrize"`
	PerKillPrize   string     `json:"perKillPrize"`
	MaxPlayers     int        `json:"maxPlayers"`
	MatchSchedule  *time.Time `json:"matchSchedule,omitempty"`
	IsActive       bool       `json:"isActive"`
	IsCompleted    bool       `json:"isCompleted"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// NewTournamentResponse maps a tournament to its API shape
func NewTournamentResponse(t *entity.Tournament) TournamentResponse {
	return TournamentResponse{
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
		EntryFee:       entity.FormatAmount(t.EntryFee),
		WinningPrize:   entity.FormatAmount(t.WinningPrize),
		PerKillPrize:   entity.FormatAmount(t.PerKillPrize),
		MaxPlayers:     t.MaxPlayers,
		MatchSchedule:  t.MatchSchedule,
		IsActive:       t.IsActive,
		IsCompleted:    t.IsCompleted,
		CompletedAt:    t.CompletedAt,
		CreatedAt:      t.CreatedAt,
	}
}

// NewTournamentList maps a slice of tournaments
func NewTournamentList(tournaments []*entity.Tournament) []TournamentResponse {
	items := make([]TournamentResponse, 0, len(tournaments))
	for _, t := range tournaments {
		items = append(items, NewTournamentResponse(t))
	}
	return items
}

// TournamentListResponse is the page shape of the tournament listing
type TournamentListResponse struct {
	Tournaments []TournamentResponse `json:"tournaments"`
	Pagination  entity.PageInfo      `json:"pagination"`
}

// RegistrationResponse represents a player's tournament entry
type RegistrationResponse struct {
	ID           string    `json:"id"`
	TournamentID string    `json:"tournamentId"`
	UserID       string    `json:"userId"`
	PlayerName   string    `json:"playerName"`
	PlayerID     string    `json:"playerId"`
	EntryFee     string    `json:"entryFee"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewRegistrationResponse maps a registration to its API shape
func NewRegistrationResponse(r *entity.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:           r.ID,
		TournamentID: r.TournamentID,
		UserID:       r.UserID,
		PlayerName:   r.PlayerName,
		PlayerID:     r.PlayerID,
		EntryFee:     entity.FormatAmount(r.EntryFee),
		CreatedAt:    r.CreatedAt,
	}
}

// TournamentStatusRequest is the body of PUT /api/tournaments/:id/status
type TournamentStatusRequest struct {
	IsActive    *bool `json:"isActive"`
	IsCompleted *bool `json:"isCompleted"`
}

// RosterEntryResponse is one registration in the admin roster
type RosterEntryResponse struct {
	RegistrationResponse
	UserName      string `json:"userName"`
	UserPhone     string `json:"userPhone,omitempty"`
	PaymentStatus string `json:"paymentStatus"`
}

// RosterResponse is the admin view of who registered for a tournament
type RosterResponse struct {
	Tournament    TournamentResponse    `json:"tournament"`
	Registrations []RosterEntryResponse `json:"registrations"`
	Count         int                   `json:"count"`
	MaxPlayers    int                   `json:"maxPlayers"`
}

// NewRosterResponse maps a roster. A stored registration has always paid its fee.
func NewRosterResponse(r *entity.Roster) RosterResponse {
	entries := make([]RosterEntryResponse, 0, len(r.Registrations))
	for i := range r.Registrations {
		d := &r.Registrations[i]
		status := "paid"
		if d.EntryFee == 0 {
			status = "free"
		}
		entries = append(entries, RosterEntryResponse{
			RegistrationResponse: NewRegistrationResponse(&d.Registration),
			UserName:             d.UserName,
			UserPhone:            d.UserPhone,
			PaymentStatus:        status,
		})
	}
	return RosterResponse{
		Tournament:    NewTournamentResponse(r.Tournament),
		Registrations: entries,
		Count:         len(entries),
		MaxPlayers:    r.Tournament.MaxPlayers,
	}
}

// HistoricalTournamentResponse is a completed tournament with its turnout
type HistoricalTournamentResponse struct {
	TournamentResponse
	PlayersRegistered int64 `json:"playersRegistered"`
}

// NewHistoricalList maps completed tournaments
func NewHistoricalList(results []entity.TournamentResult) []HistoricalTournamentResponse {
	items := make([]HistoricalTournamentResponse, 0, len(results))
	for _, r := range results {
		items = append(items, HistoricalTournamentResponse{
			TournamentResponse: NewTournamentResponse(r.Tournament),
			PlayersRegistered:  r.PlayersRegistered,
		})
	}
	return items
}
