package model

import (
	"time"
)

// Tournament represents the database model for tournaments
type Tournament struct {
	ID             string `gorm:"primaryKey;size:40"`
	Slug           string `gorm:"not null;size:160;uniqueIndex"`
	Title          string `gorm:"not null;size:150"`
	Game           string `gorm:"not null;size:64"`
	Device         string `gorm:"size:32"`
	Mood           string `gorm:"size:32"`
	Type           string `gorm:"size:32"`
	GameVersion    string `gorm:"size:32"`
	Map            string `gorm:"size:64"`
	MatchType      string `gorm:"size:32"`
	TournamentCode string `gorm:"not null;size:64"`
	Description    string `gorm:"type:text"`
	Rules          string `gorm:"type:text"`
	Logo           string `gorm:"size:255"`
	CoverImage     string `gorm:"size:255"`
	EntryFee       int64  `gorm:"not null;default:0"`
	WinningPrize   int64  `gorm:"not null;default:0"`
	PerKillPrize   int64  `gorm:"not null;default:0"`
	MaxPlayers     int    `gorm:"not null;default:0"`
	MatchSchedule  *time.Time
	IsActive       bool `gorm:"not null;default:true"`
	IsCompleted    bool `gorm:"not null;default:false;index"`
	CompletedAt    *time.Time
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Tournament
func (Tournament) TableName() string {
	return "tournaments"
}

// Registration is a player's entry into a tournament
type Registration struct {
	ID           string    `gorm:"primaryKey;size:40"`
	TournamentID string    `gorm:"not null;size:40;uniqueIndex:idx_registrations_tournament_user,priority:1"`
	UserID       string    `gorm:"not null;size:64;uniqueIndex:idx_registrations_tournament_user,priority:2;index"`
	PlayerName   string    `gorm:"not null;size:100"`
	PlayerID     string    `gorm:"not null;size:64"`
	EntryFee     int64     `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Registration
func (Registration) TableName() string {
	return "tournament_registrations"
}
