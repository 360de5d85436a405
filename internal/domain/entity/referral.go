package entity

import "time"

// Referral links a referee to the player who invited them; each referee is referred at most once
type Referral struct {
	ID          string
	ReferrerID  string
	RefereeID   string
	RefereeName string
	Bonus       int64
	CreatedAt   time.Time
}
