package entity

import "strings"

// BadgeCategory drives the colour of a status badge
type BadgeCategory string

// Badge categories
const (
	BadgeWarning BadgeCategory = "warning"
	BadgeSuccess BadgeCategory = "success"
	BadgeDanger  BadgeCategory = "danger"
	BadgeNeutral BadgeCategory = "neutral"
)

// StatusBadge is the display label and category of a request status
type StatusBadge struct {
	Label    string        `json:"label"`
	Category BadgeCategory `json:"category"`
}

// BadgeFor maps a (kind, status) pair to its badge. Unknown statuses fall back to a neutral badge
// carrying the raw status.
func BadgeFor(kind RequestKind, status RequestStatus) StatusBadge {
	switch status {
	case StatusPending:
		return StatusBadge{Label: "Pending", Category: BadgeWarning}
	case StatusApproved:
		return StatusBadge{Label: "Approved", Category: BadgeSuccess}
	case StatusCompleted:
		if kind == KindWithdrawal {
			return StatusBadge{Label: "Completed", Category: BadgeSuccess}
		}
	case StatusRejected:
		return StatusBadge{Label: "Rejected", Category: BadgeDanger}
	}
	return StatusBadge{Label: strings.TrimSpace(string(status)), Category: BadgeNeutral}
}
