package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeFor(t *testing.T) {
	testCases := []struct {
		kind     RequestKind
		status   RequestStatus
		expected StatusBadge
	}{
		{KindTopUp, StatusPending, StatusBadge{"Pending", BadgeWarning}},
		{KindTopUp, StatusApproved, StatusBadge{"Approved", BadgeSuccess}},
		{KindTopUp, StatusRejected, StatusBadge{"Rejected", BadgeDanger}},
		{KindWithdrawal, StatusCompleted, StatusBadge{"Completed", BadgeSuccess}},
		{KindWithdrawal, StatusRejected, StatusBadge{"Rejected", BadgeDanger}},
		{KindPrizeClaim, StatusApproved, StatusBadge{"Approved", BadgeSuccess}},
		{KindPrizeClaim, StatusCompleted, StatusBadge{"completed", BadgeNeutral}},
		{KindTopUp, RequestStatus("on-hold"), StatusBadge{"on-hold", BadgeNeutral}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind)+"/"+string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.expected, BadgeFor(tc.kind, tc.status))
		})
	}
}
