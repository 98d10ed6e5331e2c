package entities

import (
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
)

// ModerationStatus is the review state shared by jobs and investors.
type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "Pending"
	ModerationApproved ModerationStatus = "Approved"
	ModerationRejected ModerationStatus = "Rejected"
)

// ParseModerationStatus accepts any casing of the three statuses.
func ParseModerationStatus(s string) (ModerationStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return ModerationPending, true
	case "approved":
		return ModerationApproved, true
	case "rejected":
		return ModerationRejected, true
	}
	return "", false
}

// Moderation carries the review fields embedded in moderated listings.
type Moderation struct {
	Status      ModerationStatus `json:"status"`
	IsVerified  bool             `json:"isVerified"`
	ModeratedAt null.Time        `json:"moderatedAt,omitempty"`
}

// NewModeration returns the state of a freshly submitted listing.
func NewModeration() Moderation {
	return Moderation{Status: ModerationPending}
}

// Apply records a moderation decision. Only Approved verifies the listing.
func (m *Moderation) Apply(status ModerationStatus, at time.Time) {
	m.Status = status
	m.IsVerified = status == ModerationApproved
	m.ModeratedAt = null.TimeFrom(at)
}

// IsPublic reports whether the listing may be shown to anonymous visitors.
func (m Moderation) IsPublic() bool {
	return m.Status == ModerationApproved && m.IsVerified
}

// ModerationQueue holds everything waiting for an admin decision.
type ModerationQueue struct {
	Jobs      []*Job      `json:"jobs"`
	Investors []*Investor `json:"investors"`
}
