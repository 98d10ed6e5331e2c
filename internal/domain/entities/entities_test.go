package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestModeration_Apply(t *testing.T) {
	m := NewModeration()
	assert.Equal(t, ModerationPending, m.Status)
	assert.False(t, m.IsVerified)
	assert.False(t, m.IsPublic())

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m.Apply(ModerationApproved, at)
	assert.True(t, m.IsVerified)
	assert.True(t, m.IsPublic())
	assert.True(t, m.ModeratedAt.Valid)
	assert.Equal(t, at, m.ModeratedAt.Time)

	m.Apply(ModerationRejected, at)
	assert.False(t, m.IsVerified)
	assert.False(t, m.IsPublic())

	m.Apply(ModerationPending, at)
	assert.False(t, m.IsPublic())
}

func TestModeration_ApprovedButUnverifiedIsHidden(t *testing.T) {
	m := Moderation{Status: ModerationApproved}
	assert.False(t, m.IsPublic())
}

func TestParseStatuses(t *testing.T) {
	s, ok := ParseModerationStatus(" approved ")
	assert.True(t, ok)
	assert.Equal(t, ModerationApproved, s)
	_, ok = ParseModerationStatus("live")
	assert.False(t, ok)

	a, ok := ParseApplicationStatus("HIRED")
	assert.True(t, ok)
	assert.Equal(t, ApplicationHired, a)
	_, ok = ParseApplicationStatus("ghosted")
	assert.False(t, ok)

	r, ok := ParseUserRole("Startup")
	assert.True(t, ok)
	assert.Equal(t, UserRoleStartup, r)
	_, ok = ParseUserRole("investor")
	assert.False(t, ok)
}

func TestInvestorFilter_Matches(t *testing.T) {
	inv := &Investor{Name: "Blue Harbor Ventures", Stages: []string{"Seed", "Series A"}, Verticals: []string{"Fintech"}}

	assert.True(t, InvestorFilter{}.Matches(inv))
	assert.True(t, InvestorFilter{Stage: "seed"}.Matches(inv))
	assert.True(t, InvestorFilter{Vertical: "FINTECH", Query: "harbor"}.Matches(inv))
	assert.False(t, InvestorFilter{Stage: "Series B"}.Matches(inv))
	assert.False(t, InvestorFilter{Vertical: "Health"}.Matches(inv))
	assert.False(t, InvestorFilter{Query: "north"}.Matches(inv))
}

func TestUser_IsBanned(t *testing.T) {
	assert.False(t, (&User{Status: UserStatusActive}).IsBanned())
	assert.True(t, (&User{Status: UserStatusBanned}).IsBanned())
}
