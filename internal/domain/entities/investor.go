package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Investor is a fund or angel listed in the investor directory.
type Investor struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Website     null.String `json:"website,omitempty"`
	Stages      []string    `json:"stages"`
	Verticals   []string    `json:"verticals"`
	CheckSize   string      `json:"checkSize,omitempty"`
	Description string      `json:"description,omitempty"`
	Moderation
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InvestorInput is the onboarding form.
type InvestorInput struct {
	Name        string   `json:"name" binding:"required,min=2,max=200"`
	Email       string   `json:"email" binding:"required,email"`
	Website     string   `json:"website" binding:"omitempty,url"`
	Stages      []string `json:"stages" binding:"required,min=1"`
	Verticals   []string `json:"verticals"`
	CheckSize   string   `json:"checkSize" binding:"max=100"`
	Description string   `json:"description" binding:"max=5000"`
}

// InvestorFilter narrows the public investor directory.
type InvestorFilter struct {
	Stage    string
	Vertical string
	Query    string
}

// Matches reports whether the investor passes every non-empty filter field.
func (f InvestorFilter) Matches(inv *Investor) bool {
	if f.Stage != "" && !containsFold(inv.Stages, f.Stage) {
		return false
	}
	if f.Vertical != "" && !containsFold(inv.Verticals, f.Vertical) {
		return false
	}
	if f.Query != "" && !strings.Contains(strings.ToLower(inv.Name), strings.ToLower(f.Query)) {
		return false
	}
	return true
}

func containsFold(values []string, want string) bool {
	want = strings.TrimSpace(want)
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), want) {
			return true
		}
	}
	return false
}
