package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// StartupProfile is the public brand page of a startup account.
type StartupProfile struct {
	ID        uuid.UUID   `json:"id"`
	OwnerID   uuid.UUID   `json:"ownerId"`
	Name      string      `json:"name"`
	Logo      null.String `json:"logo,omitempty"`
	Slogan    string      `json:"slogan,omitempty"`
	About     string      `json:"about,omitempty"`
	Industry  string      `json:"industry,omitempty"`
	Website   null.String `json:"website,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// BrandProfileInput is the startup dashboard brand form.
type BrandProfileInput struct {
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Logo     string `json:"logo" binding:"max=2048"`
	Slogan   string `json:"slogan" binding:"max=300"`
	About    string `json:"about" binding:"max=10000"`
	Industry string `json:"industry" binding:"max=100"`
	Website  string `json:"website" binding:"omitempty,url"`
}
