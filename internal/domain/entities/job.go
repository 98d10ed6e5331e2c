package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Job is a listing posted by a startup.
type Job struct {
	ID          uuid.UUID   `json:"id"`
	OwnerID     uuid.UUID   `json:"ownerId"`
	Title       string      `json:"title"`
	Company     string      `json:"company"`
	Region      string      `json:"region"`
	Type        string      `json:"type"`
	SalaryRange string      `json:"salaryRange"`
	Description string      `json:"description,omitempty"`
	ApplyURL    null.String `json:"applyUrl,omitempty"`
	IsFeatured  bool        `json:"isFeatured"`
	Moderation
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JobInput is the editable content of a job.
type JobInput struct {
	Title       string `json:"title" binding:"required,min=2,max=200"`
	Company     string `json:"company" binding:"required,max=200"`
	Region      string `json:"region" binding:"required,max=100"`
	Type        string `json:"type" binding:"required,max=50"`
	SalaryRange string `json:"salaryRange" binding:"max=100"`
	Description string `json:"description" binding:"max=10000"`
	ApplyURL    string `json:"applyUrl" binding:"omitempty,url"`
}

// JobFilter narrows public and admin job listings.
type JobFilter struct {
	Region string
	Type   string
	Query  string
	// Status empty means any status.
	Status     ModerationStatus
	PublicOnly bool
	OwnerID    *uuid.UUID
}
