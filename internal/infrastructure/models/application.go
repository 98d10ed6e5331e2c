package models

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_candidate"`
	CandidateID    *string   `gorm:"type:varchar(64)"`
	CandidateName  string    `gorm:"type:varchar(200);not null"`
	CandidateEmail string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_applications_job_candidate;index"`
	CVURL          string    `gorm:"column:cv_url;type:text;not null"`
	CoverLetter    *string   `gorm:"type:text"`
	Status         string    `gorm:"type:varchar(20);not null;default:'Applied'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
