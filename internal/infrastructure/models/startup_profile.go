package models

import (
	"time"

	"github.com/google/uuid"
)

type StartupProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Logo      *string   `gorm:"type:text"`
	Slogan    string    `gorm:"type:varchar(300)"`
	About     string    `gorm:"type:text"`
	Industry  string    `gorm:"type:varchar(100);index"`
	Website   *string   `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StartupProfile) TableName() string {
	return "startup_profiles"
}
