package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Investor stores stages and verticals as JSON so the same schema works on
// Postgres and SQLite.
type Investor struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(200);not null"`
	Email       string     `gorm:"type:varchar(255);not null"`
	Website     *string    `gorm:"type:text"`
	Stages      []string   `gorm:"type:text;serializer:json"`
	Verticals   []string   `gorm:"type:text;serializer:json"`
	CheckSize   string     `gorm:"type:varchar(100)"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(20);not null;default:'Pending';index"`
	IsVerified  bool       `gorm:"not null;default:false"`
	ModeratedAt *time.Time `gorm:"type:timestamp"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
