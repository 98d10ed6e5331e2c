package models

import (
	"time"

	"github.com/google/uuid"
)

// User rows are hard deleted so a removed email can sign up again.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string     `gorm:"type:varchar(100);not null"`
	PasswordHash string     `gorm:"type:varchar(255)"`
	Role         string     `gorm:"type:varchar(20);not null;default:'talent';index"`
	Status       string     `gorm:"type:varchar(20);not null;default:'Active';index"`
	LastLoginAt  *time.Time `gorm:"type:timestamp"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
