package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Job struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title       string     `gorm:"type:varchar(200);not null"`
	Company     string     `gorm:"type:varchar(200);not null"`
	Region      string     `gorm:"type:varchar(100);index"`
	Type        string     `gorm:"type:varchar(50);index"`
	SalaryRange string     `gorm:"type:varchar(100)"`
	Description string     `gorm:"type:text"`
	ApplyURL    *string    `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(20);not null;default:'Pending';index"`
	IsVerified  bool       `gorm:"not null;default:false"`
	IsFeatured  bool       `gorm:"not null;default:false"`
	ModeratedAt *time.Time `gorm:"type:timestamp"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
