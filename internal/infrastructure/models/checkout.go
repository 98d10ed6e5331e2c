package models

import (
	"time"

	"github.com/google/uuid"
)

type Checkout struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Plan        string     `gorm:"type:varchar(50);not null"`
	JobID       *string    `gorm:"type:varchar(64)"`
	AmountCents int64      `gorm:"not null"`
	Currency    string     `gorm:"type:varchar(10);not null"`
	Status      string     `gorm:"type:varchar(20);not null;index:idx_checkouts_due,priority:1"`
	SettleAt    time.Time  `gorm:"not null;index:idx_checkouts_due,priority:2"`
	SettledAt   *time.Time `gorm:"type:timestamp"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
