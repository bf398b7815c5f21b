package models

import "time"

// Category is a user-defined label for grouping transactions.
// Names are free text and not required to be unique per user.
type Category struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Name      string    `gorm:"size:64;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
