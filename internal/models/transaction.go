package models

import "time"

// Transaction represents a single income or expense record.
// The referenced category must belong to the same user; this is
// enforced at write time by the handlers, not by the schema.
type Transaction struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"index;not null"`
	CategoryID uint      `gorm:"index"`
	Title      string    `gorm:"size:128;not null"`
	Type       string    `gorm:"size:16;index;not null"` // income / expense
	AmountCent int64     `gorm:"not null"`               // store in cents to avoid float
	Date       time.Time `gorm:"index"`                  // when the transaction happened
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Category Category `gorm:"constraint:OnDelete:SET NULL"`
}
