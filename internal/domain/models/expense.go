package models

import "time"

// Expense represents an operating cost entry (utilities, repairs, supplies).
type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Category    string    `gorm:"type:varchar(50);not null" json:"category"`
	Date        time.Time `gorm:"not null" json:"date"`
	CreatedBy   uint      `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Creator *User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}
