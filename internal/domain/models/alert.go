package models

import "time"

// Alert represents a notice shown on the dashboard until dismissed.
// Alerts are polled by the client; there is no push channel.
type Alert struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Type        string    `gorm:"type:varchar(50);not null" json:"type"` // payment_overdue, maintenance_required, high_occupancy
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Severity    string    `gorm:"type:varchar(20);not null;default:'medium'" json:"severity"` // low, medium, high
	IsRead      bool      `gorm:"not null;default:false" json:"is_read"`
	EntityID    string    `gorm:"type:varchar(36)" json:"entity_id"`
	CreatedAt   time.Time `json:"created_at"`
}
