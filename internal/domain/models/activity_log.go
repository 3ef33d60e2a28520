package models

import "time"

// ActivityType labels the entries on the dashboard activity feed.
type ActivityType string

const (
	ActivityStudentAdded         ActivityType = "student_added"
	ActivityPaymentReceived      ActivityType = "payment_received"
	ActivityRoomAssigned         ActivityType = "room_assigned"
	ActivityMaintenanceScheduled ActivityType = "maintenance_scheduled"
	ActivityAlertCreated         ActivityType = "alert_created"
)

// ActivityLog records an administrative action for the dashboard feed.
type ActivityLog struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Type        ActivityType `gorm:"type:varchar(50);not null" json:"type"`
	Title       string       `gorm:"type:varchar(200);not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	UserID      uint         `gorm:"not null" json:"user_id"`
	EntityID    string       `gorm:"type:varchar(36)" json:"entity_id"` // ID of the related entity (student, room, ...)
	Metadata    string       `gorm:"type:text" json:"metadata"`         // Optional JSON payload
	CreatedAt   time.Time    `json:"created_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
