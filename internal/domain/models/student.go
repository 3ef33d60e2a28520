package models

import "time"

// Student represents a hostel resident. A student occupies at most one
// room at a time; RoomID is nil while unassigned.
type Student struct {
	BaseModel
	StudentNumber    string     `gorm:"type:varchar(20);unique;not null" json:"student_number"`
	Name             string     `gorm:"type:varchar(100);not null" json:"name"`
	Email            string     `gorm:"type:varchar(100)" json:"email"`
	Phone            string     `gorm:"type:varchar(20)" json:"phone"`
	RoomID           *uint      `json:"room_id"`
	AdmissionDate    time.Time  `json:"admission_date"`
	IsActive         bool       `gorm:"not null;default:true" json:"is_active"`
	EmergencyContact string     `gorm:"type:varchar(20)" json:"emergency_contact"`
	Address          string     `gorm:"type:text" json:"address"`

	// Relations
	Room     *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Payments []Payment `gorm:"foreignKey:StudentID" json:"payments,omitempty"`
}
